package shell

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modeldemo/internal/ai"
	"modeldemo/internal/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeDialogs struct {
	warnings []string
	errors   []error
	infos    []string
}

func (d *fakeDialogs) Warning(title, message string) {
	d.warnings = append(d.warnings, title+": "+message)
}
func (d *fakeDialogs) Error(_ string, err error) { d.errors = append(d.errors, err) }
func (d *fakeDialogs) Info(_, message string)    { d.infos = append(d.infos, message) }

type fakePicker struct{ path string }

func (p *fakePicker) PickImage(onChosen func(string)) {
	if p.path != "" {
		onChosen(p.path)
	}
}

type countingNotifier struct{ n int }

func (c *countingNotifier) Notify() { c.n++ }

type fakeGenerator struct {
	calls int
	img   *image.RGBA
	err   error
}

func (g *fakeGenerator) Generate(context.Context, string, ai.GenerateParams) (image.Image, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	return g.img, nil
}

type fakeClassifier struct {
	calls int
	path  string
	preds []ai.Prediction
	err   error
}

func (c *fakeClassifier) Classify(_ context.Context, path string) ([]ai.Prediction, error) {
	c.calls++
	c.path = path
	return c.preds, c.err
}

type fixture struct {
	app        *App
	dialogs    *fakeDialogs
	picker     *fakePicker
	notifier   *countingNotifier
	gen        *fakeGenerator
	cls        *fakeClassifier
	genBuilds  int
	clsBuilds  int
	genInitErr error
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fyneApp := test.NewApp()
	t.Cleanup(fyneApp.Quit)

	src := image.NewRGBA(image.Rect(0, 0, 512, 512))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	f := &fixture{
		dialogs:  &fakeDialogs{},
		picker:   &fakePicker{},
		notifier: &countingNotifier{},
		gen:      &fakeGenerator{img: src},
		cls:      &fakeClassifier{},
	}
	textModel := model.NewTextToImage("runwayml/stable-diffusion-v1-5", func(context.Context, string) (ai.ImageGenerator, error) {
		f.genBuilds++
		if f.genInitErr != nil {
			return nil, f.genInitErr
		}
		return f.gen, nil
	})
	imageModel := model.NewImageClassifier("google/vit-base-patch16-224", func(context.Context, string) (ai.ImageClassifier, error) {
		f.clsBuilds++
		return f.cls, nil
	})
	f.app = New(textModel, imageModel, Options{
		Provider: "stub",
		Dialogs:  f.dialogs,
		Picker:   f.picker,
		Notifier: f.notifier,
		Logger:   zaptest.NewLogger(t).Sugar(),
	})
	return f
}

func (f *fixture) outputText(t *testing.T) string {
	t.Helper()
	require.Len(t, f.app.outputArea.Objects, 1)
	entry, ok := f.app.outputArea.Objects[0].(*widget.Entry)
	require.True(t, ok, "output is %T", f.app.outputArea.Objects[0])
	return entry.Text
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cat.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(1, 1, color.RGBA{G: 255, A: 255})
	require.NoError(t, png.Encode(file, img))
	require.NoError(t, file.Close())
	return path
}

func assertTextMode(t *testing.T, a *App) {
	t.Helper()
	objs := a.inputArea.Objects
	require.Len(t, objs, 2)
	assert.IsType(t, &widget.Label{}, objs[0])
	assert.Same(t, a.textEntry, objs[1])
	assert.Nil(t, a.pathEntry)
	assert.Nil(t, a.browseButton)
	assert.Nil(t, a.thumb)
}

func assertClassifyMode(t *testing.T, a *App) {
	t.Helper()
	objs := a.inputArea.Objects
	require.Len(t, objs, 3)
	assert.IsType(t, &widget.Label{}, objs[0])
	row, ok := objs[1].(*fyne.Container)
	require.True(t, ok)
	assert.Contains(t, row.Objects, fyne.CanvasObject(a.pathEntry))
	assert.Contains(t, row.Objects, fyne.CanvasObject(a.browseButton))
	assert.Same(t, a.thumb, objs[2])
	assert.Nil(t, a.textEntry)
}

func TestModeSwitchRebuildsInputPanel(t *testing.T) {
	f := newFixture(t)
	a := f.app

	assert.Equal(t, ModeTextToImage, a.Mode())
	assert.Equal(t, string(ModeTextToImage), a.modeSelect.Selected)
	assertTextMode(t, a)
	firstEntry := a.textEntry
	firstEntry.SetText("a red fox")

	a.SetMode(ModeImageClassify)
	assert.Equal(t, ModeImageClassify, a.Mode())
	assertClassifyMode(t, a)
	assert.NotContains(t, a.inputArea.Objects, fyne.CanvasObject(firstEntry))

	a.SetMode(ModeTextToImage)
	assertTextMode(t, a)
	assert.NotSame(t, firstEntry, a.textEntry)
	assert.Empty(t, a.textEntry.Text)

	// Повторный выбор того же режима тоже пересобирает панель
	a.SetMode(ModeImageClassify)
	first := a.pathEntry
	a.SetMode(ModeImageClassify)
	assertClassifyMode(t, a)
	assert.NotSame(t, first, a.pathEntry)
}

func TestRunBuildsPipelineOnce(t *testing.T) {
	f := newFixture(t)
	f.app.textEntry.SetText("a red fox")

	test.Tap(f.app.runButton)
	test.Tap(f.app.runButton)
	test.Tap(f.app.runButton)

	assert.Equal(t, 1, f.genBuilds)
	assert.Equal(t, 3, f.gen.calls)
	assert.Equal(t, 0, f.clsBuilds)
	assert.Equal(t, 3, f.notifier.n)
	assert.Len(t, f.app.outputArea.Objects, 1)
}

func TestEmptyPromptShowsWarning(t *testing.T) {
	f := newFixture(t)
	f.app.textEntry.SetText("a red fox")
	test.Tap(f.app.runButton)
	require.Len(t, f.app.outputArea.Objects, 1)
	previous := f.app.outputArea.Objects[0]

	f.app.textEntry.SetText("   \n ")
	test.Tap(f.app.runButton)

	assert.Equal(t, []string{"Input required: Please enter a text prompt."}, f.dialogs.warnings)
	assert.Equal(t, 1, f.gen.calls)
	require.Len(t, f.app.outputArea.Objects, 1)
	assert.Same(t, previous, f.app.outputArea.Objects[0])
}

func TestEmptyPathShowsWarning(t *testing.T) {
	f := newFixture(t)
	f.app.SetMode(ModeImageClassify)

	test.Tap(f.app.runButton)

	assert.Equal(t, []string{"Input required: Please select an image file."}, f.dialogs.warnings)
	assert.Equal(t, 0, f.clsBuilds)
	assert.Empty(t, f.app.outputArea.Objects)
}

func TestInferenceErrorIsRenderedInOutput(t *testing.T) {
	f := newFixture(t)
	f.gen.err = errors.New("CUDA out of memory")
	f.app.textEntry.SetText("a red fox")

	assert.NotPanics(t, func() { test.Tap(f.app.runButton) })

	lines := strings.Split(f.outputText(t), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Error running model: run runwayml/stable-diffusion-v1-5: CUDA out of memory", lines[0])
	assert.Equal(t, hintInference, lines[1])
	assert.Zero(t, f.notifier.n)
	assert.False(t, f.app.running)
}

func TestMultilineErrorIsFlattened(t *testing.T) {
	f := newFixture(t)
	f.gen.err = errors.New("status 502: <html>\n<body>Bad Gateway</body>\n</html>\n")
	f.app.textEntry.SetText("a red fox")

	test.Tap(f.app.runButton)

	lines := strings.Split(f.outputText(t), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Error running model: run runwayml/stable-diffusion-v1-5: status 502: <html> <body>Bad Gateway</body> </html>", lines[0])
	assert.Equal(t, hintInference, lines[1])
}

func TestPipelineInitErrorHint(t *testing.T) {
	f := newFixture(t)
	f.genInitErr = errors.New("Repository not found")
	f.app.textEntry.SetText("a red fox")

	test.Tap(f.app.runButton)
	text := f.outputText(t)
	assert.Contains(t, text, "Repository not found")
	assert.True(t, strings.HasSuffix(text, hintLoad))

	// Ошибка построения не кэшируется: следующий запуск строит пайплайн снова
	f.genInitErr = nil
	test.Tap(f.app.runButton)
	assert.Equal(t, 2, f.genBuilds)
	assert.IsType(t, &canvas.Image{}, f.app.outputArea.Objects[0])
}

func TestClassifyEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.cls.preds = []ai.Prediction{
		{Label: "tabby cat", Score: 0.812},
		{Label: "tiger cat", Score: 0.431},
		{Label: "lynx", Score: 0.103},
		{Label: "house cat", Score: 0.05},
	}
	f.app.SetMode(ModeImageClassify)
	f.app.pathEntry.SetText("cat.jpg")

	test.Tap(f.app.runButton)

	assert.Equal(t, "cat.jpg", f.cls.path)
	assert.Equal(t, "tabby cat (0.812)\ntiger cat (0.431)\nlynx (0.103)", f.outputText(t))
	assert.Equal(t, 1, f.notifier.n)
}

func TestTextToImageEndToEnd(t *testing.T) {
	f := newFixture(t)
	before := append([]uint8(nil), f.gen.img.Pix...)
	f.app.textEntry.SetText("a red fox")

	test.Tap(f.app.runButton)

	require.Len(t, f.app.outputArea.Objects, 1)
	shown, ok := f.app.outputArea.Objects[0].(*canvas.Image)
	require.True(t, ok)
	size := shown.Image.Bounds().Size()
	assert.LessOrEqual(t, max(size.X, size.Y), 400)
	assert.Equal(t, image.Pt(512, 512), f.gen.img.Bounds().Size())
	assert.Equal(t, before, f.gen.img.Pix)
}

func TestBrowseShowsThumbnail(t *testing.T) {
	f := newFixture(t)
	f.app.SetMode(ModeImageClassify)
	f.picker.path = writeTestPNG(t, 600, 300)

	test.Tap(f.app.browseButton)

	assert.Equal(t, f.picker.path, f.app.pathEntry.Text)
	require.NotNil(t, f.app.thumb.Image)
	assert.Equal(t, image.Pt(240, 120), f.app.thumb.Image.Bounds().Size())
	assert.Empty(t, f.dialogs.errors)
}

func TestBrowseDecodeErrorKeepsPath(t *testing.T) {
	f := newFixture(t)
	f.app.SetMode(ModeImageClassify)
	f.picker.path = filepath.Join(t.TempDir(), "cat.jpg")
	require.NoError(t, os.WriteFile(f.picker.path, []byte("definitely not a jpeg"), 0o644))

	test.Tap(f.app.browseButton)

	require.Len(t, f.dialogs.errors, 1)
	assert.Contains(t, f.dialogs.errors[0].Error(), f.picker.path)
	assert.Equal(t, f.picker.path, f.app.pathEntry.Text)
	assert.Nil(t, f.app.thumb.Image)
}

func TestBrowseRejectsUnsupportedExtension(t *testing.T) {
	f := newFixture(t)
	f.app.SetMode(ModeImageClassify)
	f.app.pathEntry.SetText("keep.png")
	f.picker.path = filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(f.picker.path, []byte("hello"), 0o644))

	test.Tap(f.app.browseButton)

	require.Len(t, f.dialogs.warnings, 1)
	assert.True(t, strings.HasPrefix(f.dialogs.warnings[0], "Unsupported file: "))
	assert.Equal(t, "keep.png", f.app.pathEntry.Text)
	assert.Nil(t, f.app.thumb.Image)
	assert.Empty(t, f.dialogs.errors)
}

func TestBrowseCancelled(t *testing.T) {
	f := newFixture(t)
	f.app.SetMode(ModeImageClassify)
	f.app.pathEntry.SetText("keep.png")

	test.Tap(f.app.browseButton)

	assert.Equal(t, "keep.png", f.app.pathEntry.Text)
	assert.Empty(t, f.dialogs.errors)
}

func TestRunIgnoredWhileBusy(t *testing.T) {
	f := newFixture(t)
	f.app.textEntry.SetText("a red fox")
	f.app.running = true

	test.Tap(f.app.runButton)

	assert.Zero(t, f.genBuilds)
	assert.Empty(t, f.app.outputArea.Objects)
}

func TestModelInfo(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.app.infoButton)

	require.Len(t, f.dialogs.infos, 1)
	info := f.dialogs.infos[0]
	assert.Contains(t, info, "Text-to-Image model: runwayml/stable-diffusion-v1-5 (task: text-to-image)")
	assert.Contains(t, info, "Image Classification model: google/vit-base-patch16-224 (task: image-classification)")
	assert.Contains(t, info, "Provider: stub")
	assert.Zero(t, f.genBuilds)
	assert.Equal(t, ModeTextToImage, f.app.Mode())
}
