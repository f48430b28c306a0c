package notify

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SoundNotifier проигрывает короткий звук по завершении запуска модели.
// Воспроизведение идёт в одной фоновой горутине, звуки не накладываются.
type SoundNotifier struct {
	logger *zap.SugaredLogger
	path   string
	ply    Player
	async  bool

	once  sync.Once
	queue chan struct{}
}

// NewSoundNotifier создаёт нотификатор. Пустой путь — звук выключен.
func NewSoundNotifier(logger *zap.SugaredLogger, path string) *SoundNotifier {
	return &SoundNotifier{
		logger: logger,
		path:   resolve(strings.TrimSpace(path)),
		ply:    Speaker{},
		async:  true,
		queue:  make(chan struct{}, 1),
	}
}

// resolve ищет относительный путь сначала рядом с бинарём, затем от рабочей директории.
func resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if exe, err := os.Executable(); err == nil {
		cand := filepath.Join(filepath.Dir(exe), path)
		if _, statErr := os.Stat(cand); statErr == nil {
			return cand
		}
	}
	return filepath.FromSlash(path)
}

// Enabled сообщает, задан ли звук.
func (n *SoundNotifier) Enabled() bool { return n.path != "" }

// Notify ставит звук в очередь и не ждёт окончания. Пока один звук играет, в очереди
// ждёт не больше одного, остальные отбрасываются. Ошибки только логируются.
func (n *SoundNotifier) Notify() {
	if !n.Enabled() {
		return
	}
	if !n.async {
		n.play()
		return
	}
	n.once.Do(func() { go n.loop() })
	select {
	case n.queue <- struct{}{}:
	default:
		n.logger.Debugw("Notification sound dropped: already queued", "path", n.path)
	}
}

// loop живёт до конца процесса.
func (n *SoundNotifier) loop() {
	for range n.queue {
		n.play()
	}
}

func (n *SoundNotifier) play() {
	f, err := os.Open(n.path)
	if err != nil {
		n.logger.Warnw("Failed to open notification sound", "path", n.path, "error", err)
		return
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(n.path), "."))
	if ext == "" {
		ext = "mp3" // по умолчанию
	}
	if err := n.ply.Play(ext, f); err != nil {
		n.logger.Warnw("Failed to play notification sound", "path", n.path, "error", err)
	}
}
