package shell

const explanationMarkdown = `**Models**

- Each model is a wrapper with two operations: *Load* builds the pipeline, *Run* loads it if needed and runs it.
- The pipeline is built once, on the first run, and kept for the lifetime of the window.
- Text-to-image uses fixed sampling settings (20 steps, guidance scale 7.5) and returns one image.
- Image classification returns the three most likely labels with their confidence.

**Window**

- The input panel is rebuilt every time the input type changes.
- Runs are synchronous: the window does not respond until the model finishes.
- The Run button is wrapped with call logging and timing; see the console log.

**Running**

- Pick a provider with *PROVIDER* (huggingface, openai or stub) or the *-provider* flag.
- Hugging Face needs *HF_TOKEN*; OpenAI needs *OPENAI_API_KEY*. Settings can live in a *.env* file.
- The stub provider works offline and is handy for trying the interface.
`
