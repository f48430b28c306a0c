package model

import (
	"errors"
	"fmt"
)

// ErrEmptyInput возвращается до запуска модели, если ввод пуст.
var ErrEmptyInput = errors.New("input required")

// PipelineInitError ошибка ленивого построения пайплайна (нет модели, нет сети, неверное имя).
type PipelineInitError struct {
	Model string
	Err   error
}

func (e *PipelineInitError) Error() string {
	return fmt.Sprintf("load pipeline %s: %v", e.Model, e.Err)
}

func (e *PipelineInitError) Unwrap() error { return e.Err }

// InferenceError ошибка вызова уже построенного пайплайна.
type InferenceError struct {
	Model string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Model, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
