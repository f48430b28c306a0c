// Package model содержит обёртки над внешними пайплайнами с единым контрактом Load/Run.
package model

import (
	"context"
	"sync"
)

// Wrapper общий контракт обёртки. Каждая модель — отдельная реализация.
type Wrapper[In, Out any] interface {
	Name() string
	Load(ctx context.Context) error
	Run(ctx context.Context, input In) (Out, error)
}

// Factory строит пайплайн по имени модели.
type Factory[P any] func(ctx context.Context, modelName string) (P, error)

// lazyPipeline владеет единственным хендлом пайплайна, который строится при первом использовании.
// Неудачная попытка не запоминается: следующий Load попробует снова.
type lazyPipeline[P any] struct {
	name    string
	factory Factory[P]

	mu       sync.Mutex
	pipeline P
	loaded   bool
}

func (l *lazyPipeline[P]) Name() string { return l.name }

// Load идемпотентен: если хендл уже есть — ничего не делает.
func (l *lazyPipeline[P]) Load(ctx context.Context) error {
	_, err := l.get(ctx)
	return err
}

func (l *lazyPipeline[P]) get(ctx context.Context) (P, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loaded {
		return l.pipeline, nil
	}
	p, err := l.factory(ctx, l.name)
	if err != nil {
		var zero P
		return zero, &PipelineInitError{Model: l.name, Err: err}
	}
	l.pipeline = p
	l.loaded = true
	return p, nil
}

// Loaded сообщает, построен ли пайплайн.
func (l *lazyPipeline[P]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}
