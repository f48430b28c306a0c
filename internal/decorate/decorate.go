// Package decorate оборачивает обработчики сквозным логированием и замером времени.
package decorate

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Logged логирует вызов fn перед его выполнением.
func Logged(logger *zap.SugaredLogger, name string, fn func()) func() {
	return func() {
		logger.Infow("Calling", "func", name)
		fn()
	}
}

// Timed логирует длительность выполнения fn в секундах.
func Timed(logger *zap.SugaredLogger, name string, fn func()) func() {
	return timed(logger, name, fn, time.Now)
}

func timed(logger *zap.SugaredLogger, name string, fn func(), now func() time.Time) func() {
	return func() {
		t0 := now()
		fn()
		elapsed := now().Sub(t0)
		logger.Infow("Finished", "func", name, "took", fmt.Sprintf("%.3fs", elapsed.Seconds()))
	}
}
