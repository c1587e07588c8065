package observe

import (
	"context"
	"log/slog"

	"github.com/ib-77/sansio/pkg/pipe"
)

const (
	BoundaryFront = "front"
	BoundaryBack  = "back"

	DirectionIn  = "in"
	DirectionOut = "out"
)

type logged[FI, FO, BI, BO any] struct {
	name   string
	inner  pipe.Stage[FI, FO, BI, BO]
	logger *slog.Logger
}

// Logged wraps stage so that every handled and emitted message is logged at
// debug level. A nil logger discards.
func Logged[FI, FO, BI, BO any](name string, stage pipe.Stage[FI, FO, BI, BO],
	logger *slog.Logger) pipe.Stage[FI, FO, BI, BO] {

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &logged[FI, FO, BI, BO]{
		name:   name,
		inner:  stage,
		logger: logger.With(slog.String("stage", name)),
	}
}

func (l *logged[FI, FO, BI, BO]) HandleFrontInput(message FI) {
	l.log(BoundaryFront, DirectionIn, message)
	l.inner.HandleFrontInput(message)
}

func (l *logged[FI, FO, BI, BO]) HandleBackInput(message BI) {
	l.log(BoundaryBack, DirectionIn, message)
	l.inner.HandleBackInput(message)
}

func (l *logged[FI, FO, BI, BO]) PollFrontOutput() (FO, bool) {
	m, ok := l.inner.PollFrontOutput()
	if ok {
		l.log(BoundaryFront, DirectionOut, m)
	}
	return m, ok
}

func (l *logged[FI, FO, BI, BO]) PollBackOutput() (BO, bool) {
	m, ok := l.inner.PollBackOutput()
	if ok {
		l.log(BoundaryBack, DirectionOut, m)
	}
	return m, ok
}

func (l *logged[FI, FO, BI, BO]) log(boundary, direction string, message any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.logger.LogAttrs(ctx, slog.LevelDebug, "message",
		slog.String("boundary", boundary),
		slog.String("direction", direction),
		slog.Any("message", describe(message)))
}

// describe keeps byte payloads readable and exposes the channel of tagged
// results.
func describe(message any) any {
	switch m := message.(type) {
	case []byte:
		return string(m)
	case interface {
		IsSuccess() bool
		Err() error
	}:
		if m.IsSuccess() {
			return "ok"
		}
		return "error: " + errText(m.Err())
	}
	return message
}

func errText(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
