package drive

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/sansio/pkg/pipe"
)

var ErrMissingHandler = errors.New("drive: Logic and Emit handlers are required")

type Handlers[FO, BI, BO any] struct {
	// Logic answers every message leaving the back boundary. Required.
	Logic func(ctx context.Context, out BO) BI
	// Emit writes every message leaving the front boundary. Required.
	Emit func(ctx context.Context, out FO) error
	// OnEOF runs once the reader is exhausted, before the final drain.
	OnEOF func(ctx context.Context)
}

// Loop drives stage with bytes read from r until EOF or cancellation.
//
// Internal production is served first: back output goes through Logic and
// straight back in, front output goes to Emit. Only when the stage has
// nothing ready does Loop wait for the next chunk from r.
//
// Loop returns nil at EOF, ctx.Err() when cancelled, otherwise the read or
// emit error. On a read error the stage is flushed before returning, but
// OnEOF is not called, so an unterminated tail stays buffered. A Read
// blocked at cancellation is left to finish in the background; its data is
// dropped.
func Loop[FO, BI, BO any](ctx context.Context, stage pipe.Stage[[]byte, FO, BI, BO],
	r io.Reader, handlers Handlers[FO, BI, BO]) error {

	if handlers.Logic == nil || handlers.Emit == nil {
		return ErrMissingHandler
	}

	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	go read(readCtx, r, GetReadSize(ctx, DefaultReadSize), chunks, readErr)

	for {
		served, err := serve(ctx, stage, handlers)
		if err != nil {
			return err
		}
		if served {
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case chunk, ok := <-chunks:
			if ok {
				stage.HandleFrontInput(chunk)
				continue
			}

			select {
			case err := <-readErr:
				return errors.Join(fmt.Errorf("drive: read: %w", err),
					Flush(ctx, stage, handlers))
			default:
			}

			if handlers.OnEOF != nil {
				handlers.OnEOF(ctx)
			}
			return Flush(ctx, stage, handlers)
		}
	}
}

// Flush serves the stage until it has nothing ready at either boundary.
func Flush[FO, BI, BO any](ctx context.Context, stage pipe.Stage[[]byte, FO, BI, BO],
	handlers Handlers[FO, BI, BO]) error {

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		served, err := serve(ctx, stage, handlers)
		if err != nil {
			return err
		}
		if !served {
			return nil
		}
	}
}

// serve moves at most one message out of the stage.
func serve[FO, BI, BO any](ctx context.Context, stage pipe.Stage[[]byte, FO, BI, BO],
	handlers Handlers[FO, BI, BO]) (bool, error) {

	if out, ok := stage.PollBackOutput(); ok {
		stage.HandleBackInput(handlers.Logic(ctx, out))
		return true, nil
	}

	if out, ok := stage.PollFrontOutput(); ok {
		if err := handlers.Emit(ctx, out); err != nil {
			return false, fmt.Errorf("drive: emit: %w", err)
		}
		return true, nil
	}

	return false, nil
}

// read forwards chunks from r until EOF or an error. A non-EOF error is
// sent to errCh before chunks is closed.
func read(ctx context.Context, r io.Reader, size int, chunks chan<- []byte, errCh chan<- error) {
	defer close(chunks)

	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				errCh <- err
			}
			return
		}
	}
}
