package drive

import "context"

type OptionKey string

const (
	ReadOptionKey OptionKey = "read_options"
)

// DefaultReadSize is the chunk size used when none is set on the context.
const DefaultReadSize = 100

type ReadOptions struct {
	Size int
}

func WithReadSize(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, ReadOptionKey, ReadOptions{Size: size})
}

func GetReadSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(ReadOptionKey).(ReadOptions)
	if ok && options.Size > 0 {
		return options.Size
	}
	return defaultSize
}
