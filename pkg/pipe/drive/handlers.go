package drive

import (
	"context"
	"io"

	"github.com/ib-77/sansio/pkg/pipe"
)

// Doubler is the reference business logic: it answers n with 2n. It uses
// int arithmetic, so values beyond half the int range wrap around
// (Doubler(math.MaxInt) is -2).
func Doubler(_ context.Context, n int) int {
	return 2 * n
}

// Route returns an Emit handler writing successful results to out and
// failures to errOut. Failures without a value write their error text.
func Route(out, errOut io.Writer) func(ctx context.Context, r pipe.Result[[]byte]) error {
	return func(_ context.Context, r pipe.Result[[]byte]) error {
		if r.IsSuccess() {
			_, err := out.Write(r.Result())
			return err
		}

		if r.HasResult() {
			_, err := errOut.Write(r.Result())
			return err
		}

		text := "error"
		if r.Err() != nil {
			text = r.Err().Error()
		}
		_, err := io.WriteString(errOut, text+"\n")
		return err
	}
}
