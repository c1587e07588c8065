package number

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/ib-77/sansio/pkg/pipe/solo"
)

// Stage is the boundary signature of Codec, used when fusing it.
type Stage = pipe.Stage[string, pipe.Result[string], int, int]

// ParseError reports a line that is not a decimal integer.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Codec parses text lines into integers toward the back and formats
// integers as text toward the front. A line that does not parse never
// reaches the back: it is answered at the front with a failure carrying a
// *ParseError.
type Codec struct {
	Stage
}

func New() *Codec {
	return &Codec{
		Stage: solo.Try(parse, format, reject),
	}
}

func parse(line string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &ParseError{Line: line, Err: err}
	}
	return n, nil
}

func format(n int) pipe.Result[string] {
	return pipe.Success(strconv.Itoa(n))
}

func reject(_ string, err error) pipe.Result[string] {
	return pipe.Fail[string](err)
}
