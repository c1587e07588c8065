package solo

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_BothDirections(t *testing.T) {
	t.Parallel()

	s := Map(strings.ToUpper, func(n int) string { return strconv.Itoa(n) })

	pipe.FeedFront(s, "a", "b")
	pipe.FeedBack(s, 1, 2)

	assert.Equal(t, []string{"A", "B"}, pipe.DrainBack(s))
	assert.Equal(t, []string{"1", "2"}, pipe.DrainFront(s))

	_, ok := s.PollBackOutput()
	assert.False(t, ok)
	_, ok = s.PollFrontOutput()
	assert.False(t, ok)
}

func TestTry_FailureAnsweredAtFront(t *testing.T) {
	t.Parallel()

	s := Try(
		strconv.Atoi,
		strconv.Itoa,
		func(in string, err error) string { return "bad: " + in })

	s.HandleFrontInput("7")
	s.HandleFrontInput("x")
	s.HandleFrontInput("8")

	assert.Equal(t, []int{7, 8}, pipe.DrainBack(s))
	assert.Equal(t, []string{"bad: x"}, pipe.DrainFront(s))
}

func TestTry_RepliesKeepArrivalOrder(t *testing.T) {
	t.Parallel()

	s := Try(
		func(in string) (int, error) { return 0, errors.New("never") },
		strconv.Itoa,
		func(in string, err error) string { return in + ":" + err.Error() })

	s.HandleBackInput(1)
	s.HandleFrontInput("a")
	s.HandleBackInput(2)

	assert.Equal(t, []string{"1", "a:never", "2"}, pipe.DrainFront(s))
	assert.Empty(t, pipe.DrainBack(s))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	s := Validate(
		func(in int) (bool, string) {
			if in < 0 {
				return false, "negative"
			}
			return true, ""
		},
		func(in int, errMsg string) string { return strconv.Itoa(in) + " is " + errMsg })

	pipe.FeedFront(s, 1, -1, 2)
	s.HandleBackInput("done")

	assert.Equal(t, []int{1, 2}, pipe.DrainBack(s))
	assert.Equal(t, []string{"-1 is negative", "done"}, pipe.DrainFront(s))
}

func TestIdentity_KeepsOutputPerBoundary(t *testing.T) {
	t.Parallel()

	build := func() pipe.Stage[string, string, int, int] {
		return Try(
			strconv.Atoi,
			strconv.Itoa,
			func(in string, err error) string { return "bad " + in })
	}

	left, err := pipe.Fuse(Identity[string, string](), build())
	require.NoError(t, err)
	right, err := pipe.Fuse(build(), Identity[int, int]())
	require.NoError(t, err)

	stages := map[string]pipe.Stage[string, string, int, int]{
		"bare":  build(),
		"left":  left,
		"right": right,
	}
	for name, s := range stages {
		pipe.FeedFront(s, "1", "z", "3")
		assert.Equal(t, []int{1, 3}, pipe.DrainBack(s), name)
		assert.Equal(t, []string{"bad z"}, pipe.DrainFront(s), name)

		pipe.FeedBack(s, 10, 20)
		assert.Equal(t, []string{"10", "20"}, pipe.DrainFront(s), name)
		assert.Empty(t, pipe.DrainBack(s), name)

		front, back := pipe.Quiesce(s)
		assert.Empty(t, front, name)
		assert.Empty(t, back, name)
	}
}
