package pipe

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResult_Success(t *testing.T) {
	t.Parallel()

	r := Success(3)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.True(t, r.HasResult())
	assert.Equal(t, 3, r.Result())
	assert.NoError(t, r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestResult_Fail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	r := Fail[int](err)
	assert.True(t, r.IsFailure())
	assert.False(t, r.HasResult())
	assert.ErrorIs(t, r.Err(), err)

	w := FailWithResult("diag", err)
	assert.True(t, w.IsFailure())
	assert.True(t, w.HasResult())
	assert.Equal(t, "diag", w.Result())
	assert.NotEqual(t, r.Id(), w.Id())
}

func TestConvert(t *testing.T) {
	t.Parallel()

	s := Success(12)
	c := Convert(s, strconv.Itoa)
	assert.True(t, c.IsSuccess())
	assert.Equal(t, "12", c.Result())
	assert.Equal(t, s.Id(), c.Id())
	assert.Equal(t, s.CreatedAt(), c.CreatedAt())

	called := false
	f := Convert(Fail[int](errors.New("x")), func(n int) string {
		called = true
		return ""
	})
	assert.False(t, called)
	assert.True(t, f.IsFailure())
	assert.False(t, f.HasResult())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.True(t, IsNil(m))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(struct{}{}))
}
