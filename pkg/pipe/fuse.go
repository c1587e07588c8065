package pipe

import (
	"errors"
	"fmt"
)

var ErrNilStage = errors.New("pipe: nil stage")

// fused owns a (front facing) and b (back facing). M flows from a to b,
// N flows from b to a; neither is visible from the outside.
type fused[FI, FO, M, N, BI, BO any] struct {
	a Stage[FI, FO, N, M]
	b Stage[M, N, BI, BO]
}

// Fuse composes a and b into a single stage exposing a's front boundary and
// b's back boundary. The types flowing between them must match, which the
// compiler checks; nil stages are rejected with ErrNilStage.
//
// Fuse takes ownership of both stages: callers must not use them directly
// afterwards.
func Fuse[FI, FO, M, N, BI, BO any](a Stage[FI, FO, N, M],
	b Stage[M, N, BI, BO]) (Stage[FI, FO, BI, BO], error) {

	if IsNil(a) {
		return nil, fmt.Errorf("%w: front stage", ErrNilStage)
	}
	if IsNil(b) {
		return nil, fmt.Errorf("%w: back stage", ErrNilStage)
	}

	return &fused[FI, FO, M, N, BI, BO]{a: a, b: b}, nil
}

// MustFuse is like Fuse but panics on error. Intended for static wiring.
func MustFuse[FI, FO, M, N, BI, BO any](a Stage[FI, FO, N, M],
	b Stage[M, N, BI, BO]) Stage[FI, FO, BI, BO] {

	s, err := Fuse(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Fuse3 fuses three stages as (a∘b)∘c. Fusion is associative, so the result
// behaves the same as a∘(b∘c).
func Fuse3[FI, FO, M1, N1, M2, N2, BI, BO any](a Stage[FI, FO, N1, M1],
	b Stage[M1, N1, N2, M2],
	c Stage[M2, N2, BI, BO]) (Stage[FI, FO, BI, BO], error) {

	ab, err := Fuse(a, b)
	if err != nil {
		return nil, err
	}
	return Fuse(ab, c)
}

func (f *fused[FI, FO, M, N, BI, BO]) HandleFrontInput(message FI) {
	f.a.HandleFrontInput(message)
}

func (f *fused[FI, FO, M, N, BI, BO]) HandleBackInput(message BI) {
	f.b.HandleBackInput(message)
}

// PollBackOutput hands everything a has for b over before asking b, so an
// empty answer means nothing is pending between the two.
func (f *fused[FI, FO, M, N, BI, BO]) PollBackOutput() (BO, bool) {
	for {
		m, ok := f.a.PollBackOutput()
		if !ok {
			break
		}
		f.b.HandleFrontInput(m)
	}
	return f.b.PollBackOutput()
}

// PollFrontOutput mirrors PollBackOutput.
func (f *fused[FI, FO, M, N, BI, BO]) PollFrontOutput() (FO, bool) {
	for {
		n, ok := f.b.PollFrontOutput()
		if !ok {
			break
		}
		f.a.HandleBackInput(n)
	}
	return f.a.PollFrontOutput()
}
