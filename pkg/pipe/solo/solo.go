package solo

import (
	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/ib-77/sansio/pkg/pipe/queue"
)

// step is a stage that processes every message as soon as it is handled.
// forward either produces a back output or answers at the front.
type step[FI, FO, BI, BO any] struct {
	forward  func(in FI) (out BO, reply FO, toBack bool)
	backward func(in BI) FO
	front    queue.Queue[FO]
	back     queue.Queue[BO]
}

func (s *step[FI, FO, BI, BO]) HandleFrontInput(message FI) {
	out, reply, toBack := s.forward(message)
	if toBack {
		s.back.Push(out)
		return
	}
	s.front.Push(reply)
}

func (s *step[FI, FO, BI, BO]) HandleBackInput(message BI) {
	s.front.Push(s.backward(message))
}

func (s *step[FI, FO, BI, BO]) PollFrontOutput() (FO, bool) {
	return s.front.Pop()
}

func (s *step[FI, FO, BI, BO]) PollBackOutput() (BO, bool) {
	return s.back.Pop()
}

// Map transforms messages in both directions.
func Map[FI, FO, BI, BO any](forward func(in FI) BO,
	backward func(in BI) FO) pipe.Stage[FI, FO, BI, BO] {

	return &step[FI, FO, BI, BO]{
		forward: func(in FI) (out BO, reply FO, toBack bool) {
			return forward(in), reply, true
		},
		backward: backward,
	}
}

// Try transforms front input with a function that may fail. A failure never
// reaches the back boundary: onError turns it into a front output instead.
func Try[FI, FO, BI, BO any](forward func(in FI) (BO, error),
	backward func(in BI) FO,
	onError func(in FI, err error) FO) pipe.Stage[FI, FO, BI, BO] {

	return &step[FI, FO, BI, BO]{
		forward: func(in FI) (out BO, reply FO, toBack bool) {
			out, err := forward(in)
			if err != nil {
				return out, onError(in, err), false
			}
			return out, reply, true
		},
		backward: backward,
	}
}

// Validate passes valid front input to the back boundary unchanged and
// answers invalid input at the front with reject. Back input goes to the
// front untouched.
func Validate[T, FO any](validate func(in T) (valid bool, errMsg string),
	reject func(in T, errMsg string) FO) pipe.Stage[T, FO, FO, T] {

	return &step[T, FO, FO, T]{
		forward: func(in T) (out T, reply FO, toBack bool) {
			if valid, errMsg := validate(in); !valid {
				return out, reject(in, errMsg), false
			}
			return in, reply, true
		},
		backward: func(in FO) FO { return in },
	}
}

// Identity passes messages through in both directions. Fused to either side
// of a stage it leaves the output sequence of each boundary unchanged. It
// buffers until polled, so the interleaving of the two directions at one
// boundary may differ.
func Identity[F, B any]() pipe.Stage[F, B, B, F] {
	return Map(func(in F) F { return in }, func(in B) B { return in })
}
