package pipe

// FeedFront handles messages at the front boundary in order.
func FeedFront[FI, FO, BI, BO any](s Stage[FI, FO, BI, BO], messages ...FI) {
	for _, m := range messages {
		s.HandleFrontInput(m)
	}
}

// FeedBack handles messages at the back boundary in order.
func FeedBack[FI, FO, BI, BO any](s Stage[FI, FO, BI, BO], messages ...BI) {
	for _, m := range messages {
		s.HandleBackInput(m)
	}
}

// DrainFront polls the front boundary until nothing is ready.
func DrainFront[FI, FO, BI, BO any](s Stage[FI, FO, BI, BO]) []FO {
	res := make([]FO, 0)
	for {
		m, ok := s.PollFrontOutput()
		if !ok {
			return res
		}
		res = append(res, m)
	}
}

// DrainBack polls the back boundary until nothing is ready.
func DrainBack[FI, FO, BI, BO any](s Stage[FI, FO, BI, BO]) []BO {
	res := make([]BO, 0)
	for {
		m, ok := s.PollBackOutput()
		if !ok {
			return res
		}
		res = append(res, m)
	}
}

// Quiesce drains both boundaries, alternating until neither has anything
// ready, and returns everything collected in poll order per boundary.
func Quiesce[FI, FO, BI, BO any](s Stage[FI, FO, BI, BO]) (front []FO, back []BO) {
	front = make([]FO, 0)
	back = make([]BO, 0)
	for {
		f := DrainFront(s)
		b := DrainBack(s)
		if len(f) == 0 && len(b) == 0 {
			return front, back
		}
		front = append(front, f...)
		back = append(back, b...)
	}
}
