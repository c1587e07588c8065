package observe

import (
	"github.com/ib-77/sansio/pkg/pipe"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts messages crossing stage boundaries.
type Metrics struct {
	messages *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg, if not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sansio",
			Subsystem: "stage",
			Name:      "messages_total",
			Help:      "Messages handled or emitted at a stage boundary.",
		}, []string{"stage", "boundary", "direction"}),
	}

	if reg != nil {
		if err := reg.Register(m.messages); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Count returns the current counter value for one stage boundary.
func (m *Metrics) Count(stage, boundary, direction string) float64 {
	var metric dto.Metric
	if err := m.messages.WithLabelValues(stage, boundary, direction).Write(&metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}

type metered[FI, FO, BI, BO any] struct {
	inner    pipe.Stage[FI, FO, BI, BO]
	frontIn  prometheus.Counter
	frontOut prometheus.Counter
	backIn   prometheus.Counter
	backOut  prometheus.Counter
}

// Metered wraps stage so that every handled and emitted message is counted
// under name. Empty polls are not counted. A nil m returns stage unwrapped.
func Metered[FI, FO, BI, BO any](name string, stage pipe.Stage[FI, FO, BI, BO],
	m *Metrics) pipe.Stage[FI, FO, BI, BO] {

	if m == nil {
		return stage
	}

	return &metered[FI, FO, BI, BO]{
		inner:    stage,
		frontIn:  m.messages.WithLabelValues(name, BoundaryFront, DirectionIn),
		frontOut: m.messages.WithLabelValues(name, BoundaryFront, DirectionOut),
		backIn:   m.messages.WithLabelValues(name, BoundaryBack, DirectionIn),
		backOut:  m.messages.WithLabelValues(name, BoundaryBack, DirectionOut),
	}
}

func (s *metered[FI, FO, BI, BO]) HandleFrontInput(message FI) {
	s.frontIn.Inc()
	s.inner.HandleFrontInput(message)
}

func (s *metered[FI, FO, BI, BO]) HandleBackInput(message BI) {
	s.backIn.Inc()
	s.inner.HandleBackInput(message)
}

func (s *metered[FI, FO, BI, BO]) PollFrontOutput() (FO, bool) {
	m, ok := s.inner.PollFrontOutput()
	if ok {
		s.frontOut.Inc()
	}
	return m, ok
}

func (s *metered[FI, FO, BI, BO]) PollBackOutput() (BO, bool) {
	m, ok := s.inner.PollBackOutput()
	if ok {
		s.backOut.Inc()
	}
	return m, ok
}
