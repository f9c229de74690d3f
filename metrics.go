package pdfstruct

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the parse counters. A nil *metrics records nothing.
type metrics struct {
	pages   prometheus.Counter
	tables  *prometheus.CounterVec
	tocTier *prometheus.CounterVec
}

// newMetrics registers the parse counters on reg. Counters already
// registered by an earlier parser are reused.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		return nil, nil
	}
	m := &metrics{
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pdfstruct_pages_total",
			Help: "Pages extracted from PDF sources.",
		}),
		tables: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pdfstruct_tables_total",
			Help: "Table candidates by outcome.",
		}, []string{"result"}),
		tocTier: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pdfstruct_toc_tier_total",
			Help: "Documents by the evidence tier that produced their headings.",
		}, []string{"source"}),
	}

	var err error
	if m.pages, err = register(reg, m.pages); err != nil {
		return nil, err
	}
	if m.tables, err = register(reg, m.tables); err != nil {
		return nil, err
	}
	if m.tocTier, err = register(reg, m.tocTier); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) page() {
	if m != nil {
		m.pages.Inc()
	}
}

func (m *metrics) table(result string, n int) {
	if m != nil && n > 0 {
		m.tables.WithLabelValues(result).Add(float64(n))
	}
}

func (m *metrics) tier(source string) {
	if m != nil {
		m.tocTier.WithLabelValues(source).Inc()
	}
}
