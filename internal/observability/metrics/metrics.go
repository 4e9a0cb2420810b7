package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	bookingsTotal      *prometheus.CounterVec
	cancellationsTotal prometheus.Counter
	slotsPerDay        prometheus.Histogram
	triageTotal        *prometheus.CounterVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medagendar",
			Subsystem: "booking",
			Name:      "bookings_total",
			Help:      "Total booking attempts",
		}, []string{"status"}),
		cancellationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "medagendar",
			Subsystem: "booking",
			Name:      "cancellations_total",
			Help:      "Total appointment cancellations",
		}),
		slotsPerDay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "medagendar",
			Subsystem: "schedule",
			Name:      "slots_per_day",
			Help:      "Bookable slots generated per schedule day",
			Buckets:   []float64{0, 4, 8, 12, 16, 20, 24, 32},
		}),
		triageTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medagendar",
			Subsystem: "triage",
			Name:      "requests_total",
			Help:      "Total symptom triage requests",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.cancellationsTotal, m.slotsPerDay, m.triageTotal)
	return m
}

func (m *BookingMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

func (m *BookingMetrics) ObserveCancellation() {
	if m == nil {
		return
	}
	m.cancellationsTotal.Inc()
}

func (m *BookingMetrics) ObserveSlotsPerDay(count int) {
	if m == nil {
		return
	}
	m.slotsPerDay.Observe(float64(count))
}

func (m *BookingMetrics) ObserveTriage(outcome string) {
	if m == nil {
		return
	}
	m.triageTotal.WithLabelValues(outcome).Inc()
}
