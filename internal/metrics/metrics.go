package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_registrations_total",
			Help: "Member registrations by payment method and resolved payment status",
		},
		[]string{"method", "payment_status"},
	)

	PaymentTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gym_payment_transitions_total",
			Help: "Confirm/reject transitions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	CardCaptureDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "gym_card_capture_duration_seconds",
			Help: "Time taken to capture card payments",
		},
	)
)

func Register() {
	prometheus.MustRegister(RegistrationsTotal, PaymentTransitionsTotal, CardCaptureDuration)
}
