package handlers

import "github.com/prometheus/client_golang/prometheus"

var (
	turnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratebot_turns_total",
			Help: "Turns processed, by intent and resulting dialog action",
		},
		[]string{"intent", "action"},
	)

	turnFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratebot_turn_failures_total",
			Help: "Turns that ended in a hard failure, by intent",
		},
		[]string{"intent"},
	)

	recordsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratebot_records_emitted_total",
			Help: "Finalized records written to the event stream, by record type",
		},
		[]string{"record_type"},
	)
)

func init() {
	prometheus.MustRegister(turnsTotal, turnFailures, recordsEmitted)
}
