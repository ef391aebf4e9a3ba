package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CheckIns counts successful check-ins partitioned by resulting
	// status (PRESENT or LATE).
	CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interntrack",
		Name:      "checkins_total",
		Help:      "Number of successful attendance check-ins by status.",
	}, []string{"status"})

	// CheckInRejections counts check-in attempts rejected by a
	// precondition, partitioned by reason.
	CheckInRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interntrack",
		Name:      "checkin_rejections_total",
		Help:      "Number of rejected check-in attempts by reason.",
	}, []string{"reason"})

	// SweepRuns counts absence sweep executions by outcome.
	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interntrack",
		Name:      "absence_sweep_runs_total",
		Help:      "Number of absence sweep executions by outcome.",
	}, []string{"outcome"})

	// SweepAbsencesCreated counts absent records written by the sweep.
	SweepAbsencesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "interntrack",
		Name:      "absence_sweep_records_total",
		Help:      "Number of absent records created by the absence sweep.",
	})

	// LeaveDecisions counts leave request decisions by status.
	LeaveDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interntrack",
		Name:      "leave_decisions_total",
		Help:      "Number of leave request decisions by status.",
	}, []string{"status"})
)

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
