package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cms_applications_submitted_total",
			Help: "Total number of vacancy applications accepted.",
		},
	)
	ApplicationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cms_applications_rejected_total",
			Help: "Total number of vacancy applications rejected by the eligibility rules.",
		},
		[]string{"rule"},
	)
	StatusCorrections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cms_vacancy_status_corrections_total",
			Help: "Total number of vacancy status corrections applied by the reconciler.",
		},
	)
	ReconcileFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cms_vacancy_reconcile_failures_total",
			Help: "Total number of status corrections that failed to persist.",
		},
	)
)

// Register registers all collectors with the default registry. Call once
// at startup.
func Register() {
	prometheus.MustRegister(ApplicationsSubmitted)
	prometheus.MustRegister(ApplicationsRejected)
	prometheus.MustRegister(StatusCorrections)
	prometheus.MustRegister(ReconcileFailures)
}
