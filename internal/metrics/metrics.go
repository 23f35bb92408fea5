package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	ScoringDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobmatch_scoring_duration_seconds",
			Help:    "Duration of one full recommendation scan in seconds.",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)
	RecommendationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobmatch_recommendations_total",
			Help: "Total number of recommendation requests served.",
		},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobmatch_applications_submitted_total",
			Help: "Total number of submitted applications.",
		},
	)
	TriageCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobmatch_triage_total",
			Help: "Total number of triaged applications per decision.",
		},
		[]string{"decision"},
	)
	RescoredCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobmatch_applications_rescored_total",
			Help: "Total number of re-annotated pending applications.",
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(ScoringDuration)
	prometheus.MustRegister(RecommendationsCounter)
	prometheus.MustRegister(ApplicationsSubmittedCounter)
	prometheus.MustRegister(TriageCounter)
	prometheus.MustRegister(RescoredCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
