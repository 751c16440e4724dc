package metrics

import "github.com/prometheus/client_golang/prometheus"

// Classifier metrics, labelled by embedding model.
var (
	ClassifierTrainingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_trainings_total",
			Help:      "Classifier training runs",
		},
		[]string{"model", "status"},
	)

	ClassifierAccuracy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "classifier_accuracy",
			Help:      "Held-out accuracy of the latest evaluation",
		},
		[]string{"model"},
	)

	ClassifierPredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_predictions_total",
			Help:      "Classifier predictions",
		},
		[]string{"model", "status"},
	)
)

var classifierMetricsRegistered bool

// RegisterClassifierMetrics registers classifier metrics. Must be called once from main.
func RegisterClassifierMetrics() {
	if classifierMetricsRegistered {
		return
	}
	prometheus.MustRegister(ClassifierTrainingsTotal, ClassifierAccuracy, ClassifierPredictionsTotal)
	classifierMetricsRegistered = true
}
