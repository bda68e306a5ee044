package alerts

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeboard_alert_candidates_total",
		Help: "Alert candidates generated across all domains",
	})
	suppressedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeboard_alerts_suppressed_total",
		Help: "Alert candidates suppressed by the dismissal set",
	})
)
