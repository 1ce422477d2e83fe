package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ems"

type metrics struct {
	httpRequests   *prometheus.CounterVec
	bootstrapSteps *prometheus.CounterVec
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		httpRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of handled HTTP requests.",
		}, []string{"method", "route", "status"}),
		bootstrapSteps: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bootstrap_steps_total",
			Help:      "Total number of employee bootstrap inserts by step and result.",
		}, []string{"step", "result"}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

func HTTPRequests() *prometheus.CounterVec {
	return getMetrics().httpRequests
}

func BootstrapSteps() *prometheus.CounterVec {
	return getMetrics().bootstrapSteps
}

// RecordBootstrapStep counts one bootstrap insert; result is "ok" or "error".
func RecordBootstrapStep(step string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	getMetrics().bootstrapSteps.WithLabelValues(step, result).Inc()
}

// Middleware counts requests by their matched route template, not the raw path.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		getMetrics().httpRequests.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
