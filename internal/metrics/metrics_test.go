package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBootstrapStep(t *testing.T) {
	okBefore := testutil.ToFloat64(BootstrapSteps().WithLabelValues("leave", "ok"))
	errBefore := testutil.ToFloat64(BootstrapSteps().WithLabelValues("leave", "error"))

	RecordBootstrapStep("leave", nil)
	RecordBootstrapStep("leave", errors.New("boom"))
	RecordBootstrapStep("leave", errors.New("boom"))

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(BootstrapSteps().WithLabelValues("leave", "ok")), 0)
	assert.InDelta(t, errBefore+2, testutil.ToFloat64(BootstrapSteps().WithLabelValues("leave", "error")), 0)
}

func TestMiddlewareUsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/api/things/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	counter := HTTPRequests().WithLabelValues(http.MethodGet, "/api/things/:id", "204")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/things/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordBootstrapStep("payroll", nil)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ems_bootstrap_steps_total")
}
