package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	p := NewPrometheus()
	p.ObserveReportDispatch("success")
	p.ObserveReportDispatch("success")
	p.ObserveReportDispatch("failure")
	p.ObserveLookupFailure("client")

	assert.Equal(t, 2.0, testutil.ToFloat64(p.reportDispatch.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.reportDispatch.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.lookupFailures.WithLabelValues("client")))
}

func TestPrometheus_HandlerAndMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := NewPrometheus()

	r := gin.New()
	r.Use(p.GinMiddleware())
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(p.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `mecanica_os_http_request_duration_seconds_count{method="GET",route="/v1/ping",status="200"} 1`))
}
