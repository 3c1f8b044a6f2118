package metricsController

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsController struct {
	registry *prometheus.Registry
}

func New(registry *prometheus.Registry) *MetricsController {
	return &MetricsController{registry: registry}
}

func (c *MetricsController) RegisterRoutes(r *gin.Engine) {
	handler := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	r.GET("/metrics", gin.WrapH(handler))
}
