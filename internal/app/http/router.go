package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"signupservice/internal/app/http/handler"
	"signupservice/internal/app/http/middleware"
	"signupservice/internal/infrastructure/metrics"
)

type RouterOptions struct {
	// StaticDir, when set, serves the web client under /static and
	// redirects / to it.
	StaticDir string
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
}

func NewRouter(h *handler.Handler, log *zap.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.UseRawPath = true

	r.Use(
		middleware.RequestID(),
		middleware.ZapLogger(log),
		middleware.ZapRecovery(log),
	)
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}

	r.GET("/health", h.Health)

	r.GET("/activities", h.ListActivities)
	r.POST("/activities/:name/signup", h.Signup)
	r.DELETE("/activities/:name/participants", h.RemoveParticipant)

	if opts.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "/static/")
		})
	}

	return r
}
