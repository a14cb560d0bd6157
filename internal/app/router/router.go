package router

import (
	"context"
	"net/http"
	"time"

	"wowcpe/internal/app/config"
	"wowcpe/internal/app/wcpe"
	"wowcpe/internal/app/wcpe/classical"
	"wowcpe/internal/pkg/pagecache"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	wcpeClient wcpe.Client
)

func NewEngine(ctx context.Context, conf *config.Config, cache *pagecache.Cache, interval time.Duration) (*gin.Engine, error) {
	logger = zap.L()

	gin.SetMode(gin.ReleaseMode)

	// Create the WCPE client.
	var err error
	wcpeClient, err = newWCPEClient(conf, cache)
	if err != nil {
		return nil, err
	}

	// Resolve the now-playing entry once before serving. A failure here is
	// not fatal: the first request simply pays for a live lookup.
	if err = updateNowPlaying(ctx); err != nil {
		logger.Error("Failed to update the now-playing entry.", zap.Error(err))
	}

	// Keep the now-playing entry warm.
	Schedule(ctx, interval)

	r := gin.New()

	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// Look up the entry airing now or at a given time.
	r.GET("/playing", GetPlaying)

	// Prometheus metrics.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r, nil
}

// newWCPEClient creates the station client from the loaded config.
func newWCPEClient(conf *config.Config, cache *pagecache.Cache) (wcpe.Client, error) {
	return classical.NewClient(&http.Client{
		Timeout: conf.HTTPTimeout,
	}, conf.Station, conf.StationTimezone, conf.AvailabilityWindow, conf.Headers, cache)
}
