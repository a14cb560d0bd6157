package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"wowcpe/internal/app/wcpe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	// Cache the most recently resolved now-playing entry.
	nowPlayingPtr atomic.Pointer[wcpe.ResolvedEntry]
)

// GetPlaying answers a playlist lookup as JSON. The optional time query names
// the requested moment, either RFC3339 or a wall-clock time today such as
// 15:30 or 3:30pm; without it the current time is used.
func GetPlaying(c *gin.Context) {
	reqTime := time.Now().Truncate(time.Second)
	if timeStr := c.Query("time"); timeStr != "" {
		t, err := parseTimeParam(timeStr, time.Now())
		if err != nil {
			logger.Warn("The time parameter could not be parsed.", zap.String("time", timeStr))
			lookupCounter.WithLabelValues(outcomeBadRequest).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: invalid time", timeStr)})
			return
		}
		reqTime = t
	} else if entry := nowPlayingPtr.Load(); entry != nil &&
		!reqTime.Before(entry.StartTime) && !reqTime.After(entry.EndTime) {
		// The cached entry still covers now, no fetch is needed.
		lookupCounter.WithLabelValues(outcomeOK).Inc()
		c.PureJSON(http.StatusOK, entry)
		return
	}

	entry, err := lookup(c.Request.Context(), reqTime)
	if err != nil {
		logger.Error("Failed to look up the playlist entry.", zap.Error(err))
		status, outcome := lookupStatus(err)
		lookupCounter.WithLabelValues(outcome).Inc()
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	lookupCounter.WithLabelValues(outcomeOK).Inc()
	c.PureJSON(http.StatusOK, entry)
}

// lookup resolves one request and feeds the duration histogram.
func lookup(ctx context.Context, reqTime time.Time) (*wcpe.ResolvedEntry, error) {
	start := time.Now()
	entry, err := wcpeClient.Lookup(ctx, wcpe.Request{Time: reqTime})
	lookupDuration.Observe(time.Since(start).Seconds())
	return entry, err
}

// lookupStatus maps a lookup failure to an HTTP status and a metric outcome.
// A time outside the published window and a time no row covers are both the
// client's problem; everything else means the station page let us down.
func lookupStatus(err error) (int, string) {
	switch {
	case errors.Is(err, wcpe.ErrUnavailable):
		return http.StatusNotFound, outcomeUnavailable
	case errors.Is(err, wcpe.ErrNoEntry):
		return http.StatusNotFound, outcomeNoEntry
	default:
		return http.StatusBadGateway, outcomeUpstream
	}
}

// parseTimeParam reads the time query parameter, RFC3339 first, then as a
// wall-clock time today in the server's local timezone.
func parseTimeParam(s string, now time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	hour, minute, err := wcpe.ParseClock(s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
}

// updateNowPlaying refreshes the cached now-playing entry.
func updateNowPlaying(ctx context.Context) error {
	entry, err := lookup(ctx, time.Now().Truncate(time.Second))
	if err != nil {
		return err
	}

	logger.Sugar().Infof("Now-playing entry updated: %s / %s.", entry.Program, entry.Title)
	nowPlayingPtr.Store(entry)

	return nil
}
