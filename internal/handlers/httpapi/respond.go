package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	sessionService "github.com/archylab/archy/internal/services/session"
	slotService "github.com/archylab/archy/internal/services/slot"
	"github.com/archylab/archy/internal/services/livestats"
)

// requestLogger logs one line per request with method, path, status and
// latency
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// requesterID extracts the requesting archer's identity. Writes a 401
// and returns false when the header is missing.
func requesterID(c *gin.Context) (string, bool) {
	archerID := c.GetHeader(archerIDHeader)
	if archerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing " + archerIDHeader + " header"})
		return "", false
	}
	return archerID, true
}

// statusFor maps the service error taxonomy to HTTP statuses: conflicts
// to 409, preconditions to 404 or 409, authorization to 403, anything
// unrecognized to 502 as a transient storage failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sessionService.ErrNotFound),
		errors.Is(err, slotService.ErrSessionNotOpen),
		errors.Is(err, livestats.ErrSlotNotFound):
		return http.StatusNotFound

	case errors.Is(err, sessionService.ErrAlreadyOpen),
		errors.Is(err, sessionService.ErrAlreadyParticipating),
		errors.Is(err, sessionService.ErrHasActiveParticipants),
		errors.Is(err, slotService.ErrAlreadyParticipating),
		errors.Is(err, slotService.ErrAlreadyJoined),
		errors.Is(err, slotService.ErrAlreadyActive),
		errors.Is(err, slotService.ErrNotParticipating),
		errors.Is(err, slotService.ErrSessionClosed),
		errors.Is(err, slotService.ErrLetterConflict):
		return http.StatusConflict

	case errors.Is(err, sessionService.ErrNotOwner),
		errors.Is(err, slotService.ErrNotAllowed):
		return http.StatusForbidden

	case errors.Is(err, slotService.ErrInvalidDistance):
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusBadGateway {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"error": "storage unavailable"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
