package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sessionService "github.com/archylab/archy/internal/services/session"
)

type openSessionRequest struct {
	Location      string `json:"location"`
	IsIndoor      bool   `json:"is_indoor"`
	ShotsPerRound int    `json:"shots_per_round"`
}

// openSession handles POST /v0/sessions
func (s *Server) openSession(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := s.sessions.Open(c.Request.Context(), &sessionService.OpenInput{
		OwnerArcherID: archerID,
		Location:      req.Location,
		IsIndoor:      req.IsIndoor,
		ShotsPerRound: req.ShotsPerRound,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Session)
}

// closeSession handles PATCH /v0/sessions/:id/close
func (s *Server) closeSession(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	_, err := s.sessions.Close(c.Request.Context(), &sessionService.CloseInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// reopenSession handles PATCH /v0/sessions/:id/reopen
func (s *Server) reopenSession(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	_, err := s.sessions.Reopen(c.Request.Context(), &sessionService.ReopenInput{
		SessionID:   c.Param("id"),
		RequesterID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listOpenSessions handles GET /v0/sessions
func (s *Server) listOpenSessions(c *gin.Context) {
	output, err := s.sessions.ListOpenSessions(c.Request.Context(), &sessionService.ListOpenSessionsInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": output.Sessions})
}

// listClosedSessions handles GET /v0/sessions/closed
func (s *Server) listClosedSessions(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	output, err := s.sessions.ListClosedSessions(c.Request.Context(), &sessionService.ListClosedSessionsInput{
		OwnerArcherID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": output.Sessions})
}

// ownerOpenSession handles GET /v0/sessions/mine
func (s *Server) ownerOpenSession(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	output, err := s.sessions.OwnerOpenSession(c.Request.Context(), &sessionService.OwnerOpenSessionInput{
		OwnerArcherID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if output.Session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no open session"})
		return
	}

	c.JSON(http.StatusOK, output.Session)
}
