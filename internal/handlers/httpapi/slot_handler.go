package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	slotService "github.com/archylab/archy/internal/services/slot"
)

type joinRequest struct {
	SessionID  string  `json:"session_id" binding:"required"`
	Distance   int     `json:"distance" binding:"required"`
	FaceType   string  `json:"face_type"`
	BowStyle   string  `json:"bow_style"`
	DrawWeight float64 `json:"draw_weight"`
	ClubID     string  `json:"club_id"`
}

// joinSession handles POST /v0/slots
func (s *Server) joinSession(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := s.slots.Join(c.Request.Context(), &slotService.JoinInput{
		SessionID:  req.SessionID,
		ArcherID:   archerID,
		Distance:   req.Distance,
		FaceType:   req.FaceType,
		BowStyle:   req.BowStyle,
		DrawWeight: req.DrawWeight,
		ClubID:     req.ClubID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"target_id": output.TargetID,
		"slot_id":   output.SlotID,
		"code":      output.Code,
	})
}

// leaveSlot handles PATCH /v0/slots/:id/leave
func (s *Server) leaveSlot(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	_, err := s.slots.Leave(c.Request.Context(), &slotService.LeaveInput{
		SlotID:      c.Param("id"),
		RequesterID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// rejoinSlot handles PATCH /v0/slots/:id/rejoin
func (s *Server) rejoinSlot(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	output, err := s.slots.Rejoin(c.Request.Context(), &slotService.RejoinInput{
		SlotID:      c.Param("id"),
		RequesterID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": output.Code})
}

// activeSlot handles GET /v0/slots/mine
func (s *Server) activeSlot(c *gin.Context) {
	archerID, ok := requesterID(c)
	if !ok {
		return
	}

	output, err := s.slots.ActiveSlot(c.Request.Context(), &slotService.ActiveSlotInput{
		ArcherID: archerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slot": output.Slot,
		"code": output.Code,
	})
}
