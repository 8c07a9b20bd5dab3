package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	shotRepo "github.com/archylab/archy/internal/repositories/shot"
	"github.com/archylab/archy/internal/services/livestats"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type recordShotRequest struct {
	X       *float64 `json:"x"`
	Y       *float64 `json:"y"`
	Score   *int     `json:"score"`
	ArrowID string   `json:"arrow_id"`
}

// recordShot handles POST /v0/slots/:id/shots
func (s *Server) recordShot(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	var req recordShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	output, err := s.stats.RecordShot(c.Request.Context(), &livestats.RecordShotInput{
		SlotID:  c.Param("id"),
		X:       req.X,
		Y:       req.Y,
		Score:   req.Score,
		ArrowID: req.ArrowID,
	})
	if err != nil {
		if errors.Is(err, shotRepo.ErrInvalidCoordinates) || errors.Is(err, shotRepo.ErrInvalidScore) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, output.Shot)
}

// getLiveStat handles GET /v0/stats/:slot_id
func (s *Server) getLiveStat(c *gin.Context) {
	output, err := s.stats.GetLiveStat(c.Request.Context(), &livestats.GetLiveStatInput{
		SlotID: c.Param("slot_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.LiveStat)
}

// streamStats handles GET /v0/stats/:slot_id/ws. Each connected client
// gets the slot's snapshot followed by one frame per recorded shot, in
// commit order, until the client disconnects.
func (s *Server) streamStats(c *gin.Context) {
	slotID := c.Param("slot_id")

	sub, err := s.broker.Subscribe(slotID)
	if err != nil {
		respondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Close()
		// Upgrade already wrote the failure response
		return
	}

	go readPump(conn, sub)
	writePump(conn, sub, slotID)
}

// readPump discards client frames; its job is noticing the disconnect
// and detaching from the broker
func readPump(conn *websocket.Conn, sub *BrokerSubscription) {
	defer sub.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump relays live stats to the client as JSON frames
func writePump(conn *websocket.Conn, sub *BrokerSubscription, slotID string) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		sub.Close()
		conn.Close()
	}()

	for {
		select {
		case stat, ok := <-sub.Events():
			if !ok {
				select {
				case err := <-sub.Errs():
					slog.Warn("stats stream failed", "slot_id", slotID, "error", err)
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "stream lost"),
						time.Now().Add(wsWriteWait))
				default:
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
						time.Now().Add(wsWriteWait))
				}
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(stat); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
