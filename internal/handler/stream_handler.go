package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/edukit/classroom-backend/internal/config"
	"github.com/edukit/classroom-backend/internal/middleware"
	"github.com/edukit/classroom-backend/internal/service"
	ws "github.com/edukit/classroom-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// StreamHandler pushes a mark's comment thread to connected clients in
// real time over WebSocket. New comments arrive via Redis pub/sub from
// whichever server instance stored them.
type StreamHandler struct {
	rdb         *redis.Client
	markService *service.MarkService
	log         zerolog.Logger
	upgrader    websocket.Upgrader
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(rdb *redis.Client, markService *service.MarkService, log zerolog.Logger, allowedOrigins []string) *StreamHandler {
	return &StreamHandler{
		rdb:         rdb,
		markService: markService,
		log:         log.With().Str("component", "stream_handler").Logger(),
		upgrader:    buildUpgrader(allowedOrigins),
	}
}

// CommentStream godoc
// WS /ws/v1/marks/:mark_id/stream
// Upgrades to WebSocket and forwards new comments on the mark as they
// are created. Access follows the same rule as reading the thread over
// HTTP: course teachers and the submitting student.
func (h *StreamHandler) CommentStream(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	markID, ok := pathID(c, "mark_id")
	if !ok {
		return
	}

	// Same visibility gate as the HTTP thread. Denials and broken
	// chains are rejected before the upgrade so the client gets a
	// proper status code.
	if _, err := h.markService.Get(c.Request.Context(), user, markID); err != nil {
		respondError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().
		Int("user_id", user.ID).
		Int("mark_id", markID).
		Logger()

	wsLog.Info().Msg("Client connected to comment stream")

	channel := config.CacheKey.MarkCommentsChannel(markID)
	sub := h.rdb.Subscribe(c.Request.Context(), channel)
	defer sub.Close()

	// Reader goroutine: clients only send pings; anything else closes
	// the stream. Its exit signals the connection is gone.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg ws.RequestEnvelope
			if err := ws.ReadJSON(conn, &msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					wsLog.Warn().Err(err).Msg("Unexpected close")
				} else {
					wsLog.Debug().Msg("Connection closed")
				}
				return
			}
			if msg.Action == ws.ActionPing {
				ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
			}
		}
	}()

	events := sub.Channel()
	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case msg, open := <-events:
			if !open {
				wsLog.Warn().Msg("Subscription channel closed")
				ws.WriteError(conn, "comment stream closed")
				return
			}
			event := ws.CommentEvent{Event: ws.EventComment, Data: []byte(msg.Payload)}
			if err := ws.WriteTyped(conn, event); err != nil {
				wsLog.Debug().Err(err).Msg("Write failed, dropping client")
				return
			}
		}
	}
}
