package stream

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"flowledger/pkg/response"
)

// StreamHandler upgrades HTTP connections and pushes ledger events to
// them as JSON frames.
type StreamHandler struct {
	broadcaster *Broadcaster
	logger      interface {
		Printf(string, ...interface{})
	}
}

func NewStreamHandler(broadcaster *Broadcaster) *StreamHandler {
	return &StreamHandler{
		broadcaster: broadcaster,
		logger:      log.New(log.Writer(), "[stream] ", log.LstdFlags),
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, validate origin properly
		return true
	},
}

func (h *StreamHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ws/events", h.handleWebSocket)
	router.GET("/stream/status", h.getStatus)
}

// handleWebSocket upgrades the connection and streams ledger events
// until the client goes away.
func (h *StreamHandler) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade error: %v", err)
		return
	}

	sub := h.broadcaster.AddSubscriber(uuid.NewString())
	h.logger.Printf("subscriber %s connected", sub.ID)

	go h.readLoop(sub, conn)
	go h.writeLoop(sub, conn)
}

// readLoop only watches for the client closing the connection; the
// event stream is one-way.
func (h *StreamHandler) readLoop(sub *Subscriber, conn *websocket.Conn) {
	defer func() {
		h.broadcaster.RemoveSubscriber(sub.ID)
		conn.Close()
		h.logger.Printf("subscriber %s disconnected", sub.ID)
	}()

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Printf("websocket error for subscriber %s: %v", sub.ID, err)
			}
			return
		}
	}
}

func (h *StreamHandler) writeLoop(sub *Subscriber, conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sub.Done:
			return

		case event, ok := <-sub.Send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))

			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteJSON(event); err != nil {
				h.logger.Printf("write error for subscriber %s: %v", sub.ID, err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.logger.Printf("ping error for subscriber %s: %v", sub.ID, err)
				return
			}
		}
	}
}

// getStatus godoc
// @Summary Get stream status
// @Description Returns how many event subscribers are connected
// @Tags stream
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /stream/status [get]
func (h *StreamHandler) getStatus(c *gin.Context) {
	response.SendAPIResponse(c, http.StatusOK, true, "stream status", map[string]interface{}{
		"subscribers": h.broadcaster.SubscriberCount(),
	})
}
