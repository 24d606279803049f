package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket upgrades to WebSocket and pushes each re-analyzed report to
// the client. The client renders the initial report from /api/report; this
// stream only carries refreshes.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	reports := s.hub.Subscribe()
	defer s.hub.Unsubscribe(reports)

	// Read pump — detect client disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Write pump — send each refreshed report as JSON.
	for {
		select {
		case <-done:
			return
		case rep, ok := <-reports:
			if !ok {
				return
			}
			if err := conn.WriteJSON(rep); err != nil {
				log.Printf("websocket write failed: %v", err)
				return
			}
		}
	}
}
