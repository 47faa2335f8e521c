package server

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/session"
)

const (
	writeWait  = 10 * time.Second
	maxMsgSize = 64 * 1024
)

// Reply is sent for every websocket message received, and once on connect.
type Reply struct {
	Type   string          `json:"type"` // "status" or "error"
	Status *session.Status `json:"status,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// serveWS applies each inbound event to the session and answers with the
// resulting status. A malformed message closes the connection.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.origins,
	})
	if err != nil {
		paint.Logger().Warn("server: websocket accept", "error", err)
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(maxMsgSize)

	log := paint.Logger().With("conn", uuid.NewString())
	log.Info("server: websocket connected", "remote", r.RemoteAddr)

	ctx := r.Context()
	st, err := s.sess.Status(ctx)
	if err != nil {
		conn.Close(websocket.StatusTryAgainLater, "session unavailable")
		return
	}
	if err := write(ctx, conn, Reply{Type: "status", Status: &st}); err != nil {
		return
	}

	for {
		var e session.Event
		if err := wsjson.Read(ctx, conn, &e); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Info("server: websocket closed")
			default:
				log.Debug("server: websocket read", "error", err)
			}
			return
		}

		st, err := s.sess.Submit(ctx, e)
		if unavailable(err) {
			conn.Close(websocket.StatusTryAgainLater, "session unavailable")
			return
		}
		reply := Reply{Type: "status", Status: &st}
		if err != nil {
			reply.Type, reply.Error = "error", err.Error()
		}
		if err := write(ctx, conn, reply); err != nil {
			log.Debug("server: websocket write", "error", err)
			return
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, reply Reply) error {
	ctx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return wsjson.Write(ctx, conn, reply)
}
