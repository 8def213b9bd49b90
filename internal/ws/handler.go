package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"mockinterview/internal/config"
	"mockinterview/internal/interview"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS layer for the HTTP surface;
		// the channel itself accepts any origin.
		return true
	},
}

// Handler serves the persistent text-channel variant of the interview flow.
// Each inbound text frame is one user message; the reply goes back on the
// same connection.
type Handler struct {
	interview interview.Service
}

func NewHandler(s interview.Service) *Handler {
	return &Handler{interview: s}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Infof("websocket session opened for user %s", userID)

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Warnf("websocket read failed for user %s", userID)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := h.interview.HandleMessage(r.Context(), userID, string(payload))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.WithError(err).Warnf("websocket write failed for user %s", userID)
			return
		}
	}
}
