package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/place-of-your-own/artworks/internal/coach"
)

const coachWSReadLimit = 64 << 10

var coachWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// coachWSInMessage is the JSON shape sent from the client per frame.
type coachWSInMessage struct {
	Message string          `json:"message"`
	History []coach.Message `json:"history"`
}

// coachWSOutMessage is the JSON shape sent to the client per frame.
type coachWSOutMessage struct {
	Message string         `json:"message,omitempty"`
	Type    coach.Category `json:"type,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// CoachWS handles GET /v1/coach/ws, the WebSocket chat transport. Each
// inbound frame carries one message plus history; each outbound frame is the
// routed reply.
func (h *Handler) CoachWS(w http.ResponseWriter, r *http.Request) {
	conn, err := coachWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("coach ws upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(coachWSReadLimit)
	conn.SetReadDeadline(time.Now().Add(30 * time.Minute))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(30 * time.Minute))
		return nil
	})

	for {
		var in coachWSInMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			log.Debug().Err(err).Msg("coach ws read")
			return
		}
		conn.SetReadDeadline(time.Now().Add(30 * time.Minute))

		if strings.TrimSpace(in.Message) == "" {
			if err := conn.WriteJSON(coachWSOutMessage{Error: "message is required"}); err != nil {
				return
			}
			continue
		}

		resp := h.coach.Respond(r.Context(), in.Message, in.History)
		if err := conn.WriteJSON(coachWSOutMessage{Message: resp.Message, Type: resp.Type}); err != nil {
			log.Debug().Err(err).Msg("coach ws write")
			return
		}
	}
}
