package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

// AttemptWSHandler exposes the attempt engine over a websocket: the client
// sends UI actions (select, previous, next, submit, abandon) and receives
// question and result events. Each connection owns exactly one attempt, so
// all writes happen on the read loop's goroutine and no fan-out is needed.
type AttemptWSHandler struct {
	auth     *app.AuthService
	attempts *app.AttemptService
	upgrader websocket.Upgrader
}

func NewAttemptWSHandler(auth *app.AuthService, attempts *app.AttemptService) *AttemptWSHandler {
	return &AttemptWSHandler{
		auth:     auth,
		attempts: attempts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundAction struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Option int `json:"option"`
}

type outboundEvent[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type questionEvent struct {
	AttemptID string        `json:"attemptId"`
	QuizTitle string        `json:"quizTitle"`
	Number    int           `json:"number"`
	Total     int           `json:"total"`
	Text      string        `json:"text"`
	Options   []string      `json:"options"`
	Answer    domain.Answer `json:"answer"`
}

type wsError struct {
	Message string `json:"message"`
}

// ServeWS upgrades the request, starts an attempt for the authenticated
// user, and translates actions onto the attempt engine until submission,
// abandonment, or disconnect.
func (h *AttemptWSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	token := r.URL.Query().Get("token")
	if quizID == "" || token == "" {
		http.Error(w, "missing quizId or token", http.StatusBadRequest)
		return
	}

	user, err := h.auth.CurrentUser(r.Context(), token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	attempt, err := h.attempts.Start(r.Context(), quizID, user)
	if err != nil {
		h.send(conn, "error", wsError{Message: userMessage(err)})
		return
	}
	// Dropping the connection abandons the attempt; only an explicit submit
	// reaches the ledger.
	submitted := false
	defer func() {
		if !submitted {
			_ = h.attempts.Abandon(r.Context(), attempt.ID, user.ID)
		}
	}()

	h.send(conn, "question", questionView(attempt))

	for {
		var action inboundAction
		if err := conn.ReadJSON(&action); err != nil {
			return
		}
		switch action.Type {
		case "select":
			var payload selectPayload
			if err := json.Unmarshal(action.Payload, &payload); err != nil {
				h.send(conn, "error", wsError{Message: "invalid select payload"})
				continue
			}
			updated, err := h.attempts.SelectAnswer(r.Context(), attempt.ID, user.ID, payload.Option)
			attempt = h.refresh(conn, attempt, updated, err)
		case "previous":
			updated, err := h.attempts.Advance(r.Context(), attempt.ID, user.ID, app.DirectionPrevious)
			attempt = h.refresh(conn, attempt, updated, err)
		case "next":
			updated, err := h.attempts.Advance(r.Context(), attempt.ID, user.ID, app.DirectionNext)
			attempt = h.refresh(conn, attempt, updated, err)
		case "submit":
			result, err := h.attempts.Submit(r.Context(), attempt.ID, user)
			if err != nil {
				h.send(conn, "error", wsError{Message: userMessage(err)})
				continue
			}
			submitted = true
			h.send(conn, "result", result)
			return
		case "abandon":
			return
		default:
			h.send(conn, "error", wsError{Message: "unsupported action type"})
		}
	}
}

// refresh keeps the last known attempt on error and reports the failure to
// the client; on success it pushes the (possibly new) current question.
func (h *AttemptWSHandler) refresh(conn *websocket.Conn, prev, updated *app.Attempt, err error) *app.Attempt {
	if err != nil {
		h.send(conn, "error", wsError{Message: userMessage(err)})
		return prev
	}
	h.send(conn, "question", questionView(updated))
	return updated
}

func (h *AttemptWSHandler) send(conn *websocket.Conn, eventType string, payload any) {
	if err := conn.WriteJSON(outboundEvent[any]{Type: eventType, Payload: payload}); err != nil {
		log.Printf("ws write error: %v", err)
	}
}

func questionView(attempt *app.Attempt) questionEvent {
	question := attempt.CurrentQuestion()
	return questionEvent{
		AttemptID: attempt.ID,
		QuizTitle: attempt.Quiz.Title,
		Number:    attempt.Current + 1,
		Total:     len(attempt.Quiz.Questions),
		Text:      question.Text,
		Options:   question.Options,
		Answer:    attempt.Answers[attempt.Current],
	}
}
