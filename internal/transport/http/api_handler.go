package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"quizmaster-service/internal/app"
	"quizmaster-service/internal/domain"
)

// APIHandler wires the REST surface onto the use cases.
type APIHandler struct {
	auth     *app.AuthService
	catalog  *app.CatalogService
	attempts *app.AttemptService
	results  *app.ResultsService
}

func NewAPIHandler(auth *app.AuthService, catalog *app.CatalogService, attempts *app.AttemptService, results *app.ResultsService) *APIHandler {
	return &APIHandler{auth: auth, catalog: catalog, attempts: attempts, results: results}
}

// Register attaches all REST routes to the mux.
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/auth/login", h.handleLogin)
	mux.HandleFunc("GET /api/quizzes", h.handleListQuizzes)
	mux.HandleFunc("POST /api/quizzes", h.withUser(h.handleCreateQuiz))
	mux.HandleFunc("POST /api/quizzes/{id}/attempts", h.withUser(h.handleStartAttempt))
	mux.HandleFunc("POST /api/attempts/{id}/answer", h.withUser(h.handleSelectAnswer))
	mux.HandleFunc("POST /api/attempts/{id}/advance", h.withUser(h.handleAdvance))
	mux.HandleFunc("POST /api/attempts/{id}/submit", h.withUser(h.handleSubmit))
	mux.HandleFunc("DELETE /api/attempts/{id}", h.withUser(h.handleAbandon))
	mux.HandleFunc("GET /api/results", h.withUser(h.handleResults))
	mux.HandleFunc("GET /api/results/stats", h.withUser(h.handleStats))
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the authentication exchange envelope: non-success carries
// a user-visible message, success carries the user and a bearer token.
type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *domain.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

func (h *APIHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Success: false, Message: "invalid request body"})
		return
	}
	user, token, err := h.auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeJSON(w, statusFor(err), authResponse{Success: false, Message: userMessage(err)})
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Success: true, User: &user, Token: token})
}

func (h *APIHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, authResponse{Success: false, Message: "invalid request body"})
		return
	}
	user, token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, statusFor(err), authResponse{Success: false, Message: userMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Success: true, User: &user, Token: token})
}

func (h *APIHandler) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.catalog.ListQuizzes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quizzes)
}

func (h *APIHandler) handleCreateQuiz(w http.ResponseWriter, r *http.Request, user domain.User) {
	var draft app.QuizDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, domain.Invalid("invalid request body"))
		return
	}
	quiz, err := h.catalog.CreateQuiz(r.Context(), user, draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, quiz)
}

func (h *APIHandler) handleStartAttempt(w http.ResponseWriter, r *http.Request, user domain.User) {
	attempt, err := h.attempts.Start(r.Context(), r.PathValue("id"), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attempt)
}

type answerRequest struct {
	Option int `json:"option"`
}

func (h *APIHandler) handleSelectAnswer(w http.ResponseWriter, r *http.Request, user domain.User) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Invalid("invalid request body"))
		return
	}
	attempt, err := h.attempts.SelectAnswer(r.Context(), r.PathValue("id"), user.ID, req.Option)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

type advanceRequest struct {
	Direction app.Direction `json:"direction"`
}

func (h *APIHandler) handleAdvance(w http.ResponseWriter, r *http.Request, user domain.User) {
	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Invalid("invalid request body"))
		return
	}
	attempt, err := h.attempts.Advance(r.Context(), r.PathValue("id"), user.ID, req.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

func (h *APIHandler) handleSubmit(w http.ResponseWriter, r *http.Request, user domain.User) {
	result, err := h.attempts.Submit(r.Context(), r.PathValue("id"), user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *APIHandler) handleAbandon(w http.ResponseWriter, r *http.Request, user domain.User) {
	if err := h.attempts.Abandon(r.Context(), r.PathValue("id"), user.ID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *APIHandler) handleResults(w http.ResponseWriter, r *http.Request, user domain.User) {
	results, err := h.results.History(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if results == nil {
		results = []domain.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *APIHandler) handleStats(w http.ResponseWriter, r *http.Request, user domain.User) {
	stats, err := h.results.Stats(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// withUser resolves the bearer token before the handler runs.
func (h *APIHandler) withUser(next func(http.ResponseWriter, *http.Request, domain.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := h.auth.CurrentUser(r.Context(), bearerToken(r))
		if err != nil {
			writeError(w, domain.ErrNotAuthenticated)
			return
		}
		next(w, r, user)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Success: false, Message: userMessage(err)})
}

// statusFor maps the domain error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrEmptyQuiz):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotAuthenticated),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAttemptNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// userMessage hides internals behind a generic message for unexpected errors.
func userMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		return "something went wrong"
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write response: %v", err)
	}
}
