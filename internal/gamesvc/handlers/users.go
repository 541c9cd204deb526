package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/wordrush/boggle-services/internal/gamesvc/service"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, service.ErrInvalidInput)
		return
	}

	user, err := h.users.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Errorf("Error signing token for user %s: %s", user.Username, err)
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusCreated,
		Data: map[string]string{"token": token},
	})
}

func (h *Handler) SigninHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, service.ErrInvalidInput)
		return
	}

	user, err := h.users.Signin(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		log.Errorf("Error signing token for user %s: %s", user.Username, err)
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]string{"token": token},
	})
}

// AuthCheckHandler reports whether the token still belongs to an existing
// account. The verifier middleware has already rejected bad tokens.
func (h *Handler) AuthCheckHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: map[string]string{"username": user.Username}})
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	names, err := h.users.ListUsernames(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string][]string{"allUsers": names},
	})
}

// HighScoreHandler returns the named player's best score over all their
// games.
func (h *Handler) HighScoreHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.users.GetByUsername(r.Context(), username)
	if err != nil {
		h.fail(w, err)
		return
	}
	if user == nil {
		h.fail(w, service.ErrUnknownOpponent)
		return
	}

	highest, err := h.games.HighScore(r.Context(), user.ID)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]int{"highestScore": highest},
	})
}
