package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth"

	"github.com/wordrush/boggle-services/internal/gamesvc/broker"
	"github.com/wordrush/boggle-services/internal/gamesvc/models"
	"github.com/wordrush/boggle-services/internal/gamesvc/service"
)

type Handler struct {
	tokenAuth  *jwtauth.JWTAuth
	users      *service.UserService
	games      *service.GameService
	challenges *service.ChallengeService
	broker     *broker.Broker
}

func NewHandler(users *service.UserService, games *service.GameService,
	challenges *service.ChallengeService, b *broker.Broker) *Handler {
	return &Handler{
		users:      users,
		games:      games,
		challenges: challenges,
		broker:     b,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "game service is running at port " + os.Getenv("GAME_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// issueToken signs a session token for the user, valid for a week.
func (h *Handler) issueToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// currentUser resolves the authenticated player from the verified token
// claims. Returns nil when the account behind the token no longer exists.
func (h *Handler) currentUser(r *http.Request) (*models.User, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil, err
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("token has no user id")
	}
	return h.users.GetByID(r.Context(), userID)
}

// fail maps a service error to the HTTP response envelope.
func (h *Handler) fail(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidChallenge),
		errors.Is(err, service.ErrUnknownOpponent),
		errors.Is(err, service.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, service.ErrUserExists):
		code = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	}
	h.CreateResponse(w, Response{Code: code, Error: err.Error()})
}
