package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/wordrush/boggle-services/internal/comm"
	"github.com/wordrush/boggle-services/internal/gamesvc/service"
)

// CreateBoardHandler creates a solo game for the caller and returns the
// fresh board.
func (h *Handler) CreateBoardHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}

	game, err := h.games.CreateSoloBoard(r.Context(), user.ID)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusCreated,
		Data: map[string]string{
			"gameId":      game.ID,
			"boardString": game.BoardString,
		},
	})
}

// FetchBoardHandler returns the board of an existing game and marks it no
// longer pending.
func (h *Handler) FetchBoardHandler(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	boardStr, err := h.games.FetchBoard(r.Context(), gameID)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]string{"boardString": boardStr},
	})
}

type challengeRequest struct {
	Username string `json:"username"`
}

// CreateChallengeHandler starts a challenge against another player.
func (h *Handler) CreateChallengeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}

	var req challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, service.ErrInvalidInput)
		return
	}

	game, err := h.challenges.CreateChallenge(r.Context(), user, req.Username)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusCreated,
		Data: map[string]string{
			"gameId":       game.ID,
			"opponentName": game.OpponentName,
		},
	})
}

type finalizeRequest struct {
	Score       int      `json:"score"`
	WordsPlayed []string `json:"wordsPlayed"`
}

// FinalizeGameHandler records the caller's result for a game and publishes
// the outcome for the stats pipeline.
func (h *Handler) FinalizeGameHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}

	gameID := chi.URLParam(r, "gameID")

	var req finalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, service.ErrInvalidInput)
		return
	}

	game, err := h.games.FinalizeGame(r.Context(), gameID, req.Score, req.WordsPlayed)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.broker.PublishGameFinalized(comm.GameFinalized{
		GameID:   game.ID,
		UserID:   game.UserID,
		Username: user.Username,
		Points:   game.Points,
		Words:    len(game.WordsPlayed),
	})

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: game})
}

// HistoryHandler returns the caller's completed games, paired with the
// linked opponent record where one exists.
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}

	history, err := h.games.GetHistory(r.Context(), user.ID)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]interface{}{"games": history},
	})
}

// PendingGamesHandler returns the caller's games awaiting a board fetch,
// which is how waiting challenges surface to the client.
func (h *Handler) PendingGamesHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil || user == nil {
		h.CreateResponse(w, Response{Code: http.StatusUnauthorized, Error: "unknown account"})
		return
	}

	games, err := h.games.PendingGames(r.Context(), user.ID)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]interface{}{"games": games},
	})
}

type checkWordRequest struct {
	Word string `json:"word"`
}

// CheckWordHandler validates a word against the dictionary and returns its
// score when valid.
func (h *Handler) CheckWordHandler(w http.ResponseWriter, r *http.Request) {
	var req checkWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, service.ErrInvalidInput)
		return
	}

	result, err := service.CheckWord(req.Word)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.CreateResponse(w, Response{Code: http.StatusOK, Data: result})
}
