package handlers

import (
	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Route("/v1", func(r chi.Router) {

		// public routes
		r.Get("/health", h.HealthHandler)
		r.Post("/users/signup", h.SignupHandler)
		r.Post("/users/signin", h.SigninHandler)
		r.Post("/words/check", h.CheckWordHandler)

		// Secure routes
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)

			r.Get("/auth/check", h.AuthCheckHandler)

			r.Post("/boards", h.CreateBoardHandler)
			r.Get("/games/{gameID}/board", h.FetchBoardHandler)
			r.Post("/games/{gameID}/finalize", h.FinalizeGameHandler)
			r.Get("/games/history", h.HistoryHandler)
			r.Get("/games/pending", h.PendingGamesHandler)

			r.Post("/challenges", h.CreateChallengeHandler)

			r.Get("/users", h.ListUsersHandler)
			r.Get("/users/{username}/highscore", h.HighScoreHandler)
		})
	})
}
