package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewHandler(voteHandler *VoteHandler, commentHandler *CommentHandler, calendarHandler *CalendarHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.Route("/votes", func(r chi.Router) {
			r.Get("/", voteHandler.GetVotes)
			r.Post("/", voteHandler.SubmitVote)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", commentHandler.GetComments)
			r.Post("/", commentHandler.AddComment)
		})

		r.Route("/wednesdays", func(r chi.Router) {
			r.Get("/", calendarHandler.GetWindow)
			r.Get("/past", calendarHandler.GetPast)
			r.Get("/future", calendarHandler.GetFuture)
		})
	})

	return r
}
