package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/newsletter"
)

func mountNewsletter(r chi.Router, d RouterDeps, admin func(http.Handler) http.Handler) {
	r.Post("/newsletter", func(w http.ResponseWriter, r *http.Request) {
		var in newsletter.SubscribeInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.NewsletterSvc.Subscribe(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapNewsletterError)
			return
		}
		WriteJSON(w, 201, Message{Message: "Subscribed successfully", ID: out.Email})
	})

	r.With(admin).Get("/newsletter", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.NewsletterSvc.List(r.Context())
		if err != nil {
			respondError(w, r, d.Log, err, mapNewsletterError)
			return
		}
		WriteJSON(w, 200, out)
	})
}
