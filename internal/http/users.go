package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/user"
)

func mountUsers(r chi.Router, d RouterDeps) {
	r.Post("/users", func(w http.ResponseWriter, r *http.Request) {
		var in user.RegisterInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.UserSvc.Register(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapUserError)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Get("/users", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.UserSvc.Get(r.Context(), r.URL.Query().Get("email"))
		if err != nil {
			respondError(w, r, d.Log, err, mapUserError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Put("/users/{email}", func(w http.ResponseWriter, r *http.Request) {
		var in user.UpdateProfileInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		if err := d.UserSvc.UpdateProfile(r.Context(), chi.URLParam(r, "email"), in); err != nil {
			respondError(w, r, d.Log, err, mapUserError)
			return
		}
		WriteJSON(w, 200, Message{Message: "Profile updated successfully"})
	})
}
