package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/trainer"
)

type emailBody struct {
	Email string `json:"email"`
}

func mountTrainers(r chi.Router, d RouterDeps, admin func(http.Handler) http.Handler) {
	r.Post("/become-a-trainer", func(w http.ResponseWriter, r *http.Request) {
		var in trainer.ApplyInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.TrainerSvc.Apply(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapTrainerError)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Get("/trainers", func(w http.ResponseWriter, r *http.Request) {
		// ?email= selects a single trainer
		if email := r.URL.Query().Get("email"); r.URL.Query().Has("email") {
			out, err := d.TrainerSvc.TrainerByEmail(r.Context(), email)
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
			return
		}
		out, err := d.TrainerSvc.ListTrainers(r.Context())
		if err != nil {
			respondError(w, r, d.Log, err, mapTrainerError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Get("/trainers/{id}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.TrainerSvc.GetTrainer(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, d.Log, err, mapTrainerError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(admin)

		ar.Get("/become-a-trainer", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TrainerSvc.ListPending(r.Context())
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})

		ar.Post("/become-a-trainer/confirm", func(w http.ResponseWriter, r *http.Request) {
			var in emailBody
			if err := decodeJSON(w, r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.TrainerSvc.Accept(r.Context(), in.Email)
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})

		ar.Post("/become-a-trainer/reject", func(w http.ResponseWriter, r *http.Request) {
			var in trainer.DecisionInput
			if err := decodeJSON(w, r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.TrainerSvc.Reject(r.Context(), in)
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})

		ar.Get("/rejected-applications", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TrainerSvc.ListRejected(r.Context())
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})

		ar.Get("/trainer-application-status", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.TrainerSvc.StatusReport(r.Context())
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})

		ar.Patch("/remove-trainer", func(w http.ResponseWriter, r *http.Request) {
			var in emailBody
			if err := decodeJSON(w, r, &in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.TrainerSvc.Demote(r.Context(), in.Email)
			if err != nil {
				respondError(w, r, d.Log, err, mapTrainerError)
				return
			}
			WriteJSON(w, 200, out)
		})
	})
}
