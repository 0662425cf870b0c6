package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/upload"
)

func mountUploads(r chi.Router, d RouterDeps) {
	r.Post("/uploads/signed-url", func(w http.ResponseWriter, r *http.Request) {
		var in upload.SignInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.UploadSvc.SignedUploadURL(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapUploadError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/uploads/signed-urls", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Items []upload.SignInput `json:"items"`
		}
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.UploadSvc.SignedUploadURLs(r.Context(), in.Items)
		if err != nil {
			respondError(w, r, d.Log, err, mapUploadError)
			return
		}
		WriteJSON(w, 200, map[string]any{"items": out})
	})
}
