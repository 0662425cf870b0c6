package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/utils"
)

func mountClasses(r chi.Router, d RouterDeps) {
	r.Post("/classes", func(w http.ResponseWriter, r *http.Request) {
		var in catalog.CreateClassInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.CatalogSvc.CreateClass(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapCatalogError)
			return
		}
		WriteJSON(w, 201, Message{Message: "Class added successfully", ID: out.ID})
	})

	r.Get("/classes", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		out, err := d.CatalogSvc.ListClasses(r.Context(), utils.ParsePage(q.Get("page")), q.Get("search"))
		if err != nil {
			respondError(w, r, d.Log, err, mapCatalogError)
			return
		}
		WriteJSON(w, 200, out)
	})
}
