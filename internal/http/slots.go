package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/slot"
)

func mountSlots(r chi.Router, d RouterDeps) {
	r.Get("/trainer-slots/{email}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.SlotSvc.ListSlots(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			respondError(w, r, d.Log, err, mapSlotError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/trainer-slots", func(w http.ResponseWriter, r *http.Request) {
		var in slot.CreateSlotInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		id, err := d.SlotSvc.CreateSlot(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapSlotError)
			return
		}
		WriteJSON(w, 201, Message{Message: "Slot added", ID: id})
	})

	r.Delete("/trainer-slots/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := d.SlotSvc.DeleteSlot(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, r, d.Log, err, mapSlotError)
			return
		}
		WriteJSON(w, 200, Message{Message: "Slot deleted successfully"})
	})
}
