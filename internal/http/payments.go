package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"fitness-platform/backend/internal/domain/payment"
)

const maxWebhookBytes = int64(65536)

func mountPayments(r chi.Router, d RouterDeps, admin func(http.Handler) http.Handler) {
	r.Post("/create-payment-intent", func(w http.ResponseWriter, r *http.Request) {
		var in payment.IntentInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
		out, err := d.PaymentSvc.CreateIntent(r.Context(), in, key)
		if err != nil {
			respondError(w, r, d.Log, err, mapPaymentError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.Post("/payments", func(w http.ResponseWriter, r *http.Request) {
		var in payment.RecordInput
		if err := decodeJSON(w, r, &in); err != nil {
			Fail(w, 400, "invalid json")
			return
		}
		out, err := d.PaymentSvc.RecordPayment(r.Context(), in)
		if err != nil {
			respondError(w, r, d.Log, err, mapPaymentError)
			return
		}
		WriteJSON(w, 201, out)
	})

	r.Get("/payments/{id}", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.PaymentSvc.GetPayment(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, r, d.Log, err, mapPaymentError)
			return
		}
		WriteJSON(w, 200, out)
	})

	r.With(admin).Get("/admin/balance", func(w http.ResponseWriter, r *http.Request) {
		out, err := d.PaymentSvc.Balance(r.Context())
		if err != nil {
			respondError(w, r, d.Log, err, mapPaymentError)
			return
		}
		WriteJSON(w, 200, out)
	})

	// Stripe signs the raw body, so it is read before any decoding.
	r.Post("/stripe/webhook", func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			Fail(w, 400, "error reading request body")
			return
		}
		ev, err := d.PaymentSvc.HandleWebhook(r.Context(), body, r.Header.Get("Stripe-Signature"))
		if err != nil {
			respondError(w, r, d.Log, err, mapPaymentError)
			return
		}
		WriteJSON(w, 200, map[string]any{"received": true, "id": ev.ID})
	})
}
