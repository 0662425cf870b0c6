package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/upload"
	"fitness-platform/backend/internal/lib/sl"
)

func TestRespondErrorServerMessages(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		mapErr errorMapper
		want   string
	}{
		{"payments not configured", payment.ErrNotConfigured, mapPaymentError, "payments are not configured"},
		{"provider failure", fmt.Errorf("%w: card declined by acquirer 0x12", payment.ErrProvider), mapPaymentError, "failed to create payment intent"},
		{"uploads not configured", upload.ErrNotConfigured, mapUploadError, "uploads are not configured"},
		{"unmapped error stays hidden", errors.New("firestore: dial tcp 10.0.0.7:443"), mapPaymentError, internalMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			rec := httptest.NewRecorder()
			respondError(rec, req, sl.Discard(), tt.err, tt.mapErr)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.want, decode[APIError](t, rec).Message)
			assert.NotContains(t, rec.Body.String(), "0x12")
		})
	}
}

func TestDetailStripsSentinel(t *testing.T) {
	err := fmt.Errorf("%w: slot not found", upload.ErrBadRequest)
	assert.Equal(t, "slot not found", detail(err, upload.ErrBadRequest))
	assert.Equal(t, "bad request", detail(upload.ErrBadRequest, upload.ErrBadRequest))
}
