package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/upload"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/lib/sl"
)

const internalMessage = "internal server error"

type errorMapper func(error) (int, string)

// respondError maps err to a status and message. Server-side failures are
// logged; the client only sees the mapper's fixed message for them.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, mapErr errorMapper) {
	status, msg := mapErr(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			sl.Err(err),
		)
	}
	Fail(w, status, msg)
}

// detail strips the "<sentinel>: " prefix added when wrapping.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

func mapUserError(err error) (int, string) {
	switch {
	case user.IsErrBadRequest(err):
		return 400, detail(err, user.ErrBadRequest)
	case user.IsErrNotFound(err):
		return 404, detail(err, user.ErrNotFound)
	case user.IsErrConflict(err):
		return 409, detail(err, user.ErrConflict)
	default:
		return 500, internalMessage
	}
}

func mapTrainerError(err error) (int, string) {
	switch {
	case trainer.IsErrBadRequest(err):
		return 400, detail(err, trainer.ErrBadRequest)
	case trainer.IsErrNotFound(err):
		return 404, detail(err, trainer.ErrNotFound)
	case trainer.IsErrConflict(err):
		return 409, detail(err, trainer.ErrConflict)
	default:
		return 500, internalMessage
	}
}

func mapCatalogError(err error) (int, string) {
	switch {
	case catalog.IsErrBadRequest(err):
		return 400, detail(err, catalog.ErrBadRequest)
	case catalog.IsErrNotFound(err):
		return 404, detail(err, catalog.ErrNotFound)
	default:
		return 500, internalMessage
	}
}

func mapForumError(err error) (int, string) {
	switch {
	case forum.IsErrBadRequest(err):
		return 400, detail(err, forum.ErrBadRequest)
	case forum.IsErrNotFound(err):
		return 404, detail(err, forum.ErrNotFound)
	default:
		return 500, internalMessage
	}
}

func mapSlotError(err error) (int, string) {
	switch {
	case slot.IsErrBadRequest(err):
		return 400, detail(err, slot.ErrBadRequest)
	case slot.IsErrNotFound(err):
		return 404, detail(err, slot.ErrNotFound)
	case slot.IsErrConflict(err):
		return 409, detail(err, slot.ErrConflict)
	default:
		return 500, internalMessage
	}
}

func mapPaymentError(err error) (int, string) {
	switch {
	case payment.IsErrBadRequest(err):
		return 400, detail(err, payment.ErrBadRequest)
	case payment.IsErrNotFound(err):
		return 404, detail(err, payment.ErrNotFound)
	case errors.Is(err, payment.ErrNotConfigured):
		return 500, "payments are not configured"
	case errors.Is(err, payment.ErrProvider):
		return 500, "failed to create payment intent"
	default:
		return 500, internalMessage
	}
}

func mapNewsletterError(err error) (int, string) {
	switch {
	case newsletter.IsErrBadRequest(err):
		return 400, detail(err, newsletter.ErrBadRequest)
	case newsletter.IsErrConflict(err):
		return 409, detail(err, newsletter.ErrConflict)
	default:
		return 500, internalMessage
	}
}

func mapUploadError(err error) (int, string) {
	switch {
	case upload.IsErrBadRequest(err):
		return 400, detail(err, upload.ErrBadRequest)
	case errors.Is(err, upload.ErrNotConfigured):
		return 500, "uploads are not configured"
	default:
		return 500, internalMessage
	}
}
