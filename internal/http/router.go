package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fitness-platform/backend/internal/config"
	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/upload"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/lib/sl"
	"fitness-platform/backend/internal/middleware"
)

type RouterDeps struct {
	Cfg      config.Config
	Log      *slog.Logger
	Verifier middleware.TokenVerifier
	Metrics  *middleware.Metrics

	UserSvc       *user.Service
	TrainerSvc    *trainer.Service
	CatalogSvc    *catalog.Service
	ForumSvc      *forum.Service
	SlotSvc       *slot.Service
	PaymentSvc    *payment.Service
	NewsletterSvc *newsletter.Service
	UploadSvc     *upload.Service
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Log == nil {
		d.Log = sl.Discard()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.CORS(d.Cfg.AllowedOrigins, d.Log))
	if d.Cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimitWrites(d.Cfg.RateLimitRPS, d.Cfg.RateLimitBurst, d.Log))
	}

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Server is running!"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	admin := adminOnly(d)
	mountUsers(r, d)
	mountTrainers(r, d, admin)
	mountNewsletter(r, d, admin)
	mountClasses(r, d)
	mountPayments(r, d, admin)
	mountForum(r, d)
	mountSlots(r, d)
	mountUploads(r, d)

	return r
}

// adminOnly guards admin routes with Firebase ID-token auth and the admin
// claim when REQUIRE_ADMIN_AUTH is set. Otherwise it is a no-op.
func adminOnly(d RouterDeps) func(http.Handler) http.Handler {
	if !d.Cfg.RequireAdminAuth {
		return func(next http.Handler) http.Handler { return next }
	}
	withAuth := middleware.WithAuth(d.Verifier, d.Log)
	return func(next http.Handler) http.Handler {
		return withAuth(middleware.RequireAdmin(next))
	}
}
