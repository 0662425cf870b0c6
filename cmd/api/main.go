package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitness-platform/backend/internal/config"
	"fitness-platform/backend/internal/domain/catalog"
	"fitness-platform/backend/internal/domain/forum"
	"fitness-platform/backend/internal/domain/newsletter"
	"fitness-platform/backend/internal/domain/payment"
	"fitness-platform/backend/internal/domain/slot"
	"fitness-platform/backend/internal/domain/trainer"
	"fitness-platform/backend/internal/domain/upload"
	"fitness-platform/backend/internal/domain/user"
	"fitness-platform/backend/internal/firebase"
	apihttp "fitness-platform/backend/internal/http"
	"fitness-platform/backend/internal/lib/sl"
	"fitness-platform/backend/internal/middleware"
	"fitness-platform/backend/internal/store"
	"fitness-platform/backend/internal/store/memory"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", sl.Err(err))
		os.Exit(1)
	}
	log := sl.New(cfg.Env, cfg.LogLevel)

	var (
		repos    store.Repos
		verifier middleware.TokenVerifier
		signer   upload.Signer
	)
	if cfg.ProjectID == "" {
		log.Warn("no Firebase project configured, using in-memory store")
		repos = store.NewMemory(memory.New())
	} else {
		clients, err := firebase.NewClients(ctx, cfg)
		if err != nil {
			log.Error("firebase init failed", sl.Err(err))
			os.Exit(1)
		}
		defer clients.Close()

		repos = store.NewFirestore(clients.FirestoreClient())
		verifier = clients.Auth
		signer = firebase.BlobSigner{IAM: clients.IAM}
	}

	trainerSvc := trainer.NewService(repos.Trainers, repos.Users)

	var provider payment.Provider
	if cfg.StripeSecretKey != "" {
		provider = payment.NewStripeProvider(cfg.StripeSecretKey)
		log.Info("stripe payments enabled")
	} else {
		log.Info("STRIPE_SECRET_KEY not set, payment intents disabled")
	}
	if cfg.SignedURLServiceAccountEmail == "" {
		log.Info("SIGNED_URL_SERVICE_ACCOUNT_EMAIL not set, signed uploads disabled")
	}
	if cfg.RequireAdminAuth && verifier == nil {
		log.Warn("REQUIRE_ADMIN_AUTH is set but no token verifier is available")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:        cfg,
		Log:        log,
		Verifier:   verifier,
		Metrics:    middleware.NewMetrics(),
		UserSvc:    user.NewService(repos.Users),
		TrainerSvc: trainerSvc,
		CatalogSvc: catalog.NewService(repos.Classes, trainerSvc),
		ForumSvc:   forum.NewService(repos.Posts, repos.Users),
		SlotSvc:    slot.NewService(repos.Slots, trainerSvc),
		PaymentSvc: payment.NewService(payment.Deps{
			Repo:        repos.Payments,
			Provider:    provider,
			Bookings:    repos.Classes,
			Subscribers: repos.Newsletter,
			Members:     repos.Users,
			Log:         log,
		}, payment.Config{
			Currency:      cfg.PaymentCurrency,
			WebhookSecret: cfg.StripeWebhookSecret,
		}),
		NewsletterSvc: newsletter.NewService(repos.Newsletter),
		UploadSvc:     upload.NewService(cfg.StorageBucket, cfg.SignedURLServiceAccountEmail, signer),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Info("API listening", slog.String("port", cfg.Port), slog.String("project", cfg.ProjectID))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", sl.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down")
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("shutdown failed", sl.Err(err))
	}
}
