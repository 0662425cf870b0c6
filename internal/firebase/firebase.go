package firebase

import (
	"context"

	"fitness-platform/backend/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

func NewApp(ctx context.Context, cfg config.Config) (*firebase.App, error) {
	// GOOGLE_APPLICATION_CREDENTIALS is picked up by ADC.
	// FIREBASE_SERVICE_ACCOUNT_JSON carries the raw json content instead.
	opts := []option.ClientOption{}
	if cfg.ServiceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON)))
	}

	appCfg := &firebase.Config{StorageBucket: cfg.StorageBucket}
	if cfg.ProjectID != "" {
		appCfg.ProjectID = cfg.ProjectID
	}

	return firebase.NewApp(ctx, appCfg, opts...)
}

func NewAuthClient(ctx context.Context, app *firebase.App) (*auth.Client, error) {
	return app.Auth(ctx)
}
