// Command set-claims grants or revokes the admin custom claim checked by the
// API's admin routes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"firebase.google.com/go/v4/auth"

	"fitness-platform/backend/internal/config"
	"fitness-platform/backend/internal/firebase"
	"fitness-platform/backend/internal/lib/sl"
	"fitness-platform/backend/internal/utils"
)

func main() {
	uid := flag.String("uid", "", "target firebase uid")
	email := flag.String("email", "", "target account email (alternative to -uid)")
	revoke := flag.Bool("revoke", false, "remove the admin claim instead of granting it")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := sl.New(cfg.Env, cfg.LogLevel)

	if *uid == "" && *email == "" {
		log.Error("one of -uid or -email is required")
		os.Exit(2)
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Error("firebase app init failed", sl.Err(err))
		os.Exit(1)
	}
	authClient, err := firebase.NewAuthClient(ctx, app)
	if err != nil {
		log.Error("firebase auth init failed", sl.Err(err))
		os.Exit(1)
	}

	rec, err := lookup(ctx, authClient, *uid, *email)
	if err != nil {
		log.Error("user lookup failed", sl.Err(err))
		os.Exit(1)
	}

	claims := adminClaims(rec.CustomClaims, !*revoke)
	if err := authClient.SetCustomUserClaims(ctx, rec.UID, claims); err != nil {
		log.Error("SetCustomUserClaims failed", sl.Err(err))
		os.Exit(1)
	}

	action := "granted"
	if *revoke {
		action = "revoked"
	}
	fmt.Printf("ok: admin claim %s for %s (%s)\n", action, rec.UID, rec.Email)
}

func lookup(ctx context.Context, c *auth.Client, uid, email string) (*auth.UserRecord, error) {
	if uid != "" {
		return c.GetUser(ctx, uid)
	}
	return c.GetUserByEmail(ctx, utils.NormalizeEmail(email))
}

// adminClaims returns a copy of existing with the admin flag set or cleared.
// Other claims are preserved.
func adminClaims(existing map[string]any, grant bool) map[string]any {
	out := make(map[string]any, len(existing)+1)
	for k, v := range existing {
		out[k] = v
	}
	if grant {
		out["admin"] = true
	} else {
		delete(out, "admin")
		if role, ok := out["role"].(string); ok && role == "admin" {
			delete(out, "role")
		}
	}
	return out
}
