package firebase

import (
	"context"
	"fmt"

	"fitness-platform/backend/internal/config"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	credentialspb "cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

// Clients bundles the Firebase + GCP clients the API needs.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *Firestore
	IAM       *credentials.IamCredentialsClient

	ProjectID string
	Bucket    string
}

func NewClients(ctx context.Context, cfg config.Config) (*Clients, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("missing FIREBASE_PROJECT_ID or GOOGLE_CLOUD_PROJECT")
	}

	app, err := NewApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	authClient, err := NewAuthClient(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	fs, err := NewFirestore(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}

	// only needed for signed upload URLs
	iamClient, _ := credentials.NewIamCredentialsClient(ctx)

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: fs,
		IAM:       iamClient,
		ProjectID: cfg.ProjectID,
		Bucket:    cfg.StorageBucket,
	}, nil
}

func (c *Clients) FirestoreClient() *firestore.Client {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Client
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	c.Firestore.Close()
	if c.IAM != nil {
		_ = c.IAM.Close()
	}
}

// BlobSigner adapts the IAM Credentials client to upload.Signer.
type BlobSigner struct {
	IAM *credentials.IamCredentialsClient
}

func (s BlobSigner) SignBlob(ctx context.Context, serviceAccount string, payload []byte) ([]byte, error) {
	if s.IAM == nil {
		return nil, fmt.Errorf("IAM credentials client not available")
	}
	resp, err := s.IAM.SignBlob(ctx, &credentialspb.SignBlobRequest{
		Name:    fmt.Sprintf("projects/-/serviceAccounts/%s", serviceAccount),
		Payload: payload,
	})
	if err != nil {
		return nil, err
	}
	return resp.SignedBlob, nil
}
