package firebase

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// serviceAccount is the slice of the admin credential blob we need locally.
// The full blob is handed to the SDK and the token minter untouched.
type serviceAccount struct {
	ProjectID string `json:"project_id"`
}

// Clients bundles the Firebase Admin SDK clients the service uses, built
// once at startup and passed into the adapters.
type Clients struct {
	Auth      *auth.Client
	Database  *db.Client
	ProjectID string
}

// New initializes the Firebase Admin app from the service-account JSON and
// connects it to the given realtime database.
func New(ctx context.Context, credentials []byte, databaseURL string) (*Clients, error) {
	var sa serviceAccount
	if err := json.Unmarshal(credentials, &sa); err != nil {
		return nil, fmt.Errorf("invalid service account JSON: %w", err)
	}
	if sa.ProjectID == "" {
		return nil, fmt.Errorf("service account JSON has no project_id")
	}

	conf := &firebase.Config{DatabaseURL: databaseURL}
	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsJSON(credentials))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return &Clients{
		Auth:      authClient,
		Database:  dbClient,
		ProjectID: sa.ProjectID,
	}, nil
}
