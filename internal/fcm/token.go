package fcm

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
)

// messagingScope authorizes calls to the FCM HTTP v1 send endpoint.
const messagingScope = "https://www.googleapis.com/auth/firebase.messaging"

// Minter exchanges the service-account credential for short-lived bearer
// tokens scoped to FCM.
type Minter struct {
	conf *jwt.Config
}

// NewMinter parses the service-account JSON once; the credential itself is
// validated here so a bad blob fails at startup rather than on first send.
func NewMinter(credentials []byte) (*Minter, error) {
	conf, err := google.JWTConfigFromJSON(credentials, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	return &Minter{conf: conf}, nil
}

// Mint performs a token exchange and returns the bearer token. A fresh
// token source is built per call, so every send pays one exchange round
// trip and never sees an expired token.
func (m *Minter) Mint(ctx context.Context) (string, error) {
	token, err := m.conf.TokenSource(ctx).Token()
	if err != nil {
		return "", fmt.Errorf("mint access token: %w", err)
	}
	return token.AccessToken, nil
}
