package domain

import "context"

// User is a registered account as stored in the realtime database under
// users/<uid>. The disabled flag mirrors the Firebase Auth account state.
type User struct {
	FCMToken string `json:"fcmToken"`
	Disabled bool   `json:"disabled"`
}

// Store is the realtime-database surface the services need. Implemented by
// the Firebase adapter; tests substitute fakes.
type Store interface {
	// Report returns the report with the given id, or nil if absent.
	Report(ctx context.Context, id string) (*Report, error)
	// MarkPublicized sets reports/<id>/publicized to true.
	MarkPublicized(ctx context.Context, id string) error
	// Users returns every user record keyed by uid.
	Users(ctx context.Context) (map[string]User, error)
	// SaveToken stores the push token for a user.
	SaveToken(ctx context.Context, uid, token string) error
	// SetDisabled mirrors the account disabled flag into the user record.
	SetDisabled(ctx context.Context, uid string, disabled bool) error
}

// Directory is the identity-provider surface for account administration.
type Directory interface {
	SetDisabled(ctx context.Context, uid string, disabled bool) error
}

// PushSender delivers one notification to one device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
