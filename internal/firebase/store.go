package firebase

import (
	"context"
	"encoding/json"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/mp-alertify/backend/internal/domain"
)

// Store implements domain.Store over the Firebase Realtime Database.
// Records live under users/<uid> and reports/<id>; all consistency is the
// database's, no client-side locking or transactions.
type Store struct {
	db *db.Client
}

func NewStore(client *db.Client) *Store {
	return &Store{db: client}
}

// Report loads reports/<id>. A missing path comes back as JSON null, which
// maps to (nil, nil) so callers can distinguish absence from failure.
func (s *Store) Report(ctx context.Context, id string) (*domain.Report, error) {
	var raw json.RawMessage
	if err := s.db.NewRef("reports/"+id).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("read report %s: %w", id, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var report domain.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &report, nil
}

func (s *Store) MarkPublicized(ctx context.Context, id string) error {
	if err := s.db.NewRef("reports/"+id+"/publicized").Set(ctx, true); err != nil {
		return fmt.Errorf("mark report %s publicized: %w", id, err)
	}
	return nil
}

func (s *Store) Users(ctx context.Context) (map[string]domain.User, error) {
	var users map[string]domain.User
	if err := s.db.NewRef("users").Get(ctx, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Store) SaveToken(ctx context.Context, uid, token string) error {
	if err := s.db.NewRef("users/"+uid+"/fcmToken").Set(ctx, token); err != nil {
		return fmt.Errorf("save token for %s: %w", uid, err)
	}
	return nil
}

func (s *Store) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	if err := s.db.NewRef("users/"+uid+"/disabled").Set(ctx, disabled); err != nil {
		return fmt.Errorf("set disabled for %s: %w", uid, err)
	}
	return nil
}
