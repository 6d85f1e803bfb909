package domain

import (
	"context"

	"go.uber.org/zap"
)

// AccountService handles device-token registration and the admin
// disable/enable toggle.
type AccountService struct {
	store     Store
	directory Directory
	logger    *zap.Logger
}

func NewAccountService(store Store, directory Directory, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:     store,
		directory: directory,
		logger:    logger,
	}
}

// RegisterToken stores the device push token for a user.
func (s *AccountService) RegisterToken(ctx context.Context, uid, token string) error {
	return s.store.SaveToken(ctx, uid, token)
}

// SetDisabled flips the account disabled flag at the identity provider and
// mirrors it into the user record. The directory write goes first; if it
// fails the mirror is not attempted, and a failed mirror is not rolled back.
func (s *AccountService) SetDisabled(ctx context.Context, uid string, disable bool) error {
	if err := s.directory.SetDisabled(ctx, uid, disable); err != nil {
		return err
	}
	if err := s.store.SetDisabled(ctx, uid, disable); err != nil {
		return err
	}
	s.logger.Info("user account updated", zap.String("uid", uid), zap.Bool("disabled", disable))
	return nil
}
