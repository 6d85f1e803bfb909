package firebase

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// Directory implements domain.Directory over Firebase Auth.
type Directory struct {
	auth *auth.Client
}

func NewDirectory(client *auth.Client) *Directory {
	return &Directory{auth: client}
}

// SetDisabled flips the disabled flag on the Firebase Auth account.
func (d *Directory) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	update := (&auth.UserToUpdate{}).Disabled(disabled)
	if _, err := d.auth.UpdateUser(ctx, uid, update); err != nil {
		return fmt.Errorf("update auth user %s: %w", uid, err)
	}
	return nil
}
