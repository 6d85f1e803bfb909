package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectory struct {
	disabled map[string]bool
	err      error
}

func (f *fakeDirectory) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	if f.err != nil {
		return f.err
	}
	if f.disabled == nil {
		f.disabled = map[string]bool{}
	}
	f.disabled[uid] = disabled
	return nil
}

func TestRegisterToken(t *testing.T) {
	store := newFakeStore()
	svc := NewAccountService(store, &fakeDirectory{}, zap.NewNop())

	require.NoError(t, svc.RegisterToken(context.Background(), "u1", "tok-1"))
	assert.Equal(t, "tok-1", store.savedTokens["u1"])
}

func TestSetDisabledMirrorsBothWrites(t *testing.T) {
	store := newFakeStore()
	dir := &fakeDirectory{}
	svc := NewAccountService(store, dir, zap.NewNop())

	require.NoError(t, svc.SetDisabled(context.Background(), "u1", true))
	assert.True(t, dir.disabled["u1"])
	assert.True(t, store.disabledMirror["u1"])

	require.NoError(t, svc.SetDisabled(context.Background(), "u1", false))
	assert.False(t, dir.disabled["u1"])
	assert.False(t, store.disabledMirror["u1"])
}

func TestSetDisabledDirectoryFailureSkipsMirror(t *testing.T) {
	store := newFakeStore()
	dir := &fakeDirectory{err: errors.New("auth unavailable")}
	svc := NewAccountService(store, dir, zap.NewNop())

	err := svc.SetDisabled(context.Background(), "u1", true)
	assert.Error(t, err)
	assert.Empty(t, store.disabledMirror)
}
