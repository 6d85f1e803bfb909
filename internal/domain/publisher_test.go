package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	reports        map[string]*Report
	users          map[string]User
	publicized     []string
	reportErr      error
	usersErr       error
	publicizedErr  error
	savedTokens    map[string]string
	disabledMirror map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reports:        map[string]*Report{},
		users:          map[string]User{},
		savedTokens:    map[string]string{},
		disabledMirror: map[string]bool{},
	}
}

func (f *fakeStore) Report(ctx context.Context, id string) (*Report, error) {
	if f.reportErr != nil {
		return nil, f.reportErr
	}
	return f.reports[id], nil
}

func (f *fakeStore) MarkPublicized(ctx context.Context, id string) error {
	if f.publicizedErr != nil {
		return f.publicizedErr
	}
	f.publicized = append(f.publicized, id)
	return nil
}

func (f *fakeStore) Users(ctx context.Context) (map[string]User, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return f.users, nil
}

func (f *fakeStore) SaveToken(ctx context.Context, uid, token string) error {
	f.savedTokens[uid] = token
	return nil
}

func (f *fakeStore) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	f.disabledMirror[uid] = disabled
	return nil
}

type sentPush struct {
	token string
	title string
	body  string
	data  map[string]string
}

type fakePusher struct {
	sent    []sentPush
	failFor map[string]error
}

func (f *fakePusher) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if err, ok := f.failFor[token]; ok {
		return err
	}
	f.sent = append(f.sent, sentPush{token: token, title: title, body: body, data: data})
	return nil
}

func TestPublicizeFansOutToAllTokens(t *testing.T) {
	store := newFakeStore()
	store.reports["r1"] = &Report{
		Emergency:    "Fire",
		LocationType: LocationCurrent,
		Location:     "Lat: 13.41, Lng: 122.56",
		Timestamp:    "1714557600000",
	}
	store.users = map[string]User{
		"u1": {FCMToken: "tok-1"},
		"u2": {FCMToken: "tok-2"},
		"u3": {FCMToken: ""}, // no device registered
	}
	pusher := &fakePusher{}
	svc := NewPublishService(store, pusher, zap.NewNop())

	err := svc.Publicize(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, []string{"r1"}, store.publicized)
	require.Len(t, pusher.sent, 2)
	for _, p := range pusher.sent {
		assert.Equal(t, NotificationTitle, p.title)
		assert.Equal(t, "Fire", p.body)
		assert.Equal(t, map[string]string{
			"reportId":  "r1",
			"location":  "13.41, 122.56",
			"timestamp": "1714557600000",
		}, p.data)
	}
}

func TestPublicizeReportNotFound(t *testing.T) {
	store := newFakeStore()
	store.users = map[string]User{"u1": {FCMToken: "tok-1"}}
	pusher := &fakePusher{}
	svc := NewPublishService(store, pusher, zap.NewNop())

	err := svc.Publicize(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReportNotFound)
	assert.Empty(t, pusher.sent, "no notifications for a missing report")

	// The publicized flag is written before the existence check.
	assert.Equal(t, []string{"missing"}, store.publicized)
}

func TestPublicizeSendFailuresDoNotAbort(t *testing.T) {
	store := newFakeStore()
	store.reports["r1"] = &Report{Emergency: "Flood"}
	store.users = map[string]User{
		"u1": {FCMToken: "tok-1"},
		"u2": {FCMToken: "tok-2"},
		"u3": {FCMToken: "tok-3"},
	}
	pusher := &fakePusher{failFor: map[string]error{"tok-2": errors.New("unregistered")}}
	svc := NewPublishService(store, pusher, zap.NewNop())

	err := svc.Publicize(context.Background(), "r1")
	require.NoError(t, err, "per-token failures are best-effort")
	assert.Len(t, pusher.sent, 2)
}

func TestPublicizeStoreFailuresAbort(t *testing.T) {
	svc := func(store *fakeStore) *PublishService {
		return NewPublishService(store, &fakePusher{}, zap.NewNop())
	}

	store := newFakeStore()
	store.publicizedErr = errors.New("store down")
	assert.Error(t, svc(store).Publicize(context.Background(), "r1"))

	store = newFakeStore()
	store.reports["r1"] = &Report{Emergency: "Fire"}
	store.reportErr = errors.New("store down")
	assert.Error(t, svc(store).Publicize(context.Background(), "r1"))

	store = newFakeStore()
	store.reports["r1"] = &Report{Emergency: "Fire"}
	store.usersErr = errors.New("store down")
	assert.Error(t, svc(store).Publicize(context.Background(), "r1"))
}

func TestPublicizeOthersBody(t *testing.T) {
	store := newFakeStore()
	store.reports["r1"] = &Report{
		Emergency:      "Others",
		OtherEmergency: "Gas leak",
		LocationType:   LocationCustom,
	}
	store.users = map[string]User{"u1": {FCMToken: "tok-1"}}
	pusher := &fakePusher{}
	svc := NewPublishService(store, pusher, zap.NewNop())

	require.NoError(t, svc.Publicize(context.Background(), "r1"))
	require.Len(t, pusher.sent, 1)
	assert.Equal(t, "Gas leak", pusher.sent[0].body)
	assert.Equal(t, "Unknown Location", pusher.sent[0].data["location"])
}
