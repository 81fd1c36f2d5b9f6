package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mogith007/skillswap/pkg/utils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockKV struct {
	mock.Mock
}

func (m *mockKV) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockKV) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func TestRedisDenylistStoresFingerprintUntilExpiry(t *testing.T) {
	kv := new(mockKV)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	d := &RedisDenylist{kv: kv, now: func() time.Time { return now }}
	ctx := context.Background()
	k := denylistPrefix + utils.Fingerprint("tok")

	kv.On("Set", ctx, k, 1, 30*time.Minute).Return(redis.NewStatusResult("OK", nil)).Once()
	require.NoError(t, d.Revoke(ctx, "tok", now.Add(30*time.Minute)))

	kv.On("Exists", ctx, []string{k}).Return(redis.NewIntResult(1, nil)).Once()
	revoked, err := d.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	require.True(t, revoked)

	kv.AssertExpectations(t)
}

func TestRedisDenylistSkipsExpiredTokens(t *testing.T) {
	kv := new(mockKV)
	d := &RedisDenylist{kv: kv, now: time.Now}

	require.NoError(t, d.Revoke(context.Background(), "tok", time.Now().Add(-time.Minute)))
	kv.AssertNotCalled(t, "Set")
}

func TestNopDenylist(t *testing.T) {
	var d Denylist = NopDenylist{}
	require.NoError(t, d.Revoke(context.Background(), "tok", time.Now().Add(time.Hour)))
	revoked, err := d.IsRevoked(context.Background(), "tok")
	require.NoError(t, err)
	require.False(t, revoked)
}
