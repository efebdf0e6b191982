package redis

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/alfred-backend/internal/config"
	"github.com/heartmarshall/alfred-backend/internal/domain"
)

var (
	once      sync.Once
	sharedURL string
	initErr   error
)

func setupRedis(t *testing.T) *goredis.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis integration test in short mode")
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections"),
			},
			Started: true,
		})
		if err != nil {
			initErr = err
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			initErr = err
			return
		}
		port, err := c.MappedPort(ctx, "6379")
		if err != nil {
			initErr = err
			return
		}
		sharedURL = fmt.Sprintf("redis://%s:%s/0", host, port.Port())
	})
	require.NoError(t, initErr)

	client, err := Connect(context.Background(), config.RedisConfig{Addr: sharedURL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	store := NewSessionStore(setupRedis(t), "test:"+t.Name()+":")
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	sess := domain.Session{ID: "01J0SESSION", UserID: 7, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, sess.ID))
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_UnknownSession(t *testing.T) {
	store := NewSessionStore(setupRedis(t), "test:"+t.Name()+":")

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_Expiry(t *testing.T) {
	client := setupRedis(t)
	store := NewSessionStore(client, "test:"+t.Name()+":")
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, domain.Session{ID: "gone", ExpiresAt: now.Add(-time.Minute)}))
	n, err := client.Exists(ctx, store.key("gone")).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.Save(ctx, domain.Session{ID: "soon", ExpiresAt: now.Add(time.Minute)}))
	store.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, err = store.Get(ctx, "soon")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err = client.Exists(ctx, store.key("soon")).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.Ping(ctx))
}
