package sessions

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisStore(t *testing.T) {
	if os.Getenv("WARBLER_TEST_DOCKER") == "" {
		t.Skip("set WARBLER_TEST_DOCKER to run container-backed tests")
	}

	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	store := NewRedisStore(rdb, 2*time.Second)

	t.Run("Save and Get session", func(t *testing.T) {
		s := NewSession()
		s.SetUser(11)
		s.AddFlash("Hello, bob!")

		err := store.Save(ctx, s)
		assert.NoError(t, err)

		got, err := store.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, int64(11), *got.UserID)
		assert.Equal(t, []string{"Hello, bob!"}, got.Flashes)
	})

	t.Run("Get missing session returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, NewSession().ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete removes session", func(t *testing.T) {
		s := NewSession()
		assert.NoError(t, store.Save(ctx, s))
		assert.NoError(t, store.Delete(ctx, s.ID))

		_, err := store.Get(ctx, s.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Session expires", func(t *testing.T) {
		s := NewSession()
		assert.NoError(t, store.Save(ctx, s))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := store.Get(ctx, s.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
