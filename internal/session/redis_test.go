package session

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/labstack/gommon/log"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/crm-console/internal/model"
	"github.com/umalmyha/crm-console/internal/view"
)

const connectionTimeout = 3 * time.Second

const (
	redisContainerName = "redis-test-crm-console"
	redisTestPassword  = "test"
)

var redisClient *redis.Client

func TestMain(m *testing.M) {
	// build docker pool
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		log.Warnf("docker is not available, redis tests are skipped - %v", err)
		os.Exit(m.Run())
	}

	if err := dockerPool.Client.Ping(); err != nil {
		log.Warnf("docker is not reachable, redis tests are skipped - %v", err)
		os.Exit(m.Run())
	}

	// start redis
	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       redisContainerName,
		Repository: "redis",
		Tag:        "latest",
		Cmd:        []string{"redis-server", "--requirepass", redisTestPassword},
	})
	if err != nil {
		log.Fatalf("failed to start redis - %v", err)
	}

	// connect to redis
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")),
			Password: redisTestPassword,
		})
		return redisClient.Ping(ctx).Err()
	})
	if err != nil {
		log.Fatalf("failed to establish connection to redis - %v", err)
	}

	// start tests
	code := m.Run()

	if err := redisClient.Close(); err != nil {
		log.Errorf("failed to close redis client - %v", err)
	}

	// purge redis
	if err := dockerPool.Purge(resource); err != nil {
		log.Fatalf("failed to purge redis - %v", err)
	}

	os.Exit(code)
}

func TestRedisStore(t *testing.T) {
	if redisClient == nil {
		t.Skip("redis is not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := NewRedisStore(redisClient, time.Minute)

	t.Log("absent view is reported as nil")
	{
		d, err := store.FindDashboard(ctx, testSessionID)
		require.NoError(t, err, "absent view must not raise error")
		require.Nil(t, d, "absent view must be nil")
	}

	t.Log("dashboard with open form is stored")
	{
		d := view.NewDashboard()
		d.Activate("7", "Acme")
		d.Contacts = []*model.Contact{{ID: "31", FirstName: "Jane"}}

		f := view.NewContactForm("7", "Acme")
		f.SetRoles([]string{"Manager"})
		require.NoError(t, d.Open(view.AddingContact{Form: f}), "contact form must be opened")

		require.NoError(t, store.SaveDashboard(ctx, testSessionID, d), "dashboard must be saved")

		found, err := store.FindDashboard(ctx, testSessionID)
		require.NoError(t, err, "dashboard must be found")
		require.NotNil(t, found, "dashboard must be found")
		require.Equal(t, "Acme", found.CustomerName, "customer name must be stored")
		require.Len(t, found.Contacts, 1, "contacts must be stored")
		require.Equal(t, view.KindAddingContact, found.Modal.Kind(), "open form must be stored")
		require.Equal(t, []string{"Manager"}, found.Modal.ContactForm().Roles.Roles, "roles must be stored")
	}

	t.Log("saved view expires")
	{
		ttl, err := redisClient.TTL(ctx, key(testSessionID, screenDashboard)).Result()
		require.NoError(t, err, "ttl must be read")
		require.True(t, ttl > 0 && ttl <= time.Minute, "ttl must be set on save")
	}
}
