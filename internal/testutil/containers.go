//go:build integration

// Package testutil starts the throwaway MongoDB and Redis containers used by
// integration tests. A package starts the containers it needs once in
// TestMain and every test works in its own database or key prefix.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage = "mongo:7.0"
	redisImage = "redis:7-alpine"
)

// Container is a running test container and the address clients dial.
type Container struct {
	testcontainers.Container
	Endpoint string
}

// Terminate stops the container. A nil container is a no-op.
func (c *Container) Terminate(ctx context.Context) error {
	if c == nil || c.Container == nil {
		return nil
	}
	return c.Container.Terminate(ctx)
}

// StartMongo runs a single-node MongoDB and returns its connection URI as
// the endpoint.
func StartMongo(ctx context.Context) (*Container, error) {
	ctr, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb: %w", err)
	}
	uri, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}
	return &Container{Container: ctr, Endpoint: uri}, nil
}

// StartRedis runs a Redis server and returns host:port as the endpoint.
func StartRedis(ctx context.Context) (*Container, error) {
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start redis: %w", err)
	}
	addr, err := ctr.Endpoint(ctx, "")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, fmt.Errorf("redis endpoint: %w", err)
	}
	return &Container{Container: ctr, Endpoint: addr}, nil
}

var shared struct {
	sync.RWMutex
	mongo *Container
	redis *Container
}

// Services selects the shared containers a package needs.
type Services struct {
	Mongo bool
	Redis bool
}

// Run starts the requested containers, runs the package tests and tears
// the containers down. It is meant to be called from TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.Run(m, testutil.Services{Mongo: true}))
//	}
func Run(m *testing.M, services Services) int {
	ctx := context.Background()

	shared.Lock()
	var err error
	if services.Mongo {
		shared.mongo, err = StartMongo(ctx)
	}
	if err == nil && services.Redis {
		shared.redis, err = StartRedis(ctx)
	}
	shared.Unlock()

	defer func() {
		shared.Lock()
		defer shared.Unlock()
		for _, c := range []*Container{shared.mongo, shared.redis} {
			if err := c.Terminate(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "testutil: terminate container: %v\n", err)
			}
		}
		shared.mongo, shared.redis = nil, nil
	}()

	if err != nil {
		fmt.Fprintf(os.Stderr, "testutil: %v\n", err)
		return 1
	}
	return m.Run()
}

// MongoURI returns the URI of the package's MongoDB container.
func MongoURI(t testing.TB) string {
	t.Helper()
	shared.RLock()
	defer shared.RUnlock()
	if shared.mongo == nil {
		t.Fatal("testutil: MongoDB was not requested in TestMain")
	}
	return shared.mongo.Endpoint
}

// RedisAddr returns host:port of the package's Redis container.
func RedisAddr(t testing.TB) string {
	t.Helper()
	shared.RLock()
	defer shared.RUnlock()
	if shared.redis == nil {
		t.Fatal("testutil: Redis was not requested in TestMain")
	}
	return shared.redis.Endpoint
}

var dbSeq atomic.Int64

// DBName derives a database name from the test name that is unique within
// the test binary. MongoDB caps names at 63 bytes and rejects some runes.
func DBName(t testing.TB) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$', '*', '<', '>', ':', '|', '?':
			return '_'
		}
		return r
	}, t.Name())
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, dbSeq.Add(1))
}
