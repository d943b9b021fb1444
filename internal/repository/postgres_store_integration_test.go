package repository

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_5_vocab_flash/internal/model"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostgresRowStoreSuite は PostgreSQL コンテナに対する RowStore の結合テストです。
// go test -short では実行しない。
type PostgresRowStoreSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	store    RowStore
}

func TestPostgresRowStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}
	suite.Run(t, new(PostgresRowStoreSuite))
}

func (s *PostgresRowStoreSuite) SetupSuite() {
	testLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("Could not construct pool: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		s.T().Skipf("Could not connect to Docker: %s", err)
	}
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_flash",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err, "Could not start PostgreSQL resource")
	s.resource = resource
	resource.Expire(300)

	databaseURL := fmt.Sprintf("postgres://user:secret@%s/vocab_flash?sslmode=disable", resource.GetHostPort("5432/tcp"))

	err = pool.Retry(func() error {
		db, err := NewDB("postgres", databaseURL, testLogger)
		if err != nil {
			return err
		}
		s.db = db
		return nil
	})
	require.NoError(s.T(), err, "Could not connect to PostgreSQL")

	store, err := NewGormRowStore(s.db)
	require.NoError(s.T(), err)
	s.store = store
}

func (s *PostgresRowStoreSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		if err := s.pool.Purge(s.resource); err != nil {
			log.Printf("Could not purge resource: %s", err)
		}
	}
}

func (s *PostgresRowStoreSuite) SetupTest() {
	require.NoError(s.T(), s.store.Save(context.Background(), []model.Entry{}))
}

func (s *PostgresRowStoreSuite) TestSaveAndLoad() {
	ctx := context.Background()
	entries := []model.Entry{
		{Word: "apple", Meaning: "りんご", Phonetic: "/ˈæp.əl/", ExampleEN: "I ate an apple.", ExampleJA: "りんごを食べた。", Synonyms: ""},
		{Word: "run", Meaning: "走る", Synonyms: "sprint, dash", Extra: map[string]string{"memo": "verb"}},
	}
	require.NoError(s.T(), s.store.Save(ctx, entries))

	got, err := s.store.Load(ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), entries, got)
}

func (s *PostgresRowStoreSuite) TestRewriteShrinksTable() {
	ctx := context.Background()
	require.NoError(s.T(), s.store.Save(ctx, []model.Entry{{Word: "a"}, {Word: "b"}, {Word: "c"}}))
	require.NoError(s.T(), s.store.Save(ctx, []model.Entry{{Word: "b"}}))

	got, err := s.store.Load(ctx)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []model.Entry{{Word: "b"}}, got)
}
