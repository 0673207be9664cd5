//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/carb_validation/internal/repo/postgres"
	"github.com/Gunvolt24/carb_validation/migrations"
)

const (
	defaultPostgresImage = "postgres:16-alpine"
	defaultRedpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// image: образ из переменной окружения или значение по умолчанию.
func image(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// lifecycleLog: хуки, печатающие этапы жизни контейнера.
func lifecycleLog(l *log.Logger) tc.ContainerLifecycleHooks {
	stage := func(name string) []tc.ContainerHook {
		return []tc.ContainerHook{func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			l.Printf("%s id=%s", name, id)
			return nil
		}}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{func(_ context.Context, req tc.ContainerRequest) error {
			l.Printf("create image=%s", req.Image)
			return nil
		}},
		PostStarts:     stage("started"),
		PostReadies:    stage("ready"),
		PostTerminates: stage("terminated"),
	}
}

// CatalogDB: Postgres в контейнере с применённой схемой каталога.
type CatalogDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartCatalogDB поднимает Postgres (образ CARB_TEST_POSTGRES_IMAGE), открывает пул
// и применяет встроенные миграции тем же кодом, что и сервис.
func StartCatalogDB(ctx context.Context) (*CatalogDB, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		image("CARB_TEST_POSTGRES_IMAGE", defaultPostgresImage),
		tc.WithLifecycleHooks(lifecycleLog(tcLogger)),
		postgres.WithDatabase("carb"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	terminate := func() { _ = tc.TerminateContainer(pg) }

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("conn string: %w", err)
	}

	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		terminate()
		return nil, nil, err
	}

	if err := pgrepo.Migrate(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		terminate()
		return nil, nil, err
	}

	stop := func(context.Context) error {
		pool.Close()
		return tc.TerminateContainer(pg)
	}
	return &CatalogDB{Container: pg, Pool: pool, DSN: dsn}, stop, nil
}
