package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"carecorner/config"
	"carecorner/internal/domain/lifecycle"
	"carecorner/internal/errors"
	"carecorner/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool shared by every repository. On start it pings the
// server and, when migration.applyOnStart is set, brings the schema up to date.
func New(params Params) (*gorm.DB, error) {
	if params.Config == nil || params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	// Implicit per-statement transactions are off; multi-step writes go
	// through the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB handle")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB)
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return start(ctx, params, sqlDB, monitor)
		},
		OnStop: func(context.Context) error {
			monitor.stop()

			return errors.Wrap(sqlDB.Close(), "close postgres")
		},
	})

	return db, nil
}

func start(ctx context.Context, params Params, sqlDB *sql.DB, monitor *poolMonitor) error {
	pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return errors.Wrap(err, "ping postgres")
	}

	if m := params.Config.Migration; m != nil && m.ApplyOnStart {
		if err := migrations.Up(ctx, sqlDB, params.Logger); err != nil {
			return err
		}
	}

	monitor.start()

	return nil
}

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// poolMonitor periodically logs connection pool contention: a warning when
// callers waited at least poolWaitWarnThreshold since the last sample.
type poolMonitor struct {
	logger *slog.Logger
	stats  func() sql.DBStats
	cancel context.CancelFunc
	done   chan struct{}
}

func newPoolMonitor(logger *slog.Logger, sqlDB *sql.DB) *poolMonitor {
	return &poolMonitor{logger: logger, stats: sqlDB.Stats}
}

func (m *poolMonitor) start() {
	if m.logger == nil || m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx, poolMonitorInterval)
}

func (m *poolMonitor) stop() {
	if m.cancel == nil {
		return
	}

	m.cancel()
	<-m.done
	m.cancel = nil
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
	)
}
