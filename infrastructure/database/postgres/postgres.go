package postgres

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meli-sales-api/internal/config"
)

type Connection struct {
	*sql.DB
}

var (
	sharedOnce sync.Once
	sharedConn *Connection
	sharedErr  error
)

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// Shared devolve o pool do processo, criado na primeira chamada.
// Uma falha na criação é memorizada e devolvida para todos os chamadores.
func Shared(ctx context.Context, cfg config.Database) (*Connection, error) {
	sharedOnce.Do(func() {
		sharedConn, sharedErr = NewConnection(ctx, cfg)
		if sharedErr == nil {
			logrus.Debug("Pool de conexões PostgreSQL criado")
		}
	})

	return sharedConn, sharedErr
}

// Ping verifica se o banco responde; usado pelo healthcheck
func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
