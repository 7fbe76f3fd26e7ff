package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BossEl-566/LmBlog-sub001/internal/config"
)

func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.GetDSN()
	pool, err := pgxpool.New(context.Background(), dsn)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		return nil, err
	}

	return pool, nil
}
