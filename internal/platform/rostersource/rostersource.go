// Package rostersource は設定に応じて名簿リポジトリとトランザクション管理を組み立てます。
package rostersource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ogurasousui/codex-grpc-payroll/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-grpc-payroll/internal/adapters/roster/file"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payrun"
	"github.com/ogurasousui/codex-grpc-payroll/internal/core/roster"
	"github.com/ogurasousui/codex-grpc-payroll/internal/platform/config"
	pgdb "github.com/ogurasousui/codex-grpc-payroll/internal/platform/db/postgres"
)

// Source は名簿リポジトリと、それに対応するトランザクション管理です。
type Source struct {
	Repository roster.Repository
	// TxManager はファイル名簿の場合 nil です。
	TxManager payrun.TransactionManager

	pool *pgxpool.Pool
}

// Open は cfg.Roster.Source に従って Source を構築します。
func Open(ctx context.Context, cfg *config.Config) (*Source, error) {
	switch cfg.Roster.Source {
	case config.RosterSourcePostgres:
		pool, err := pgdb.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("roster source: %w", err)
		}
		return &Source{
			Repository: postgres.NewRosterRepository(pool),
			TxManager:  pgdb.NewTransactionManager(pool),
			pool:       pool,
		}, nil
	default:
		repo, err := file.NewRepository(cfg.Roster.Path, file.Format(cfg.Roster.Format))
		if err != nil {
			return nil, fmt.Errorf("roster source: %w", err)
		}
		return &Source{Repository: repo}, nil
	}
}

// Close は保持している接続プールを閉じます。
func (s *Source) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}
