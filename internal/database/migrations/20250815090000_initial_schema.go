package migrations

import (
	"context"
	"fmt"

	"github.com/jergadic/jergadic/internal/database/types"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Create tables
		models := []any{
			(*types.User)(nil),
			(*types.Term)(nil),
			(*types.Definition)(nil),
			(*types.Dicho)(nil),
			(*types.Comment)(nil),
			(*types.Vote)(nil),
			(*types.Flag)(nil),
			(*types.Notification)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %T: %w", model, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		// Down migration - drop all tables
		models := []any{
			(*types.Notification)(nil),
			(*types.Flag)(nil),
			(*types.Vote)(nil),
			(*types.Comment)(nil),
			(*types.Dicho)(nil),
			(*types.Definition)(nil),
			(*types.Term)(nil),
			(*types.User)(nil),
		}

		for _, model := range models {
			_, err := db.NewDropTable().
				Model(model).
				IfExists().
				Cascade().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %T: %w", model, err)
			}
		}

		return nil
	})
}
