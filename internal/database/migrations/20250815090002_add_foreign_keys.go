package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Content relations only. Author columns deliberately carry no FK to
		// users: profiles sync lazily from the identity provider, so content
		// can land before its author row does.
		constraints := []struct {
			name string
			sql  string
		}{
			{
				"fk_definitions_term",
				"ALTER TABLE definitions ADD CONSTRAINT fk_definitions_term " +
					"FOREIGN KEY (term_id) REFERENCES terms (id) ON DELETE CASCADE",
			},
			{
				"fk_dichos_term",
				"ALTER TABLE dichos ADD CONSTRAINT fk_dichos_term " +
					"FOREIGN KEY (term_id) REFERENCES terms (id) ON DELETE CASCADE",
			},
			{
				"fk_comments_definition",
				"ALTER TABLE comments ADD CONSTRAINT fk_comments_definition " +
					"FOREIGN KEY (definition_id) REFERENCES definitions (id) ON DELETE CASCADE",
			},
			{
				"fk_comments_parent",
				"ALTER TABLE comments ADD CONSTRAINT fk_comments_parent " +
					"FOREIGN KEY (parent_id) REFERENCES comments (id) ON DELETE CASCADE",
			},
		}

		for _, c := range constraints {
			exists, err := constraintExists(ctx, db, c.name)
			if err != nil {
				return err
			}

			if exists {
				continue
			}

			if _, err := db.NewRaw(c.sql).Exec(ctx); err != nil {
				return fmt.Errorf("failed to add constraint %s: %w", c.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		drops := []string{
			"ALTER TABLE comments DROP CONSTRAINT IF EXISTS fk_comments_parent",
			"ALTER TABLE comments DROP CONSTRAINT IF EXISTS fk_comments_definition",
			"ALTER TABLE dichos DROP CONSTRAINT IF EXISTS fk_dichos_term",
			"ALTER TABLE definitions DROP CONSTRAINT IF EXISTS fk_definitions_term",
		}

		for _, sql := range drops {
			if _, err := db.NewRaw(sql).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop constraint: %w", err)
			}
		}

		return nil
	})
}

func constraintExists(ctx context.Context, db *bun.DB, name string) (bool, error) {
	var exists bool

	err := db.NewRaw(
		"SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", name,
	).Scan(ctx, &exists)
	if err != nil {
		return false, fmt.Errorf("failed to check constraint %s: %w", name, err)
	}

	return exists, nil
}
