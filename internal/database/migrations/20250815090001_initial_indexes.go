package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			-- Term lookup and search indexes. Matching runs against the
			-- accent-folded word, so that column carries both the
			-- uniqueness constraint and the prefix index.
			CREATE UNIQUE INDEX IF NOT EXISTS idx_terms_word_region
			ON terms (word_folded, region);

			CREATE INDEX IF NOT EXISTS idx_terms_word_prefix
			ON terms (word_folded text_pattern_ops)
			WHERE is_active = TRUE;

			CREATE INDEX IF NOT EXISTS idx_terms_eligible_order
			ON terms (created_at ASC, id ASC)
			WHERE is_active = TRUE;

			-- Definition ranking indexes
			CREATE INDEX IF NOT EXISTS idx_definitions_term_score
			ON definitions (term_id, votes_score DESC, created_at DESC)
			WHERE is_active = TRUE;

			CREATE INDEX IF NOT EXISTS idx_definitions_window
			ON definitions (created_at DESC)
			WHERE is_active = TRUE;

			-- Dicho and comment listing indexes
			CREATE INDEX IF NOT EXISTS idx_dichos_term_score
			ON dichos (term_id, votes_score DESC, created_at DESC)
			WHERE is_active = TRUE;

			CREATE INDEX IF NOT EXISTS idx_comments_definition
			ON comments (definition_id, votes_score DESC, created_at DESC)
			WHERE is_active = TRUE;

			CREATE INDEX IF NOT EXISTS idx_comments_parent
			ON comments (parent_id)
			WHERE parent_id IS NOT NULL;

			-- Vote ledger reverse lookup
			CREATE INDEX IF NOT EXISTS idx_votes_target
			ON votes (target_type, target_id);

			-- Leaderboard index
			CREATE INDEX IF NOT EXISTS idx_users_reputation
			ON users (reputation DESC)
			WHERE is_active = TRUE;

			-- Moderation queue indexes
			CREATE INDEX IF NOT EXISTS idx_flags_status_time
			ON flags (status, created_at ASC);

			CREATE INDEX IF NOT EXISTS idx_flags_reporter_target
			ON flags (reporter_id, target_type, target_id);

			-- Notification inbox indexes
			CREATE INDEX IF NOT EXISTS idx_notifications_user_time
			ON notifications (user_id, created_at DESC);

			CREATE INDEX IF NOT EXISTS idx_notifications_unread
			ON notifications (user_id)
			WHERE is_read = FALSE;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create initial indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewRaw(`
			DROP INDEX IF EXISTS idx_terms_word_region;
			DROP INDEX IF EXISTS idx_terms_word_prefix;
			DROP INDEX IF EXISTS idx_terms_eligible_order;
			DROP INDEX IF EXISTS idx_definitions_term_score;
			DROP INDEX IF EXISTS idx_definitions_window;
			DROP INDEX IF EXISTS idx_dichos_term_score;
			DROP INDEX IF EXISTS idx_comments_definition;
			DROP INDEX IF EXISTS idx_comments_parent;
			DROP INDEX IF EXISTS idx_votes_target;
			DROP INDEX IF EXISTS idx_users_reputation;
			DROP INDEX IF EXISTS idx_flags_status_time;
			DROP INDEX IF EXISTS idx_flags_reporter_target;
			DROP INDEX IF EXISTS idx_notifications_user_time;
			DROP INDEX IF EXISTS idx_notifications_unread;
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop initial indexes: %w", err)
		}

		return nil
	})
}
