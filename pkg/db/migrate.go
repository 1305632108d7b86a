package db

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Migrate creates the schema if it does not exist yet. Statements are
// idempotent so the runner is safe to execute on every boot.
func Migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			full_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'viewer'
				CHECK (role IN ('admin', 'editor', 'viewer')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS chapters (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			chapter_number INTEGER NOT NULL UNIQUE
				CHECK (chapter_number BETWEEN 1 AND 18),
			title TEXT NOT NULL,
			sanskrit_title TEXT,
			english_title TEXT,
			total_verses INTEGER,
			summary TEXT,
			description TEXT,
			visibility TEXT NOT NULL DEFAULT 'draft'
				CHECK (visibility IN ('draft', 'hidden', 'published')),
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS languages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			native_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			manual_verse_count INTEGER NOT NULL DEFAULT 0,
			manual_chapter_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS verses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			chapter_id UUID NOT NULL REFERENCES chapters(id) ON DELETE CASCADE,
			language_id UUID NOT NULL REFERENCES languages(id) ON DELETE CASCADE,
			verse_number INTEGER NOT NULL CHECK (verse_number >= 1),
			title TEXT,
			sanskrit_text TEXT,
			transliteration TEXT,
			english_translation TEXT,
			commentary TEXT,
			description TEXT,
			youtube_url TEXT,
			video_file_path TEXT,
			keywords TEXT[] NOT NULL DEFAULT '{}',
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'uploaded', 'processing', 'published')),
			visibility TEXT NOT NULL DEFAULT 'draft'
				CHECK (visibility IN ('draft', 'hidden', 'published')),
			is_daily_verse BOOLEAN NOT NULL DEFAULT false,
			whatsapp_share_text TEXT,
			created_by UUID REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (chapter_id, language_id, verse_number)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_verses_chapter ON verses (chapter_id);`,
		`CREATE INDEX IF NOT EXISTS idx_verses_language ON verses (language_id);`,
		`CREATE INDEX IF NOT EXISTS idx_verses_visibility ON verses (visibility);`,
	}

	for i, s := range stmts {
		if _, err := DB.Exec(s); err != nil {
			return fmt.Errorf("migrate stmt %d: %w", i, err)
		}
	}

	log.Info("Database schema is up to date.")
	return nil
}
