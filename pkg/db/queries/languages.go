package queries

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
)

const languageColumns = `id, code, name, native_name, is_active,
	manual_verse_count, manual_chapter_count, created_at, updated_at`

// LanguageWithCounts is a language row plus the live aggregates derived from
// its verse rows. The manual counters on the row itself take precedence when
// set; the derived values are the fallback seed.
type LanguageWithCounts struct {
	db.Language
	DerivedVerseCount   int `db:"derived_verse_count"`
	DerivedChapterCount int `db:"derived_chapter_count"`
}

// ListLanguages returns all languages with derived counts, ordered by name.
// activeOnly restricts to active rows for public pages.
func ListLanguages(activeOnly bool) ([]LanguageWithCounts, error) {
	var languages []LanguageWithCounts
	query := `
		SELECT l.id, l.code, l.name, l.native_name, l.is_active,
			l.manual_verse_count, l.manual_chapter_count, l.created_at, l.updated_at,
			COUNT(v.id) AS derived_verse_count,
			COUNT(DISTINCT v.chapter_id) AS derived_chapter_count
		FROM languages l
		LEFT JOIN verses v ON v.language_id = l.id`
	if activeOnly {
		query += ` WHERE l.is_active`
	}
	query += ` GROUP BY l.id ORDER BY l.name`

	if err := db.DB.Select(&languages, query); err != nil {
		log.Errorf("Error listing languages: %v", err)
		return nil, err
	}
	return languages, nil
}

func FindLanguageByID(id uuid.UUID) (*db.Language, error) {
	language := &db.Language{}
	query := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`
	err := db.DB.Get(language, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debugf("Language with ID '%s' not found.", id.String())
			return nil, nil
		}
		log.Errorf("Error finding language by ID '%s': %v", id.String(), err)
		return nil, err
	}
	return language, nil
}

func FindLanguageByCode(code string) (*db.Language, error) {
	language := &db.Language{}
	query := `SELECT ` + languageColumns + ` FROM languages WHERE code = $1`
	err := db.DB.Get(language, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Errorf("Error finding language by code '%s': %v", code, err)
		return nil, err
	}
	return language, nil
}

func CreateLanguage(language *db.Language) (*db.Language, error) {
	query := `
		INSERT INTO languages (code, name, native_name, is_active,
			manual_verse_count, manual_chapter_count)
		VALUES (:code, :name, :native_name, :is_active,
			:manual_verse_count, :manual_chapter_count)
		RETURNING id, created_at, updated_at`

	rows, err := db.DB.NamedQuery(query, language)
	if err != nil {
		log.Errorf("Error creating language '%s': %v", language.Code, err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.StructScan(language); err != nil {
			return nil, fmt.Errorf("scan language after creation: %w", err)
		}
	} else {
		return nil, fmt.Errorf("no rows returned after language creation")
	}

	log.Infof("Language '%s' (%s) created (ID: %s)", language.Name, language.Code, language.ID.String())
	return language, nil
}

func UpdateLanguage(language *db.Language) error {
	language.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE languages
		SET code = :code, name = :name, native_name = :native_name,
			is_active = :is_active, manual_verse_count = :manual_verse_count,
			manual_chapter_count = :manual_chapter_count, updated_at = :updated_at
		WHERE id = :id`

	result, err := db.DB.NamedExec(query, language)
	if err != nil {
		log.Errorf("Error updating language with ID '%s': %v", language.ID.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No language found with ID '%s' for update.", language.ID.String())
		return sql.ErrNoRows
	}

	log.Infof("Language with ID '%s' updated.", language.ID.String())
	return nil
}

func SetLanguageActive(id uuid.UUID, active bool) error {
	result, err := db.DB.Exec(
		`UPDATE languages SET is_active = $1, updated_at = $2 WHERE id = $3`,
		active, time.Now().UTC(), id,
	)
	if err != nil {
		log.Errorf("Error setting active flag for language '%s': %v", id.String(), err)
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountVersesByLanguage returns the number of verse rows tied to a language,
// surfaced in the cascade-delete warning before the operator confirms.
func CountVersesByLanguage(id uuid.UUID) (int, error) {
	var count int
	if err := db.DB.Get(&count, `SELECT COUNT(*) FROM verses WHERE language_id = $1`, id); err != nil {
		log.Errorf("Error counting verses for language '%s': %v", id.String(), err)
		return 0, err
	}
	return count, nil
}

// DeleteLanguage removes a language. All of its verses are deleted in the
// same statement through the ON DELETE CASCADE constraint.
func DeleteLanguage(id uuid.UUID) error {
	result, err := db.DB.Exec(`DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting language with ID '%s': %v", id.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No language found with ID '%s' for deletion.", id.String())
		return sql.ErrNoRows
	}

	log.Infof("Language with ID '%s' deleted (verses cascade).", id.String())
	return nil
}
