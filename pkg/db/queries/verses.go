package queries

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/gita"
)

const verseColumns = `v.id, v.chapter_id, v.language_id, v.verse_number, v.title,
	v.sanskrit_text, v.transliteration, v.english_translation, v.commentary,
	v.description, v.youtube_url, v.video_file_path, v.keywords, v.status,
	v.visibility, v.is_daily_verse, v.whatsapp_share_text, v.created_by,
	v.created_at, v.updated_at`

const verseRefColumns = verseColumns + `,
	c.chapter_number AS ref_chapter_number, c.title AS ref_chapter_title,
	l.name AS ref_language_name, l.native_name AS ref_language_native_name`

const verseJoins = ` FROM verses v
	JOIN chapters c ON c.id = v.chapter_id
	JOIN languages l ON l.id = v.language_id`

// VerseFilter narrows the admin verse list. Zero values mean no filter.
type VerseFilter struct {
	ChapterID  uuid.UUID
	LanguageID uuid.UUID
	Search     string
}

// ListVerses returns verses for the admin management view, newest first,
// with chapter and language references joined in.
func ListVerses(filter VerseFilter) ([]db.VerseWithRefs, error) {
	query := `SELECT ` + verseRefColumns + verseJoins + ` WHERE 1=1`
	args := []any{}

	if filter.ChapterID != uuid.Nil {
		args = append(args, filter.ChapterID)
		query += fmt.Sprintf(" AND v.chapter_id = $%d", len(args))
	}
	if filter.LanguageID != uuid.Nil {
		args = append(args, filter.LanguageID)
		query += fmt.Sprintf(" AND v.language_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (v.title ILIKE $%d OR v.english_translation ILIKE $%d OR c.title ILIKE $%d)",
			len(args), len(args), len(args))
	}
	query += ` ORDER BY v.created_at DESC`

	var verses []db.VerseWithRefs
	if err := db.DB.Select(&verses, query, args...); err != nil {
		log.Errorf("Error listing verses: %v", err)
		return nil, err
	}
	return verses, nil
}

// ListPublishedVerses returns the published verses of one chapter for the
// public detail page, ordered by verse number. languageID is optional.
func ListPublishedVerses(chapterID, languageID uuid.UUID) ([]db.VerseWithRefs, error) {
	query := `SELECT ` + verseRefColumns + verseJoins + ` WHERE v.chapter_id = $1 AND v.visibility = $2`
	args := []any{chapterID, gita.VisibilityPublished}

	if languageID != uuid.Nil {
		args = append(args, languageID)
		query += fmt.Sprintf(" AND v.language_id = $%d", len(args))
	}
	query += ` ORDER BY v.verse_number, l.name`

	var verses []db.VerseWithRefs
	if err := db.DB.Select(&verses, query, args...); err != nil {
		log.Errorf("Error listing published verses for chapter '%s': %v", chapterID.String(), err)
		return nil, err
	}
	return verses, nil
}

func FindVerseByID(id uuid.UUID) (*db.VerseWithRefs, error) {
	verse := &db.VerseWithRefs{}
	query := `SELECT ` + verseRefColumns + verseJoins + ` WHERE v.id = $1`
	err := db.DB.Get(verse, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debugf("Verse with ID '%s' not found.", id.String())
			return nil, nil
		}
		log.Errorf("Error finding verse by ID '%s': %v", id.String(), err)
		return nil, err
	}
	return verse, nil
}

// FindPublishedVerse looks up one published verse by chapter number and verse
// number, for the public share endpoint.
func FindPublishedVerse(chapterNumber, verseNumber int) (*db.VerseWithRefs, error) {
	verse := &db.VerseWithRefs{}
	query := `SELECT ` + verseRefColumns + verseJoins + `
		WHERE c.chapter_number = $1 AND v.verse_number = $2 AND v.visibility = $3
		ORDER BY l.name LIMIT 1`
	err := db.DB.Get(verse, query, chapterNumber, verseNumber, gita.VisibilityPublished)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Errorf("Error finding published verse %d.%d: %v", chapterNumber, verseNumber, err)
		return nil, err
	}
	return verse, nil
}

// FindDailyVerse returns the most recently updated published and visible
// verse flagged as the daily verse, or (nil, nil) when none is flagged.
func FindDailyVerse() (*db.VerseWithRefs, error) {
	verse := &db.VerseWithRefs{}
	query := `SELECT ` + verseRefColumns + verseJoins + `
		WHERE v.is_daily_verse AND v.visibility = $1
		ORDER BY v.updated_at DESC LIMIT 1`
	err := db.DB.Get(verse, query, gita.VisibilityPublished)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Errorf("Error finding daily verse: %v", err)
		return nil, err
	}
	return verse, nil
}

func CreateVerse(verse *db.Verse) (*db.Verse, error) {
	if verse.Status == "" {
		verse.Status = string(gita.StatusPending)
	}
	if verse.Visibility == "" {
		verse.Visibility = string(gita.VisibilityDraft)
	}

	query := `
		INSERT INTO verses (chapter_id, language_id, verse_number, title,
			sanskrit_text, transliteration, english_translation, commentary,
			description, youtube_url, video_file_path, keywords, status,
			visibility, is_daily_verse, whatsapp_share_text, created_by)
		VALUES (:chapter_id, :language_id, :verse_number, :title,
			:sanskrit_text, :transliteration, :english_translation, :commentary,
			:description, :youtube_url, :video_file_path, :keywords, :status,
			:visibility, :is_daily_verse, :whatsapp_share_text, :created_by)
		RETURNING id, created_at, updated_at`

	rows, err := db.DB.NamedQuery(query, verse)
	if err != nil {
		log.Errorf("Error creating verse %d: %v", verse.VerseNumber, err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.StructScan(verse); err != nil {
			return nil, fmt.Errorf("scan verse after creation: %w", err)
		}
	} else {
		return nil, fmt.Errorf("no rows returned after verse creation")
	}

	log.Infof("Verse %d created (ID: %s)", verse.VerseNumber, verse.ID.String())
	return verse, nil
}

func UpdateVerse(verse *db.Verse) error {
	verse.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE verses
		SET chapter_id = :chapter_id, language_id = :language_id,
			verse_number = :verse_number, title = :title,
			sanskrit_text = :sanskrit_text, transliteration = :transliteration,
			english_translation = :english_translation, commentary = :commentary,
			description = :description, youtube_url = :youtube_url,
			video_file_path = :video_file_path, keywords = :keywords,
			status = :status, visibility = :visibility,
			is_daily_verse = :is_daily_verse,
			whatsapp_share_text = :whatsapp_share_text, updated_at = :updated_at
		WHERE id = :id`

	result, err := db.DB.NamedExec(query, verse)
	if err != nil {
		log.Errorf("Error updating verse with ID '%s': %v", verse.ID.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No verse found with ID '%s' for update.", verse.ID.String())
		return sql.ErrNoRows
	}

	log.Infof("Verse with ID '%s' updated.", verse.ID.String())
	return nil
}

func SetVerseVisibility(id uuid.UUID, visibility gita.Visibility) error {
	result, err := db.DB.Exec(
		`UPDATE verses SET visibility = $1, updated_at = $2 WHERE id = $3`,
		visibility, time.Now().UTC(), id,
	)
	if err != nil {
		log.Errorf("Error setting visibility for verse '%s': %v", id.String(), err)
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteVerse(id uuid.UUID) error {
	result, err := db.DB.Exec(`DELETE FROM verses WHERE id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting verse with ID '%s': %v", id.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No verse found with ID '%s' for deletion.", id.String())
		return sql.ErrNoRows
	}

	log.Infof("Verse with ID '%s' deleted.", id.String())
	return nil
}
