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

const chapterColumns = `id, chapter_number, title, sanskrit_title, english_title,
	total_verses, summary, description, visibility, sort_order, created_at, updated_at`

// ListChapters returns every chapter ordered by chapter number, for the admin
// management view.
func ListChapters() ([]db.Chapter, error) {
	var chapters []db.Chapter
	query := `SELECT ` + chapterColumns + ` FROM chapters ORDER BY chapter_number`
	if err := db.DB.Select(&chapters, query); err != nil {
		log.Errorf("Error listing chapters: %v", err)
		return nil, err
	}
	return chapters, nil
}

// ListPublishedChapters returns only published chapters, the set a public
// reader is allowed to see.
func ListPublishedChapters() ([]db.Chapter, error) {
	var chapters []db.Chapter
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE visibility = $1 ORDER BY chapter_number`
	if err := db.DB.Select(&chapters, query, gita.VisibilityPublished); err != nil {
		log.Errorf("Error listing published chapters: %v", err)
		return nil, err
	}
	return chapters, nil
}

func FindChapterByID(id uuid.UUID) (*db.Chapter, error) {
	chapter := &db.Chapter{}
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1`
	err := db.DB.Get(chapter, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debugf("Chapter with ID '%s' not found.", id.String())
			return nil, nil
		}
		log.Errorf("Error finding chapter by ID '%s': %v", id.String(), err)
		return nil, err
	}
	return chapter, nil
}

// FindPublishedChapterByNumber looks a chapter up by its 1..18 number,
// restricted to published rows for the public detail page.
func FindPublishedChapterByNumber(number int) (*db.Chapter, error) {
	chapter := &db.Chapter{}
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE chapter_number = $1 AND visibility = $2`
	err := db.DB.Get(chapter, query, number, gita.VisibilityPublished)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Errorf("Error finding published chapter %d: %v", number, err)
		return nil, err
	}
	return chapter, nil
}

func CreateChapter(chapter *db.Chapter) (*db.Chapter, error) {
	query := `
		INSERT INTO chapters (chapter_number, title, sanskrit_title, english_title,
			total_verses, summary, description, visibility, sort_order)
		VALUES (:chapter_number, :title, :sanskrit_title, :english_title,
			:total_verses, :summary, :description, :visibility, :sort_order)
		RETURNING id, created_at, updated_at`

	rows, err := db.DB.NamedQuery(query, chapter)
	if err != nil {
		log.Errorf("Error creating chapter %d: %v", chapter.ChapterNumber, err)
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.StructScan(chapter); err != nil {
			return nil, fmt.Errorf("scan chapter after creation: %w", err)
		}
	} else {
		return nil, fmt.Errorf("no rows returned after chapter creation")
	}

	log.Infof("Chapter %d '%s' created (ID: %s)", chapter.ChapterNumber, chapter.Title, chapter.ID.String())
	return chapter, nil
}

func UpdateChapter(chapter *db.Chapter) error {
	chapter.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE chapters
		SET chapter_number = :chapter_number, title = :title,
			sanskrit_title = :sanskrit_title, english_title = :english_title,
			total_verses = :total_verses, summary = :summary,
			description = :description, visibility = :visibility,
			sort_order = :sort_order, updated_at = :updated_at
		WHERE id = :id`

	result, err := db.DB.NamedExec(query, chapter)
	if err != nil {
		log.Errorf("Error updating chapter with ID '%s': %v", chapter.ID.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No chapter found with ID '%s' for update.", chapter.ID.String())
		return sql.ErrNoRows
	}

	log.Infof("Chapter with ID '%s' updated.", chapter.ID.String())
	return nil
}

// SetChapterVisibility writes the outcome of a visibility toggle or edit.
func SetChapterVisibility(id uuid.UUID, visibility gita.Visibility) error {
	result, err := db.DB.Exec(
		`UPDATE chapters SET visibility = $1, updated_at = $2 WHERE id = $3`,
		visibility, time.Now().UTC(), id,
	)
	if err != nil {
		log.Errorf("Error setting visibility for chapter '%s': %v", id.String(), err)
		return err
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteChapter hard-deletes a chapter; dependent verses go with it via the
// foreign-key cascade.
func DeleteChapter(id uuid.UUID) error {
	result, err := db.DB.Exec(`DELETE FROM chapters WHERE id = $1`, id)
	if err != nil {
		log.Errorf("Error deleting chapter with ID '%s': %v", id.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No chapter found with ID '%s' for deletion.", id.String())
		return sql.ErrNoRows
	}

	log.Infof("Chapter with ID '%s' deleted.", id.String())
	return nil
}
