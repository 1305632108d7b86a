package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// Profile carries the role for one authenticated user. Its ID is the user's
// ID; the row is created alongside the user at registration.
type Profile struct {
	ID        uuid.UUID `db:"id"`
	FullName  string    `db:"full_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Chapter struct {
	ID            uuid.UUID      `db:"id"`
	ChapterNumber int            `db:"chapter_number"`
	Title         string         `db:"title"`
	SanskritTitle sql.NullString `db:"sanskrit_title"`
	EnglishTitle  sql.NullString `db:"english_title"`
	TotalVerses   sql.NullInt32  `db:"total_verses"`
	Summary       sql.NullString `db:"summary"`
	Description   sql.NullString `db:"description"`
	Visibility    string         `db:"visibility"`
	SortOrder     int            `db:"sort_order"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// Language rows carry two manually-entered progress counters. These are
// editorial overrides, not aggregates: they may diverge from the true number
// of verse rows and are never re-synced automatically.
type Language struct {
	ID                 uuid.UUID      `db:"id"`
	Code               string         `db:"code"`
	Name               string         `db:"name"`
	NativeName         sql.NullString `db:"native_name"`
	IsActive           bool           `db:"is_active"`
	ManualVerseCount   int            `db:"manual_verse_count"`
	ManualChapterCount int            `db:"manual_chapter_count"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

type Verse struct {
	ID                 uuid.UUID      `db:"id"`
	ChapterID          uuid.UUID      `db:"chapter_id"`
	LanguageID         uuid.UUID      `db:"language_id"`
	VerseNumber        int            `db:"verse_number"`
	Title              sql.NullString `db:"title"`
	SanskritText       sql.NullString `db:"sanskrit_text"`
	Transliteration    sql.NullString `db:"transliteration"`
	EnglishTranslation sql.NullString `db:"english_translation"`
	Commentary         sql.NullString `db:"commentary"`
	Description        sql.NullString `db:"description"`
	YoutubeURL         sql.NullString `db:"youtube_url"`
	VideoFilePath      sql.NullString `db:"video_file_path"`
	Keywords           pq.StringArray `db:"keywords"`
	Status             string         `db:"status"`
	Visibility         string         `db:"visibility"`
	IsDailyVerse       bool           `db:"is_daily_verse"`
	WhatsappShareText  sql.NullString `db:"whatsapp_share_text"`
	CreatedBy          uuid.NullUUID  `db:"created_by"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// VerseWithRefs is a verse row joined with the chapter and language it
// belongs to, for admin list views.
type VerseWithRefs struct {
	Verse
	ChapterNumber      int            `db:"ref_chapter_number"`
	ChapterTitle       string         `db:"ref_chapter_title"`
	LanguageName       string         `db:"ref_language_name"`
	LanguageNativeName sql.NullString `db:"ref_language_native_name"`
}
