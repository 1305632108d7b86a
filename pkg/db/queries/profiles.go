package queries

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
)

// FindProfileByID retrieves the profile row for a user. Returns (nil, nil)
// when the user has no profile.
func FindProfileByID(id uuid.UUID) (*db.Profile, error) {
	profile := &db.Profile{}
	query := `SELECT id, full_name, role, created_at, updated_at FROM profiles WHERE id = $1`
	err := db.DB.Get(profile, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debugf("Profile with ID '%s' not found.", id.String())
			return nil, nil
		}
		log.Errorf("Error finding profile by ID '%s': %v", id.String(), err)
		return nil, err
	}
	return profile, nil
}

// ProfileWithEmail is a profile row with the user's email joined in for the
// admin user-management view.
type ProfileWithEmail struct {
	db.Profile
	Email string `db:"email"`
}

// ListProfiles returns all profiles, newest registrations first.
func ListProfiles() ([]ProfileWithEmail, error) {
	var profiles []ProfileWithEmail
	query := `
		SELECT p.id, p.full_name, p.role, p.created_at, p.updated_at, u.email
		FROM profiles p
		JOIN users u ON u.id = p.id
		ORDER BY p.created_at DESC`
	if err := db.DB.Select(&profiles, query); err != nil {
		log.Errorf("Error listing profiles: %v", err)
		return nil, err
	}
	return profiles, nil
}

// UpdateProfileRole sets a user's role. Takes effect on the user's next
// request because role gates read this row, not the token claim.
func UpdateProfileRole(id uuid.UUID, role string) error {
	result, err := db.DB.Exec(
		`UPDATE profiles SET role = $1, updated_at = $2 WHERE id = $3`,
		role, time.Now().UTC(), id,
	)
	if err != nil {
		log.Errorf("Error updating role for profile '%s': %v", id.String(), err)
		return err
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warnf("No profile found with ID '%s' for role update.", id.String())
		return sql.ErrNoRows
	}

	log.Infof("Profile '%s' role updated to '%s'.", id.String(), role)
	return nil
}
