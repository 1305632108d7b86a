package queries

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/db"
)

// CreateUser inserts a new user together with its profile row. The profile
// starts as viewer; role upgrades are a separate admin action.
func CreateUser(user *db.User) (*db.User, error) {
	tx, err := db.DB.Beginx()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.NamedQuery(`
		INSERT INTO users (email, full_name, password_hash)
		VALUES (:email, :full_name, :password_hash)
		RETURNING id, created_at, updated_at`, user)
	if err != nil {
		log.Errorf("Error creating user: %v", err)
		return nil, err
	}
	if rows.Next() {
		if err := rows.StructScan(user); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan user after creation: %w", err)
		}
	}
	rows.Close()

	if _, err := tx.Exec(
		`INSERT INTO profiles (id, full_name) VALUES ($1, $2)`,
		user.ID, user.FullName,
	); err != nil {
		log.Errorf("Error creating profile for user %s: %v", user.Email, err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	log.Infof("User %s created with ID: %s", user.Email, user.ID.String())
	return user, nil
}

// FindUserByEmail retrieves a user by email. Returns (nil, nil) when no such
// user exists.
func FindUserByEmail(email string) (*db.User, error) {
	user := &db.User{}
	query := `SELECT id, email, full_name, password_hash, created_at, updated_at FROM users WHERE email = $1`
	err := db.DB.Get(user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Errorf("Error finding user by email '%s': %v", email, err)
		return nil, err
	}
	return user, nil
}

func FindUserByID(id uuid.UUID) (*db.User, error) {
	user := &db.User{}
	query := `SELECT id, email, full_name, password_hash, created_at, updated_at FROM users WHERE id = $1`
	err := db.DB.Get(user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debugf("User with ID '%s' not found.", id.String())
			return nil, nil
		}
		log.Errorf("Error finding user by ID '%s': %v", id.String(), err)
		return nil, err
	}
	return user, nil
}
