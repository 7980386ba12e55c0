package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/account-service/internal/apperror"
	"github.com/sakif/account-service/internal/model"
	"github.com/sakif/account-service/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

const userColumns = `id, email, password_hash, name, surname, display_name,
	telephone_number, line_id, profile_image, last_logout_at, created_at, updated_at`

// Create inserts a new user. The ID and timestamps are assigned here; the
// caller's struct is updated in place.
//
// The UNIQUE index on email is the authoritative duplicate check — the
// service also looks the email up first for a friendlier path, but two
// concurrent registrations for the same email are decided by this
// constraint, not by the pre-check.
func (db *DB) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.ID = xid.New().String()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, surname, display_name,
			telephone_number, line_id, profile_image, last_logout_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Surname,
		user.DisplayName,
		user.TelephoneNumber,
		nullString(user.LineID),
		nullString(user.ProfileImage),
		nullTime(user.LastLogoutAt),
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperror.Conflict("User already exists")
		}
		return fmt.Errorf("sqlite: inserting user (email=%s): %w", user.Email, err)
	}

	return nil
}

// GetByID retrieves a user by their internal ID.
// Returns apperror.ErrNotFound if no user exists with that ID.
func (db *DB) GetByID(ctx context.Context, id string) (*model.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by their login email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email,
	)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", email)
		}
		return nil, fmt.Errorf("sqlite: getting user by email %s: %w", email, err)
	}
	return user, nil
}

// Update overwrites the mutable columns of an existing user record.
// Email is immutable by design and is deliberately not in the SET list.
func (db *DB) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now().UTC()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, name = ?, surname = ?, display_name = ?,
			telephone_number = ?, line_id = ?, profile_image = ?, last_logout_at = ?,
			updated_at = ?
		 WHERE id = ?`,
		user.PasswordHash,
		user.Name,
		user.Surname,
		user.DisplayName,
		user.TelephoneNumber,
		nullString(user.LineID),
		nullString(user.ProfileImage),
		nullTime(user.LastLogoutAt),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating user %s: %w", user.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected for user %s: %w", user.ID, err)
	}
	if affected == 0 {
		return apperror.NotFound("user", user.ID)
	}

	return nil
}

// Delete removes a user record permanently. No soft delete.
func (db *DB) Delete(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: deleting user %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected for user %s: %w", id, err)
	}
	if affected == 0 {
		return apperror.NotFound("user", id)
	}

	return nil
}

// scanUser reads one row into a model.User, converting NULLable columns into
// the model's pointer fields.
func scanUser(row *sql.Row) (*model.User, error) {
	var (
		u            model.User
		lineID       sql.NullString
		profileImage sql.NullString
		lastLogoutAt sql.NullTime
	)

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Surname,
		&u.DisplayName,
		&u.TelephoneNumber,
		&lineID,
		&profileImage,
		&lastLogoutAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lineID.Valid {
		u.LineID = &lineID.String
	}
	if profileImage.Valid {
		u.ProfileImage = &profileImage.String
	}
	if lastLogoutAt.Valid {
		u.LastLogoutAt = &lastLogoutAt.Time
	}

	return &u, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
