package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
)

const userColumns = `id, email, password_hash, first_name, last_name, is_active, is_verified, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
		&u.IsVerified,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.IsActive,
		u.IsVerified,
		u.CreatedAt.UTC(),
		u.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) MarkUserVerified(ctx context.Context, userID string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET is_active = 1, is_verified = 1, updated_at = ? WHERE id = ?`,
		at.UTC(), userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string, at time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		newHash, at.UTC(), userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
