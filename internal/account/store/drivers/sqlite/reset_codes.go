package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/gearbox/internal/account/domain"
)

type resetCodesRepo struct {
	db dbtx
}

func (r *resetCodesRepo) CreateResetCode(ctx context.Context, c domain.ResetCode) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reset_codes (id, user_id, code_hash, created_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.CodeHash, c.CreatedAt.UTC(), c.ExpiresAt.UTC())
	return mapConstraint(err)
}

func (r *resetCodesRepo) GetResetCode(ctx context.Context, userID, codeHash string) (domain.ResetCode, error) {
	var c domain.ResetCode
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, code_hash, created_at, expires_at
		   FROM reset_codes
		  WHERE user_id = ? AND code_hash = ?
		  ORDER BY created_at DESC
		  LIMIT 1`,
		userID, codeHash,
	).Scan(&c.ID, &c.UserID, &c.CodeHash, &c.CreatedAt, &c.ExpiresAt)
	if err != nil {
		return domain.ResetCode{}, mapNotFound(err)
	}
	return c, nil
}

func (r *resetCodesRepo) DeleteResetCode(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reset_codes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *resetCodesRepo) DeleteUserResetCodes(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reset_codes WHERE user_id = ?`, userID)
	return err
}

func (r *resetCodesRepo) DeleteExpiredResetCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reset_codes WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
