package sqlite

import (
	"context"
	"time"

	"github.com/quollsec/scanhub/internal/api/domain"
)

type otpsRepo struct {
	db DBTX
}

func (r *otpsRepo) CreateOTP(ctx context.Context, otp domain.UserOTP) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_otps (id, user_id, code, is_active, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		otp.ID, otp.UserID, otp.Code, otp.IsActive, otp.ExpiresAt, time.Now().UTC())
	return err
}

// ConsumeOTP is the compare-and-swap for one-time codes: the UPDATE only
// matches while the code is still active and unexpired, so exactly one of any
// concurrent verification attempts wins.
func (r *otpsRepo) ConsumeOTP(ctx context.Context, userID, code string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_otps SET is_active = 0
		 WHERE user_id = ? AND code = ? AND is_active = 1 AND expires_at > ?`,
		userID, code, time.Now().UTC())
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *otpsRepo) DeactivateUserOTPs(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE user_otps SET is_active = 0 WHERE user_id = ? AND is_active = 1`, userID)
	return err
}

func (r *otpsRepo) DeleteStaleOTPs(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_otps WHERE is_active = 0 OR expires_at < ?`, time.Now().UTC())
	return err
}
