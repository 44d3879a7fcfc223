package referralrepo

import (
	"context"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error) {
	query := `
		INSERT INTO referrals (referrer_id, referee_id, referral_type, status, reward_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		referral.ReferrerID, referral.RefereeID, referral.ReferralType, referral.Status, referral.RewardAmount, referral.CreatedAt).
		Scan(&referral.ID)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return nil, err
	}
	return referral, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_type, status, reward_amount, created_at, credited_at
        FROM referrals
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var referral domain.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerID, &referral.RefereeID, &referral.ReferralType,
		&referral.Status, &referral.RewardAmount, &referral.CreatedAt, &referral.CreditedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) FindPendingByReferee(ctx context.Context, refereeID int) (*domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_type, status, reward_amount, created_at, credited_at
        FROM referrals
        WHERE referee_id = $1 AND status = 'pending'
    `
	row := r.db.QueryRow(ctx, query, refereeID)

	var referral domain.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerID, &referral.RefereeID, &referral.ReferralType,
		&referral.Status, &referral.RewardAmount, &referral.CreatedAt, &referral.CreditedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find pending referral", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_type, status, reward_amount, created_at, credited_at
        FROM referrals
        WHERE referrer_id = $1
        ORDER BY created_at DESC
    `
	return r.scanMany(ctx, query, referrerID)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Referral, error) {
	query := `
        SELECT id, referrer_id, referee_id, referral_type, status, reward_amount, created_at, credited_at
        FROM referrals
        ORDER BY created_at DESC
    `
	return r.scanMany(ctx, query)
}

// MarkCredited flips pending -> credited and stamps the reward, but only if
// the row is still pending. Returns nil when another caller won the race.
func (r *Repository) MarkCredited(ctx context.Context, id int, rewardAmount float64, creditedAt time.Time) (*domain.Referral, error) {
	query := `
		UPDATE referrals
		SET status = 'credited', reward_amount = $1, credited_at = $2
		WHERE id = $3 AND status = 'pending'
		RETURNING id, referrer_id, referee_id, referral_type, status, reward_amount, created_at, credited_at
	`
	row := r.db.QueryRow(ctx, query, rewardAmount, creditedAt, id)

	var referral domain.Referral
	err := row.Scan(&referral.ID, &referral.ReferrerID, &referral.RefereeID, &referral.ReferralType,
		&referral.Status, &referral.RewardAmount, &referral.CreatedAt, &referral.CreditedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't mark referral credited", zap.Error(err))
		return nil, err
	}
	return &referral, nil
}

func (r *Repository) scanMany(ctx context.Context, query string, args ...any) ([]domain.Referral, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get referrals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var referral domain.Referral
		err := rows.Scan(&referral.ID, &referral.ReferrerID, &referral.RefereeID, &referral.ReferralType,
			&referral.Status, &referral.RewardAmount, &referral.CreatedAt, &referral.CreditedAt)
		if err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, referral)
	}
	return referrals, nil
}
