package userrepo

import (
	"context"

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

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, full_name, role, COALESCE(referral_code, ''), referred_by
		FROM users
		WHERE login = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.FullName, &user.Role, &user.ReferralCode, &user.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, full_name, role, COALESCE(referral_code, ''), referred_by
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.FullName, &user.Role, &user.ReferralCode, &user.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
		SELECT id, login, password_hash, full_name, role, COALESCE(referral_code, ''), referred_by
		FROM users
		WHERE referral_code = $1
	`
	var user domain.User
	err := repo.db.QueryRow(ctx, query, code).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.FullName, &user.Role, &user.ReferralCode, &user.ReferredBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by referral code", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, full_name, role, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.FullName, user.Role, user.ReferredBy).
		Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetReferralCode fills the code only when it is still unset, so the issuer
// stays idempotent per user.
func (repo *Repository) SetReferralCode(ctx context.Context, userID int, code string) error {
	query := `
		UPDATE users
		SET referral_code = $1
		WHERE id = $2 AND referral_code IS NULL
	`
	_, err := repo.db.Exec(ctx, query, code, userID)
	if err != nil {
		zap.L().Error("can't set referral code", zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) SetReferredBy(ctx context.Context, userID, referrerID int) error {
	query := `
		UPDATE users
		SET referred_by = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, referrerID, userID)
	if err != nil {
		zap.L().Error("can't set referred_by", zap.Error(err))
		return err
	}
	return nil
}
