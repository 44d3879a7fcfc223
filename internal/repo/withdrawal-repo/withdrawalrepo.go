package withdrawalrepo

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

const selectColumns = `id, user_id, amount, upi_id, bank_account_name, bank_account_number, bank_ifsc, status, admin_note, created_at, processed_at`

func (r *Repository) Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (user_id, amount, upi_id, bank_account_name, bank_account_number, bank_ifsc, status, admin_note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		withdrawal.UserID, withdrawal.Amount, withdrawal.UpiID, withdrawal.BankAccountName,
		withdrawal.BankAccountNumber, withdrawal.BankIFSC, withdrawal.Status, withdrawal.AdminNote, withdrawal.CreatedAt).
		Scan(&withdrawal.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return withdrawal, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + selectColumns + `
        FROM withdrawal_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var wd domain.WithdrawalRequest
	err := scanWithdrawal(row, &wd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + selectColumns + `
        FROM withdrawal_requests
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	return r.scanMany(ctx, query, userID)
}

func (r *Repository) FindAll(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	if status != "" {
		query := `
			SELECT ` + selectColumns + `
			FROM withdrawal_requests
			WHERE status = $1
			ORDER BY created_at DESC
		`
		return r.scanMany(ctx, query, status)
	}
	query := `
        SELECT ` + selectColumns + `
        FROM withdrawal_requests
        ORDER BY created_at DESC
    `
	return r.scanMany(ctx, query)
}

// SumPendingByUserID is the amount currently reserved by open requests;
// availableBalance = wallet.balance - this sum.
func (r *Repository) SumPendingByUserID(ctx context.Context, userID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM withdrawal_requests
        WHERE user_id = $1 AND status = 'pending'
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum pending withdrawals", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// UpdateStatus transitions fromStatus -> toStatus atomically; the WHERE
// clause makes concurrent admin actions race-safe. Returns nil when the
// request is no longer in fromStatus.
func (r *Repository) UpdateStatus(ctx context.Context, id int, fromStatus, toStatus, adminNote string, processedAt *time.Time) (*domain.WithdrawalRequest, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $1, admin_note = $2, processed_at = COALESCE($3, processed_at)
		WHERE id = $4 AND status = $5
		RETURNING ` + selectColumns + `
	`
	row := r.db.QueryRow(ctx, query, toStatus, adminNote, processedAt, id, fromStatus)

	var wd domain.WithdrawalRequest
	err := scanWithdrawal(row, &wd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return nil, err
	}
	return &wd, nil
}

func (r *Repository) scanMany(ctx context.Context, query string, args ...any) ([]domain.WithdrawalRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.WithdrawalRequest
	for rows.Next() {
		var wd domain.WithdrawalRequest
		if err := scanWithdrawal(rows, &wd); err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, wd)
	}
	return withdrawals, nil
}

func scanWithdrawal(row pgx.Row, wd *domain.WithdrawalRequest) error {
	return row.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.UpiID, &wd.BankAccountName,
		&wd.BankAccountNumber, &wd.BankIFSC, &wd.Status, &wd.AdminNote, &wd.CreatedAt, &wd.ProcessedAt)
}
