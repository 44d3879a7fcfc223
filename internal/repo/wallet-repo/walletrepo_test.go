package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Valid userID returns wallet",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "balance", "total_earned", "total_withdrawn"}).
					AddRow(10, 1, 150.0, 200.0, 50.0)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, balance, total_earned, total_withdrawn
        FROM wallets
        WHERE user_id = $1
    `)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: &domain.Wallet{ID: 10, UserID: 1, Balance: 150.0, TotalEarned: 200.0, TotalWithdrawn: 50.0},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, balance, total_earned, total_withdrawn
        FROM wallets
        WHERE user_id = $1
    `)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, user_id, balance, total_earned, total_withdrawn
        FROM wallets
        WHERE user_id = $1
    `)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Successfully creates wallet",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO wallets (user_id, balance, total_earned, total_withdrawn)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, balance, total_earned, total_withdrawn`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "balance", "total_earned", "total_withdrawn"}).
						AddRow(10, 1, 0.0, 0.0, 0.0))
			},
			result: &domain.Wallet{ID: 10, UserID: 1},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO wallets (user_id, balance, total_earned, total_withdrawn)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, balance, total_earned, total_withdrawn`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	refID := 3

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Wallet update and transaction insert commit together",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance + $1, total_earned = total_earned + $1
		WHERE id = $2
	`)).
						WithArgs(50.0, 10).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO transactions (wallet_id, type, amount, description, reference_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`)).
						WithArgs(10, TxTypeCredit, 50.0, "Referral reward", &refID, "completed", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
					return fn(ctx)
				})
			},
		},
		{
			name: "Wallet update error aborts the transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance + $1, total_earned = total_earned + $1
		WHERE id = $2
	`)).
						WithArgs(50.0, 10).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Credit(context.Background(), 10, 50.0, "Referral reward", &refID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
				assert.Equal(t, 50.0, result.Amount)
				assert.Equal(t, TxTypeCredit, result.Type)
			}
		})
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock, tx := NewMock(t)
	refID := 5

	tests := []struct {
		name        string
		mockSetup   func()
		expectErr   bool
		expectApply bool
	}{
		{
			name: "Guarded debit applies and records a negative amount",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance - $1, total_withdrawn = total_withdrawn + $1
		WHERE id = $2 AND balance >= $1
		RETURNING id
	`)).
						WithArgs(100.0, 10).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
					mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO transactions (wallet_id, type, amount, description, reference_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`)).
						WithArgs(10, TxTypeWithdrawal, -100.0, "Withdrawal payout", &refID, "completed", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(8))
					return fn(ctx)
				})
			},
			expectApply: true,
		},
		{
			name: "Balance guard rejects, no transaction row written",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance - $1, total_withdrawn = total_withdrawn + $1
		WHERE id = $2 AND balance >= $1
		RETURNING id
	`)).
						WithArgs(100.0, 10).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectQuery(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance - $1, total_withdrawn = total_withdrawn + $1
		WHERE id = $2 AND balance >= $1
		RETURNING id
	`)).
						WithArgs(100.0, 10).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Debit(context.Background(), 10, 100.0, "Withdrawal payout", &refID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			if tt.expectApply {
				assert.NotNil(t, result)
				assert.Equal(t, -100.0, result.Amount)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_Refund(t *testing.T) {
	repo, mock, tx := NewMock(t)
	refID := 5

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Refund touches the balance only, lifetime totals stay put",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance + $1
		WHERE id = $2
	`)).
						WithArgs(100.0, 10).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO transactions (wallet_id, type, amount, description, reference_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`)).
						WithArgs(10, TxTypeRefund, 100.0, "Withdrawal correction", &refID, "completed", pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))
					return fn(ctx)
				})
			},
		},
		{
			name: "Wallet update error aborts the transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE wallets
		SET balance = balance + $1
		WHERE id = $2
	`)).
						WithArgs(100.0, 10).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Refund(context.Background(), 10, 100.0, "Withdrawal correction", &refID)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, result.ID)
				assert.Equal(t, 100.0, result.Amount)
				assert.Equal(t, TxTypeRefund, result.Type)
			}
		})
	}
}

func TestRepository_SumTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  float64
	}{
		{
			name: "Sums the ledger",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE wallet_id = $1
    `)).
					WithArgs(10).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(150.0))
			},
			expected: 150.0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE wallet_id = $1
    `)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			sum, err := repo.SumTransactions(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, sum)
			}
		})
	}
}

func TestRepository_GetTransactions(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  int
	}{
		{
			name: "Returns transaction history",
			mockSetup: func() {
				now := time.Now()
				rows := pgxmock.NewRows([]string{"id", "wallet_id", "type", "amount", "description", "reference_id", "status", "created_at"}).
					AddRow(7, 10, TxTypeCredit, 50.0, "Referral reward", nil, "completed", now).
					AddRow(8, 10, TxTypeWithdrawal, -100.0, "Withdrawal payout", nil, "completed", now)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wallet_id, type, amount, description, reference_id, status, created_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `)).
					WithArgs(10).
					WillReturnRows(rows)
			},
			expected: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, wallet_id, type, amount, description, reference_id, status, created_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `)).
					WithArgs(10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			transactions, err := repo.GetTransactions(context.Background(), 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, transactions, tt.expected)
			}
		})
	}
}
