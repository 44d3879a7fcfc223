package walletrepo

import (
	"context"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Transaction types recorded in the ledger.
const (
	TxTypeCredit     = "credit"
	TxTypeWithdrawal = "withdrawal"
	TxTypeRefund     = "refund"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, total_earned, total_withdrawn
        FROM wallets
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.TotalEarned, &wallet.TotalWithdrawn)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, total_earned, total_withdrawn)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, balance, total_earned, total_withdrawn
    `
	row := r.db.QueryRow(ctx, query, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.TotalEarned, &wallet.TotalWithdrawn)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, total_earned, total_withdrawn
        FROM wallets
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list wallets", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		var wallet domain.Wallet
		err := rows.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.TotalEarned, &wallet.TotalWithdrawn)
		if err != nil {
			zap.L().Error("failed to scan wallet row", zap.Error(err))
			return nil, err
		}
		wallets = append(wallets, wallet)
	}
	return wallets, nil
}

// Credit increments balance and total_earned and appends the matching
// transaction row; the two writes commit or roll back together.
func (r *Repository) Credit(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	walletQuery := `
		UPDATE wallets
		SET balance = balance + $1, total_earned = total_earned + $1
		WHERE id = $2
	`
	tx := &domain.Transaction{
		WalletID:    walletID,
		Type:        TxTypeCredit,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, walletQuery, amount, walletID); err != nil {
			zap.L().Error("failed to credit wallet", zap.Error(err))
			return err
		}
		return r.insertTransaction(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// Debit decrements the balance, guarded by balance >= amount in the same
// statement. Returns nil, nil when the guard rejects the update.
func (r *Repository) Debit(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	walletQuery := `
		UPDATE wallets
		SET balance = balance - $1, total_withdrawn = total_withdrawn + $1
		WHERE id = $2 AND balance >= $1
		RETURNING id
	`
	tx := &domain.Transaction{
		WalletID:    walletID,
		Type:        TxTypeWithdrawal,
		Amount:      -amount,
		Description: description,
		ReferenceID: referenceID,
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var id int
		err := r.db.QueryRow(ctx, walletQuery, amount, walletID).Scan(&id)
		if err == pgx.ErrNoRows {
			return nil
		}
		if err != nil {
			zap.L().Error("failed to debit wallet", zap.Error(err))
			return err
		}
		applied = true
		return r.insertTransaction(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, nil
	}
	return tx, nil
}

// Refund credits the balance back without touching lifetime totals.
func (r *Repository) Refund(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	walletQuery := `
		UPDATE wallets
		SET balance = balance + $1
		WHERE id = $2
	`
	tx := &domain.Transaction{
		WalletID:    walletID,
		Type:        TxTypeRefund,
		Amount:      amount,
		Description: description,
		ReferenceID: referenceID,
		Status:      "completed",
		CreatedAt:   time.Now(),
	}
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, walletQuery, amount, walletID); err != nil {
			zap.L().Error("failed to refund wallet", zap.Error(err))
			return err
		}
		return r.insertTransaction(ctx, tx)
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *Repository) insertTransaction(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (wallet_id, type, amount, description, reference_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		tx.WalletID, tx.Type, tx.Amount, tx.Description, tx.ReferenceID, tx.Status, tx.CreatedAt).
		Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetTransactions(ctx context.Context, walletID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, wallet_id, type, amount, description, reference_id, status, created_at
        FROM transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.WalletID, &tx.Type, &tx.Amount, &tx.Description, &tx.ReferenceID, &tx.Status, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r *Repository) SumTransactions(ctx context.Context, walletID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE wallet_id = $1
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
