package walletservice

import (
	"context"
	"errors"
	"sync"

	"github.com/caredesk/referral-ledger/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

type Repo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	FindAll(ctx context.Context) ([]domain.Wallet, error)
	Credit(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error)
	Debit(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error)
	Refund(ctx context.Context, walletID int, amount float64, description string, referenceID *int) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, walletID int) ([]domain.Transaction, error)
	SumTransactions(ctx context.Context, walletID int) (float64, error)
}

// WithdrawalRepo supplies the pending reservations subtracted from the
// balance to derive availableBalance.
type WithdrawalRepo interface {
	SumPendingByUserID(ctx context.Context, userID int) (float64, error)
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

const auditConcurrency = 8

type Service struct {
	repo           Repo
	withdrawalRepo WithdrawalRepo
}

func New(repo Repo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		repo:           repo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *Service) GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet, err = s.repo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Get returns the wallet together with its available balance: the stored
// balance minus the sum of the user's pending withdrawal requests. The
// available balance is derived on every read, never stored.
func (s *Service) Get(ctx context.Context, userID int) (*domain.Wallet, float64, error) {
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	pending, err := s.withdrawalRepo.SumPendingByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to sum pending withdrawals", zap.Error(err))
		return nil, 0, err
	}
	return wallet, wallet.Balance - pending, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	tx, err := s.repo.Credit(ctx, wallet.ID, amount, description, referenceID)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	zap.L().Info("wallet credited", zap.Int("userID", userID), zap.Float64("amount", amount))
	return tx, nil
}

func (s *Service) Debit(ctx context.Context, userID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	tx, err := s.repo.Debit(ctx, wallet.ID, amount, description, referenceID)
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	if tx == nil {
		return nil, ErrInsufficientBalance
	}
	zap.L().Info("wallet debited", zap.Int("userID", userID), zap.Float64("amount", amount))
	return tx, nil
}

func (s *Service) Refund(ctx context.Context, userID int, amount float64, description string, referenceID *int) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	tx, err := s.repo.Refund(ctx, wallet.ID, amount, description, referenceID)
	if err != nil {
		zap.L().Error("failed to refund wallet", zap.Error(err))
		return nil, err
	}
	zap.L().Info("wallet refunded", zap.Int("userID", userID), zap.Float64("amount", amount))
	return tx, nil
}

func (s *Service) Transactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	transactions, err := s.repo.GetTransactions(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Audit checks every wallet against the sum of its transactions and returns
// the ids of wallets whose stored balance has drifted from the ledger.
func (s *Service) Audit(ctx context.Context) (int, []int, error) {
	wallets, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to list wallets for audit", zap.Error(err))
		return 0, nil, err
	}

	var (
		mu         sync.Mutex
		mismatched []int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(auditConcurrency)
	for _, wallet := range wallets {
		wallet := wallet
		g.Go(func() error {
			sum, err := s.repo.SumTransactions(ctx, wallet.ID)
			if err != nil {
				return err
			}
			if sum != wallet.Balance {
				zap.L().Error("wallet balance does not match its ledger",
					zap.Int("walletID", wallet.ID),
					zap.Float64("balance", wallet.Balance),
					zap.Float64("ledgerSum", sum))
				mu.Lock()
				mismatched = append(mismatched, wallet.ID)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	return len(wallets), mismatched, nil
}
