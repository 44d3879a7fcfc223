package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/caredesk/referral-ledger/internal/service/walletservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=withdrawalservice.go -destination=withdrawalservice_mock.go -package=withdrawalservice

type Repo interface {
	Create(ctx context.Context, withdrawal *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	FindByID(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
	FindAll(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id int, fromStatus, toStatus, adminNote string, processedAt *time.Time) (*domain.WithdrawalRequest, error)
}

type WalletService interface {
	Get(ctx context.Context, userID int) (*domain.Wallet, float64, error)
	Debit(ctx context.Context, userID int, amount float64, description string, referenceID *int) (*domain.Transaction, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.ReferralSettings, error)
}

// Withdrawal request states. pending -> approved -> processed, or
// pending -> rejected; nothing else.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusProcessed = "processed"
)

var (
	ErrReferralsDisabled    = errors.New("referral program is disabled")
	ErrBelowMinimum         = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance  = walletservice.ErrInsufficientBalance
	ErrInvalidTransition    = errors.New("invalid withdrawal state transition")
	ErrWithdrawalNotFound   = errors.New("withdrawal request not found")
	ErrMissingPayoutDetails = errors.New("missing payout details")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

type Service struct {
	repo      Repo
	wallet    WalletService
	settings  SettingsService
	txManager pg.TXManager
}

func New(repo Repo, wallet WalletService, settings SettingsService, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		wallet:    wallet,
		settings:  settings,
		txManager: txManager,
	}
}

// Create opens a pending request. The program must be enabled, and the
// amount is validated against the configured minimum and the available
// balance; no wallet mutation happens here — the amount is reserved only
// through the pending-sum subtraction.
func (s *Service) Create(ctx context.Context, userID int, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.UpiID == "" && (req.BankAccountName == "" || req.BankAccountNumber == "") {
		return nil, ErrMissingPayoutDetails
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get settings", zap.Error(err))
		return nil, err
	}
	if !settings.IsEnabled {
		return nil, ErrReferralsDisabled
	}
	if req.Amount < settings.MinWithdrawal {
		return nil, ErrBelowMinimum
	}

	_, available, err := s.wallet.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if req.Amount > available {
		return nil, ErrInsufficientBalance
	}

	req.UserID = userID
	req.Status = StatusPending
	req.CreatedAt = time.Now()

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		return nil, err
	}
	zap.L().Info("withdrawal requested",
		zap.Int("withdrawalID", created.ID),
		zap.Int("userID", userID),
		zap.Float64("amount", req.Amount))
	return created, nil
}

// Approve marks payout processing as underway. Annotation only; the wallet
// is untouched until Process.
func (s *Service) Approve(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, StatusPending, StatusApproved, adminNote, nil)
	if err != nil {
		zap.L().Error("failed to approve withdrawal", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, s.transitionError(ctx, id)
	}
	zap.L().Info("withdrawal approved", zap.Int("withdrawalID", id))
	return updated, nil
}

// Reject releases the reservation: the request leaves the pending set, so
// availableBalance returns to its pre-request value. The balance itself was
// never debited, so no ledger entry is written.
func (s *Service) Reject(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error) {
	updated, err := s.repo.UpdateStatus(ctx, id, StatusPending, StatusRejected, adminNote, nil)
	if err != nil {
		zap.L().Error("failed to reject withdrawal", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, s.transitionError(ctx, id)
	}
	zap.L().Info("withdrawal rejected", zap.Int("withdrawalID", id))
	return updated, nil
}

// Process settles an approved request: the status flip and the wallet debit
// commit together, and the debit re-checks the balance defensively.
func (s *Service) Process(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error) {
	var updated *domain.WithdrawalRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := time.Now()
		var err error
		updated, err = s.repo.UpdateStatus(ctx, id, StatusApproved, StatusProcessed, adminNote, &now)
		if err != nil {
			return err
		}
		if updated == nil {
			return s.transitionError(ctx, id)
		}
		if _, err := s.wallet.Debit(ctx, updated.UserID, updated.Amount, "Withdrawal payout", &updated.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrWithdrawalNotFound) && !errors.Is(err, ErrInvalidTransition) {
			zap.L().Error("failed to process withdrawal", zap.Int("withdrawalID", id), zap.Error(err))
		}
		return nil, err
	}
	zap.L().Info("withdrawal processed",
		zap.Int("withdrawalID", id),
		zap.Float64("amount", updated.Amount))
	return updated, nil
}

// transitionError distinguishes an unknown id from a request that is not in
// the state the transition requires.
func (s *Service) transitionError(ctx context.Context, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrWithdrawalNotFound
	}
	return ErrInvalidTransition
}

func (s *Service) List(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) ListAll(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	withdrawals, err := s.repo.FindAll(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
