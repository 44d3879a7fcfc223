package withdrawalservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWalletService, *MockSettingsService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	wallet := NewMockWalletService(ctrl)
	settings := NewMockSettingsService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, wallet, settings, txManager)
	defer ctrl.Finish()
	return service, repo, wallet, settings, txManager
}

func activeSettings() *domain.ReferralSettings {
	return &domain.ReferralSettings{ID: "default", MinWithdrawal: 100, IsEnabled: true}
}

func TestCreate(t *testing.T) {
	service, repo, wallet, settings, _ := NewMock(t)
	tests := []struct {
		name          string
		req           *domain.WithdrawalRequest
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful request",
			req:  &domain.WithdrawalRequest{Amount: 150, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).Return(activeSettings(), nil)
				wallet.EXPECT().Get(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, Balance: 200}, 200.0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, wd *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
						assert.Equal(t, 1, wd.UserID)
						assert.Equal(t, StatusPending, wd.Status)
						wd.ID = 5
						return wd, nil
					})
			},
		},
		{
			name:          "Zero amount",
			req:           &domain.WithdrawalRequest{Amount: 0, UpiID: "ravi@upi"},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "No payout details",
			req:           &domain.WithdrawalRequest{Amount: 150},
			expectedError: ErrMissingPayoutDetails,
		},
		{
			name: "Program disabled rejects the request",
			req:  &domain.WithdrawalRequest{Amount: 150, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).
					Return(&domain.ReferralSettings{ID: "default", MinWithdrawal: 100, IsEnabled: false}, nil)
			},
			expectedError: ErrReferralsDisabled,
		},
		{
			name: "Below the configured minimum",
			req:  &domain.WithdrawalRequest{Amount: 50, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).Return(activeSettings(), nil)
			},
			expectedError: ErrBelowMinimum,
		},
		{
			name: "Exceeds the available balance",
			req:  &domain.WithdrawalRequest{Amount: 150, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).Return(activeSettings(), nil)
				wallet.EXPECT().Get(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, Balance: 200}, 100.0, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Pending reservation shrinks the available balance",
			req:  &domain.WithdrawalRequest{Amount: 120, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).Return(activeSettings(), nil)
				wallet.EXPECT().Get(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, Balance: 200}, 80.0, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name: "Error persisting the request",
			req:  &domain.WithdrawalRequest{Amount: 150, UpiID: "ravi@upi"},
			prepareMock: func() {
				settings.EXPECT().Get(gomock.Any()).Return(activeSettings(), nil)
				wallet.EXPECT().Get(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, Balance: 200}, 200.0, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.Create(context.Background(), 1, tt.req)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusPending, created.Status)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful approval",
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusPending, StatusApproved, "ok", nil).
					Return(&domain.WithdrawalRequest{ID: 5, Status: StatusApproved}, nil)
			},
		},
		{
			name: "Unknown request",
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusPending, StatusApproved, "ok", nil).
					Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), 5).Return(nil, nil)
			},
			expectedError: ErrWithdrawalNotFound,
		},
		{
			name: "Request not pending",
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusPending, StatusApproved, "ok", nil).
					Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.WithdrawalRequest{ID: 5, Status: StatusRejected}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			updated, err := service.Approve(context.Background(), 5, "ok")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusApproved, updated.Status)
			}
		})
	}
}

func TestReject(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Reject releases the reservation without touching the wallet",
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusPending, StatusRejected, "no", nil).
					Return(&domain.WithdrawalRequest{ID: 5, Status: StatusRejected}, nil)
			},
		},
		{
			name: "Already processed",
			prepareMock: func() {
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusPending, StatusRejected, "no", nil).
					Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.WithdrawalRequest{ID: 5, Status: StatusProcessed}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			updated, err := service.Reject(context.Background(), 5, "no")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusRejected, updated.Status)
			}
		})
	}
}

func TestProcess(t *testing.T) {
	service, repo, wallet, _, txManager := NewMock(t)
	passThrough := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
	approved := &domain.WithdrawalRequest{ID: 5, UserID: 1, Amount: 150, Status: StatusApproved}
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Processing debits the wallet in the same transaction",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusApproved, StatusProcessed, "paid", gomock.Any()).
					DoAndReturn(func(_ context.Context, id int, from, to, note string, processedAt *time.Time) (*domain.WithdrawalRequest, error) {
						processed := *approved
						processed.Status = StatusProcessed
						processed.ProcessedAt = processedAt
						return &processed, nil
					})
				wallet.EXPECT().Debit(gomock.Any(), 1, 150.0, "Withdrawal payout", gomock.Any()).
					Return(&domain.Transaction{ID: 12, Amount: -150}, nil)
			},
		},
		{
			name: "Only an approved request can be processed",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusApproved, StatusProcessed, "paid", gomock.Any()).
					Return(nil, nil)
				repo.EXPECT().FindByID(gomock.Any(), 5).
					Return(&domain.WithdrawalRequest{ID: 5, Status: StatusPending}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Debit failure rolls everything back",
			prepareMock: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(passThrough)
				repo.EXPECT().UpdateStatus(gomock.Any(), 5, StatusApproved, StatusProcessed, "paid", gomock.Any()).
					DoAndReturn(func(_ context.Context, id int, from, to, note string, processedAt *time.Time) (*domain.WithdrawalRequest, error) {
						processed := *approved
						processed.Status = StatusProcessed
						return &processed, nil
					})
				wallet.EXPECT().Debit(gomock.Any(), 1, 150.0, "Withdrawal payout", gomock.Any()).
					Return(nil, ErrInsufficientBalance)
			},
			expectedError: ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			updated, err := service.Process(context.Background(), 5, "paid")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusProcessed, updated.Status)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name: "Returns user withdrawals",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.WithdrawalRequest{
					{ID: 5, UserID: 1, Amount: 150, Status: StatusPending},
				}, nil)
			},
			expectedLen: 1,
		},
		{
			name: "Error fetching withdrawals",
			prepareMock: func() {
				repo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			withdrawals, err := service.List(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Len(t, withdrawals, tt.expectedLen)
			}
		})
	}
}

func TestListAll(t *testing.T) {
	service, repo, _, _, _ := NewMock(t)
	repo.EXPECT().FindAll(gomock.Any(), StatusPending).Return([]domain.WithdrawalRequest{
		{ID: 5, Status: StatusPending},
		{ID: 6, Status: StatusPending},
	}, nil)

	withdrawals, err := service.ListAll(context.Background(), StatusPending)
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 2)
}
