package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/caredesk/referral-ledger/docs"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/caredesk/referral-ledger/internal/repo"
	"github.com/caredesk/referral-ledger/internal/service"
	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	services := service.New(repo.New(mockDB, mockTxManager), mockTxManager)

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.ReferralHandler)
	assert.NotNil(t, h.WithdrawalHandler)
	assert.NotNil(t, h.SettingsHandler)
	assert.NotNil(t, h.EventHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockReferralHandler := NewMockReferralHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockSettingsHandler := NewMockSettingsHandler(ctrl)
	mockEventHandler := NewMockEventHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().GetMyReferrals(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().GetAllReferrals(gomock.Any(), gomock.Any()).AnyTimes()
	mockReferralHandler.EXPECT().Action(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetAll(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Action(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettingsHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockSettingsHandler.EXPECT().Update(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().AppointmentCompleted(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().WalletAudit(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		WalletHandler:     mockWalletHandler,
		ReferralHandler:   mockReferralHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		SettingsHandler:   mockSettingsHandler,
		EventHandler:      mockEventHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/wallet", http.StatusUnauthorized},
		{"POST", "/api/user/wallet/withdraw", http.StatusUnauthorized},
		{"GET", "/api/user/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/user/referrals", http.StatusUnauthorized},
		{"POST", "/api/events/appointment-completed", http.StatusUnauthorized},
		{"GET", "/api/admin/referrals", http.StatusUnauthorized},
		{"PUT", "/api/admin/referrals", http.StatusUnauthorized},
		{"GET", "/api/admin/withdrawals", http.StatusUnauthorized},
		{"PUT", "/api/admin/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/admin/referral-settings", http.StatusUnauthorized},
		{"PUT", "/api/admin/referral-settings", http.StatusUnauthorized},
		{"GET", "/api/admin/wallet-audit", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
