package service

import (
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/caredesk/referral-ledger/internal/repo"
	"github.com/caredesk/referral-ledger/internal/service/appointmentservice"
	"github.com/caredesk/referral-ledger/internal/service/authservice"
	"github.com/caredesk/referral-ledger/internal/service/referralservice"
	"github.com/caredesk/referral-ledger/internal/service/settingsservice"
	"github.com/caredesk/referral-ledger/internal/service/walletservice"
	"github.com/caredesk/referral-ledger/internal/service/withdrawalservice"
	pkgauth "github.com/caredesk/referral-ledger/pkg/auth"
)

type Services struct {
	AuthService        *authservice.Service
	SettingsService    *settingsservice.Service
	WalletService      *walletservice.Service
	ReferralService    *referralservice.Service
	WithdrawalService  *withdrawalservice.Service
	AppointmentService *appointmentservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	settingsService := settingsservice.New(repo.SettingsRepo)
	walletService := walletservice.New(repo.WalletRepo, repo.WithdrawalRepo)
	referralService := referralservice.New(repo.UserRepo, repo.ReferralRepo, repo.AppointmentRepo, settingsService, walletService, txManager)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, walletService, settingsService, txManager)
	appointmentService := appointmentservice.New(repo.AppointmentRepo, referralService)
	authService := authservice.New(repo.UserRepo, walletService, referralService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		SettingsService:    settingsService,
		WalletService:      walletService,
		ReferralService:    referralService,
		WithdrawalService:  withdrawalService,
		AppointmentService: appointmentService,
	}
}
