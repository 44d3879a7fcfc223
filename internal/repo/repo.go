package repo

import (
	"github.com/caredesk/referral-ledger/internal/pg"
	appointmentrepo "github.com/caredesk/referral-ledger/internal/repo/appointment-repo"
	referralrepo "github.com/caredesk/referral-ledger/internal/repo/referral-repo"
	settingsrepo "github.com/caredesk/referral-ledger/internal/repo/settings-repo"
	userrepo "github.com/caredesk/referral-ledger/internal/repo/user-repo"
	walletrepo "github.com/caredesk/referral-ledger/internal/repo/wallet-repo"
	withdrawalrepo "github.com/caredesk/referral-ledger/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	SettingsRepo    *settingsrepo.Repository
	ReferralRepo    *referralrepo.Repository
	WalletRepo      *walletrepo.Repository
	WithdrawalRepo  *withdrawalrepo.Repository
	AppointmentRepo *appointmentrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
		WithdrawalRepo:  withdrawalrepo.New(conn),
		AppointmentRepo: appointmentrepo.New(conn),
	}
}
