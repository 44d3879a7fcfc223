package handlers

import (
	"net/http"

	_ "github.com/caredesk/referral-ledger/docs"
	authhandlers "github.com/caredesk/referral-ledger/internal/handlers/auth"
	eventshandlers "github.com/caredesk/referral-ledger/internal/handlers/events"
	referralshandlers "github.com/caredesk/referral-ledger/internal/handlers/referrals"
	settingshandlers "github.com/caredesk/referral-ledger/internal/handlers/settings"
	wallethandlers "github.com/caredesk/referral-ledger/internal/handlers/wallet"
	withdrawalshandlers "github.com/caredesk/referral-ledger/internal/handlers/withdrawals"
	"github.com/caredesk/referral-ledger/internal/service"
	"github.com/caredesk/referral-ledger/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	GetMyReferrals(w http.ResponseWriter, r *http.Request)
	GetAllReferrals(w http.ResponseWriter, r *http.Request)
	Action(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	Action(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	AppointmentCompleted(w http.ResponseWriter, r *http.Request)
	WalletAudit(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WalletHandler     WalletHandler
	ReferralHandler   ReferralHandler
	WithdrawalHandler WithdrawalHandler
	SettingsHandler   SettingsHandler
	EventHandler      EventHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WalletHandler:     wallethandlers.New(s.WalletService, s.WithdrawalService),
		ReferralHandler:   referralshandlers.New(s.ReferralService),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
		SettingsHandler:   settingshandlers.New(s.SettingsService),
		EventHandler:      eventshandlers.New(s.AppointmentService, s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/wallet", func(r chi.Router) {
					r.Get("/", h.WalletHandler.GetWallet)
					r.Post("/withdraw", h.WalletHandler.Withdraw)
				})
				r.Get("/withdrawals", h.WalletHandler.GetWithdrawals)
				r.Get("/referrals", h.ReferralHandler.GetMyReferrals)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/events/appointment-completed", h.EventHandler.AppointmentCompleted)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ReferralHandler.GetAllReferrals)
				r.Put("/", h.ReferralHandler.Action)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.WithdrawalHandler.GetAll)
				r.Put("/", h.WithdrawalHandler.Action)
			})
			r.Route("/referral-settings", func(r chi.Router) {
				r.Get("/", h.SettingsHandler.Get)
				r.Put("/", h.SettingsHandler.Update)
			})
			r.Get("/wallet-audit", h.EventHandler.WalletAudit)
		})
	})

	return r
}
