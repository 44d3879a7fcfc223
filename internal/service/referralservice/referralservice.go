package referralservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=referralservice.go -destination=referralservice_mock.go -package=referralservice

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetReferralCode(ctx context.Context, userID int, code string) error
	SetReferredBy(ctx context.Context, userID, referrerID int) error
}

type Repo interface {
	Create(ctx context.Context, referral *domain.Referral) (*domain.Referral, error)
	FindByID(ctx context.Context, id int) (*domain.Referral, error)
	FindPendingByReferee(ctx context.Context, refereeID int) (*domain.Referral, error)
	FindByReferrerID(ctx context.Context, referrerID int) ([]domain.Referral, error)
	FindAll(ctx context.Context) ([]domain.Referral, error)
	MarkCredited(ctx context.Context, id int, rewardAmount float64, creditedAt time.Time) (*domain.Referral, error)
}

type AppointmentRepo interface {
	CountByPatient(ctx context.Context, patientID int) (int, error)
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.ReferralSettings, error)
}

type WalletService interface {
	Credit(ctx context.Context, userID int, amount float64, description string, referenceID *int) (*domain.Transaction, error)
}

// Referral types and statuses.
const (
	TypePatientToPatient = "patient_to_patient"
	TypeDoctorToDoctor   = "doctor_to_doctor"
	TypeDoctorToPatient  = "doctor_to_patient"

	StatusPending  = "pending"
	StatusCredited = "credited"
)

var (
	ErrReferralNotFound = errors.New("referral not found")
	ErrAlreadyCredited  = errors.New("referral already credited")
)

type Service struct {
	userRepo        UserRepo
	repo            Repo
	appointmentRepo AppointmentRepo
	settings        SettingsService
	wallet          WalletService
	txManager       pg.TXManager
}

func New(userRepo UserRepo, repo Repo, appointmentRepo AppointmentRepo, settings SettingsService, wallet WalletService, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		repo:            repo,
		appointmentRepo: appointmentRepo,
		settings:        settings,
		wallet:          wallet,
		txManager:       txManager,
	}
}

// GenerateCode derives a shareable code from the first four characters of
// the name (uppercased, non-letters replaced with X, padded to four) plus
// the first four digits of the user id (zero-padded). Deterministic; no
// collision detection is attempted.
func GenerateCode(name string, userID int) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if b.Len() == 4 {
			break
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		} else {
			b.WriteByte('X')
		}
	}
	for b.Len() < 4 {
		b.WriteByte('X')
	}

	id := strconv.Itoa(userID)
	if len(id) > 4 {
		id = id[:4]
	}
	for len(id) < 4 {
		id = "0" + id
	}
	return b.String() + id
}

// IssueCode returns the user's referral code, generating and persisting one
// on first request. Idempotent per user.
func (s *Service) IssueCode(ctx context.Context, userID int) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("user %d not found", userID)
	}
	if user.ReferralCode != "" {
		return user.ReferralCode, nil
	}

	code := GenerateCode(user.FullName, user.ID)
	if err := s.userRepo.SetReferralCode(ctx, userID, code); err != nil {
		return "", err
	}
	return code, nil
}

// classify maps the two parties' roles to a referral type. A patient
// referring a doctor intentionally falls through to patient_to_patient;
// this asymmetry matches the portal's established behavior.
func classify(referrerRole, refereeRole string) string {
	if referrerRole == domain.RoleDoctor && refereeRole == domain.RoleDoctor {
		return TypeDoctorToDoctor
	}
	if referrerRole == domain.RoleDoctor && refereeRole == domain.RolePatient {
		return TypeDoctorToPatient
	}
	return TypePatientToPatient
}

// Bind resolves an inbound referral code at registration and opens a
// pending referral. Missing or unknown codes, self-referrals and a disabled
// program are all silent no-ops, never errors.
func (s *Service) Bind(ctx context.Context, referralCode string, refereeID int, refereeRole string) (*domain.Referral, error) {
	if referralCode == "" {
		return nil, nil
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.IsEnabled {
		zap.L().Info("referral program disabled, skipping bind", zap.Int("refereeID", refereeID))
		return nil, nil
	}

	referrer, err := s.userRepo.FindByReferralCode(ctx, referralCode)
	if err != nil {
		return nil, err
	}
	if referrer == nil || referrer.ID == refereeID {
		return nil, nil
	}

	if err := s.userRepo.SetReferredBy(ctx, refereeID, referrer.ID); err != nil {
		return nil, err
	}

	referral := &domain.Referral{
		ReferrerID:   referrer.ID,
		RefereeID:    refereeID,
		ReferralType: classify(referrer.Role, refereeRole),
		Status:       StatusPending,
		RewardAmount: 0,
		CreatedAt:    time.Now(),
	}
	created, err := s.repo.Create(ctx, referral)
	if err != nil {
		zap.L().Error("can't create referral", zap.Error(err))
		return nil, err
	}
	zap.L().Info("referral bound",
		zap.Int("referrerID", referrer.ID),
		zap.Int("refereeID", refereeID),
		zap.String("type", referral.ReferralType))
	return created, nil
}

func rewardFor(settings *domain.ReferralSettings, referralType string) float64 {
	switch referralType {
	case TypeDoctorToDoctor:
		return settings.DoctorToDoctorReward
	case TypeDoctorToPatient:
		return settings.DoctorToPatientReward
	default:
		return settings.PatientToPatientReward
	}
}

// Credit is the single reward path shared by the appointment trigger and
// the admin action. The pending -> credited flip and the wallet credit
// commit in one transaction; a lost status race leaves the wallet untouched.
func (s *Service) Credit(ctx context.Context, referralID int) (*domain.Referral, error) {
	referral, err := s.repo.FindByID(ctx, referralID)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, ErrReferralNotFound
	}
	if referral.Status != StatusPending {
		return nil, ErrAlreadyCredited
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	amount := rewardFor(settings, referral.ReferralType)

	var credited *domain.Referral
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		credited, err = s.repo.MarkCredited(ctx, referralID, amount, time.Now())
		if err != nil {
			return err
		}
		if credited == nil {
			return ErrAlreadyCredited
		}
		if _, err := s.wallet.Credit(ctx, credited.ReferrerID, amount, "Referral reward", &credited.ID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyCredited) {
			zap.L().Error("can't credit referral", zap.Int("referralID", referralID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("referral credited",
		zap.Int("referralID", credited.ID),
		zap.Int("referrerID", credited.ReferrerID),
		zap.Float64("amount", amount))
	return credited, nil
}

// OnQualifyingEvent credits the referee's referrer when this is the
// referee's first completed appointment. Every guard aborts silently; the
// caller treats any returned error as log-and-continue.
func (s *Service) OnQualifyingEvent(ctx context.Context, refereeID int) error {
	count, err := s.appointmentRepo.CountByPatient(ctx, refereeID)
	if err != nil {
		return err
	}
	if count != 1 {
		return nil
	}

	referee, err := s.userRepo.FindByID(ctx, refereeID)
	if err != nil {
		return err
	}
	if referee == nil || referee.ReferredBy == nil {
		return nil
	}

	referral, err := s.repo.FindPendingByReferee(ctx, refereeID)
	if err != nil {
		return err
	}
	if referral == nil || referral.ReferrerID != *referee.ReferredBy {
		return nil
	}

	if _, err := s.Credit(ctx, referral.ID); err != nil {
		if errors.Is(err, ErrAlreadyCredited) {
			return nil
		}
		return err
	}
	return nil
}

// ListMine returns the user's code plus the referrals they initiated.
func (s *Service) ListMine(ctx context.Context, userID int) (string, []domain.Referral, error) {
	code, err := s.IssueCode(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	referrals, err := s.repo.FindByReferrerID(ctx, userID)
	if err != nil {
		return "", nil, err
	}
	return code, referrals, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Referral, error) {
	return s.repo.FindAll(ctx)
}
