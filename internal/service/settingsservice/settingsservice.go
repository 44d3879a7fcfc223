package settingsservice

import (
	"context"
	"errors"

	"github.com/caredesk/referral-ledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settingsservice.go -destination=settingsservice_mock.go -package=settingsservice

type Repo interface {
	Get(ctx context.Context) (*domain.ReferralSettings, error)
	Create(ctx context.Context, s *domain.ReferralSettings) error
	Update(ctx context.Context, s *domain.ReferralSettings) (*domain.ReferralSettings, error)
}

// Documented defaults, materialized on first read if the row is missing.
const (
	DefaultPatientToPatientReward = 50
	DefaultDoctorToDoctorReward   = 100
	DefaultDoctorToPatientReward  = 75
	DefaultMinWithdrawal          = 100
)

var ErrInvalidSettings = errors.New("invalid settings values")

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func defaults() *domain.ReferralSettings {
	return &domain.ReferralSettings{
		ID:                     "default",
		PatientToPatientReward: DefaultPatientToPatientReward,
		DoctorToDoctorReward:   DefaultDoctorToDoctorReward,
		DoctorToPatientReward:  DefaultDoctorToPatientReward,
		MinWithdrawal:          DefaultMinWithdrawal,
		IsEnabled:              true,
	}
}

// Get returns the active settings, creating the default row idempotently
// when it does not exist yet.
func (s *Service) Get(ctx context.Context) (*domain.ReferralSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to get referral settings", zap.Error(err))
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	if err := s.repo.Create(ctx, defaults()); err != nil {
		zap.L().Error("failed to create default referral settings", zap.Error(err))
		return nil, err
	}
	settings, err = s.repo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to reread referral settings", zap.Error(err))
		return nil, err
	}
	return settings, nil
}

func (s *Service) Update(ctx context.Context, settings *domain.ReferralSettings) (*domain.ReferralSettings, error) {
	if settings.PatientToPatientReward < 0 || settings.DoctorToDoctorReward < 0 ||
		settings.DoctorToPatientReward < 0 || settings.MinWithdrawal < 0 {
		return nil, ErrInvalidSettings
	}

	updated, err := s.repo.Update(ctx, settings)
	if err != nil {
		zap.L().Error("failed to update referral settings", zap.Error(err))
		return nil, err
	}
	zap.L().Info("referral settings updated",
		zap.Float64("minWithdrawal", updated.MinWithdrawal),
		zap.Bool("isEnabled", updated.IsEnabled))
	return updated, nil
}
