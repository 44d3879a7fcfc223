package appointmentservice

import (
	"context"
	"time"

	"github.com/caredesk/referral-ledger/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=appointmentservice.go -destination=appointmentservice_mock.go -package=appointmentservice

type Repo interface {
	Save(ctx context.Context, completion *domain.AppointmentCompletion) (*domain.AppointmentCompletion, error)
	CountByPatient(ctx context.Context, patientID int) (int, error)
}

type ReferralService interface {
	OnQualifyingEvent(ctx context.Context, refereeID int) error
}

type Service struct {
	repo     Repo
	referral ReferralService
}

func New(repo Repo, referral ReferralService) *Service {
	return &Service{
		repo:     repo,
		referral: referral,
	}
}

// Complete records a completed appointment and triggers the reward path.
// Recording is fail-closed; the reward path is fail-open — a ledger problem
// must never make an appointment completion fail.
func (s *Service) Complete(ctx context.Context, patientID int, appointmentRef string) error {
	completion := &domain.AppointmentCompletion{
		PatientID:      patientID,
		AppointmentRef: appointmentRef,
		CompletedAt:    time.Now(),
	}
	saved, err := s.repo.Save(ctx, completion)
	if err != nil {
		zap.L().Error("can't record appointment completion", zap.Error(err))
		return err
	}
	if saved == nil {
		zap.L().Info("appointment completion already recorded", zap.String("ref", appointmentRef))
		return nil
	}

	if err := s.referral.OnQualifyingEvent(ctx, patientID); err != nil {
		zap.L().Error("referral reward failed, appointment completion unaffected",
			zap.Int("patientID", patientID), zap.Error(err))
	}
	return nil
}
