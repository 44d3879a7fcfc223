package settingsrepo

import (
	"context"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const settingsID = "default"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context) (*domain.ReferralSettings, error) {
	query := `
        SELECT id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled
        FROM referral_settings
        WHERE id = $1
    `
	var s domain.ReferralSettings
	err := r.db.QueryRow(ctx, query, settingsID).
		Scan(&s.ID, &s.PatientToPatientReward, &s.DoctorToDoctorReward, &s.DoctorToPatientReward, &s.MinWithdrawal, &s.IsEnabled)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't get referral settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Create(ctx context.Context, s *domain.ReferralSettings) error {
	query := `
        INSERT INTO referral_settings (id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query, settingsID, s.PatientToPatientReward, s.DoctorToDoctorReward, s.DoctorToPatientReward, s.MinWithdrawal, s.IsEnabled)
	if err != nil {
		zap.L().Error("can't create referral settings", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, s *domain.ReferralSettings) (*domain.ReferralSettings, error) {
	query := `
        UPDATE referral_settings
        SET patient_to_patient_reward = $1, doctor_to_doctor_reward = $2, doctor_to_patient_reward = $3, min_withdrawal = $4, is_enabled = $5
        WHERE id = $6
        RETURNING id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled
    `
	var updated domain.ReferralSettings
	err := r.db.QueryRow(ctx, query, s.PatientToPatientReward, s.DoctorToDoctorReward, s.DoctorToPatientReward, s.MinWithdrawal, s.IsEnabled, settingsID).
		Scan(&updated.ID, &updated.PatientToPatientReward, &updated.DoctorToDoctorReward, &updated.DoctorToPatientReward, &updated.MinWithdrawal, &updated.IsEnabled)
	if err != nil {
		zap.L().Error("can't update referral settings", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}
