package settingsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ReferralSettings
	}{
		{
			name: "Returns the settings row",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "patient_to_patient_reward", "doctor_to_doctor_reward", "doctor_to_patient_reward", "min_withdrawal", "is_enabled"}).
					AddRow("default", 50.0, 100.0, 75.0, 100.0, true)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled
        FROM referral_settings
        WHERE id = $1
    `)).
					WithArgs("default").
					WillReturnRows(rows)
			},
			result: &domain.ReferralSettings{
				ID:                     "default",
				PatientToPatientReward: 50,
				DoctorToDoctorReward:   100,
				DoctorToPatientReward:  75,
				MinWithdrawal:          100,
				IsEnabled:              true,
			},
		},
		{
			name: "Missing row returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled
        FROM referral_settings
        WHERE id = $1
    `)).
					WithArgs("default").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled
        FROM referral_settings
        WHERE id = $1
    `)).
					WithArgs("default").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	settings := &domain.ReferralSettings{
		ID:                     "default",
		PatientToPatientReward: 50,
		DoctorToDoctorReward:   100,
		DoctorToPatientReward:  75,
		MinWithdrawal:          100,
		IsEnabled:              true,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Inserts, existing row untouched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO referral_settings (id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs("default", 50.0, 100.0, 75.0, 100.0, true).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO referral_settings (id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs("default", 50.0, 100.0, 75.0, 100.0, true).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(context.Background(), settings)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	settings := &domain.ReferralSettings{
		PatientToPatientReward: 60,
		DoctorToDoctorReward:   120,
		DoctorToPatientReward:  80,
		MinWithdrawal:          150,
		IsEnabled:              false,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates settings",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "patient_to_patient_reward", "doctor_to_doctor_reward", "doctor_to_patient_reward", "min_withdrawal", "is_enabled"}).
					AddRow("default", 60.0, 120.0, 80.0, 150.0, false)
				mock.ExpectQuery(regexp.QuoteMeta(`
        UPDATE referral_settings
        SET patient_to_patient_reward = $1, doctor_to_doctor_reward = $2, doctor_to_patient_reward = $3, min_withdrawal = $4, is_enabled = $5
        WHERE id = $6
        RETURNING id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled`)).
					WithArgs(60.0, 120.0, 80.0, 150.0, false, "default").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        UPDATE referral_settings
        SET patient_to_patient_reward = $1, doctor_to_doctor_reward = $2, doctor_to_patient_reward = $3, min_withdrawal = $4, is_enabled = $5
        WHERE id = $6
        RETURNING id, patient_to_patient_reward, doctor_to_doctor_reward, doctor_to_patient_reward, min_withdrawal, is_enabled`)).
					WithArgs(60.0, 120.0, 80.0, 150.0, false, "default").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.Update(context.Background(), settings)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "default", updated.ID)
				assert.Equal(t, 60.0, updated.PatientToPatientReward)
				assert.False(t, updated.IsEnabled)
			}
		})
	}
}
