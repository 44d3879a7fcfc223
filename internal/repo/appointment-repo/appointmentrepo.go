package appointmentrepo

import (
	"context"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Save records a completion once per appointment_ref; a replayed event
// returns nil, nil instead of a duplicate row.
func (r *Repository) Save(ctx context.Context, completion *domain.AppointmentCompletion) (*domain.AppointmentCompletion, error) {
	query := `
		INSERT INTO appointment_completions (patient_id, appointment_ref, completed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (appointment_ref) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, completion.PatientID, completion.AppointmentRef, completion.CompletedAt).
		Scan(&completion.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't save appointment completion", zap.Error(err))
		return nil, err
	}
	return completion, nil
}

func (r *Repository) CountByPatient(ctx context.Context, patientID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM appointment_completions
        WHERE patient_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, patientID).Scan(&count); err != nil {
		zap.L().Error("can't count completed appointments", zap.Error(err))
		return 0, err
	}
	return count, nil
}
