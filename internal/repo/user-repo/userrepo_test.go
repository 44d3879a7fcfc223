package userrepo

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

const selectUser = `
		SELECT id, login, password_hash, full_name, role, COALESCE(referral_code, ''), referred_by
		FROM users
		WHERE `

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "login", "password_hash", "full_name", "role", "coalesce", "referred_by"})
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing login returns user",
			login: "ravi",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser + `login = $1`)).
					WithArgs("ravi").
					WillReturnRows(userRows().AddRow(1, "ravi", "hashed", "Ravi", domain.RolePatient, "RAVI0001", nil))
			},
			result: &domain.User{ID: 1, Login: "ravi", PasswordHash: "hashed", FullName: "Ravi", Role: domain.RolePatient, ReferralCode: "RAVI0001"},
		},
		{
			name:  "Unknown login returns nil",
			login: "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser + `login = $1`)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			login: "ravi",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser + `login = $1`)).
					WithArgs("ravi").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByReferralCode(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		code      string
		mockSetup func()
		result    *domain.User
	}{
		{
			name: "Existing code returns owner",
			code: "RAVI0001",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser + `referral_code = $1`)).
					WithArgs("RAVI0001").
					WillReturnRows(userRows().AddRow(1, "ravi", "hashed", "Ravi", domain.RolePatient, "RAVI0001", nil))
			},
			result: &domain.User{ID: 1, Login: "ravi", PasswordHash: "hashed", FullName: "Ravi", Role: domain.RolePatient, ReferralCode: "RAVI0001"},
		},
		{
			name: "Unknown code returns nil",
			code: "NOPE0000",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(selectUser + `referral_code = $1`)).
					WithArgs("NOPE0000").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByReferralCode(context.Background(), tt.code)
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash, full_name, role, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`)).
					WithArgs("ravi", "hashed", "Ravi", domain.RolePatient, pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash, full_name, role, referred_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`)).
					WithArgs("ravi", "hashed", "Ravi", domain.RolePatient, pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user := &domain.User{Login: "ravi", PasswordHash: "hashed", FullName: "Ravi", Role: domain.RolePatient}
			result, err := repo.Create(context.Background(), user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
			}
		})
	}
}

func TestRepository_SetReferralCode(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Sets the code when still unset",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE users
		SET referral_code = $1
		WHERE id = $2 AND referral_code IS NULL
	`)).
					WithArgs("RAVI0001", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already set is a no-op",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE users
		SET referral_code = $1
		WHERE id = $2 AND referral_code IS NULL
	`)).
					WithArgs("RAVI0001", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE users
		SET referral_code = $1
		WHERE id = $2 AND referral_code IS NULL
	`)).
					WithArgs("RAVI0001", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.SetReferralCode(context.Background(), 1, "RAVI0001")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_SetReferredBy(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE users
		SET referred_by = $1
		WHERE id = $2
	`)).
		WithArgs(1, 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetReferredBy(context.Background(), 2, 1)
	assert.NoError(t, err)
}
