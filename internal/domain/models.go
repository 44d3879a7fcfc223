package domain

import "time"

// Roles known to the portal.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	ReferralCode string    `db:"referral_code"`
	ReferredBy   *int      `db:"referred_by"`
	CreatedAt    time.Time `db:"created_at"`
}

// ReferralSettings is the single active reward configuration, id = "default".
type ReferralSettings struct {
	ID                     string  `db:"id"`
	PatientToPatientReward float64 `db:"patient_to_patient_reward"`
	DoctorToDoctorReward   float64 `db:"doctor_to_doctor_reward"`
	DoctorToPatientReward  float64 `db:"doctor_to_patient_reward"`
	MinWithdrawal          float64 `db:"min_withdrawal"`
	IsEnabled              bool    `db:"is_enabled"`
}

type Referral struct {
	ID           int        `db:"id"`
	ReferrerID   int        `db:"referrer_id"`
	RefereeID    int        `db:"referee_id"`
	ReferralType string     `db:"referral_type"`
	Status       string     `db:"status"`
	RewardAmount float64    `db:"reward_amount"`
	CreatedAt    time.Time  `db:"created_at"`
	CreditedAt   *time.Time `db:"credited_at"`
}

type Wallet struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	Balance        float64 `db:"balance"`
	TotalEarned    float64 `db:"total_earned"`
	TotalWithdrawn float64 `db:"total_withdrawn"`
}

// Transaction rows are append-only; amount is signed (negative for
// withdrawals) and the wallet balance always equals their sum.
type Transaction struct {
	ID          int       `db:"id"`
	WalletID    int       `db:"wallet_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	ReferenceID *int      `db:"reference_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type WithdrawalRequest struct {
	ID                int        `db:"id"`
	UserID            int        `db:"user_id"`
	Amount            float64    `db:"amount"`
	UpiID             string     `db:"upi_id"`
	BankAccountName   string     `db:"bank_account_name"`
	BankAccountNumber string     `db:"bank_account_number"`
	BankIFSC          string     `db:"bank_ifsc"`
	Status            string     `db:"status"`
	AdminNote         string     `db:"admin_note"`
	CreatedAt         time.Time  `db:"created_at"`
	ProcessedAt       *time.Time `db:"processed_at"`
}

// AppointmentCompletion records that a patient's appointment reached the
// completed state; the row count drives the first-completion reward guard.
type AppointmentCompletion struct {
	ID             int       `db:"id"`
	PatientID      int       `db:"patient_id"`
	AppointmentRef string    `db:"appointment_ref"`
	CompletedAt    time.Time `db:"completed_at"`
}
