package dto

import "time"

type TransactionDTO struct {
	ID          int       `json:"id" example:"17"`
	Type        string    `json:"type" example:"credit"`
	Amount      float64   `json:"amount" example:"50"`
	Description string    `json:"description" example:"Referral reward"`
	ReferenceID *int      `json:"referenceId,omitempty" example:"3"`
	Status      string    `json:"status" example:"completed"`
	CreatedAt   time.Time `json:"createdAt" example:"2025-12-09T16:09:57+05:30"`
}

type WalletResponseDTO struct {
	Balance          float64          `json:"balance" example:"150"`
	AvailableBalance float64          `json:"availableBalance" example:"50"`
	TotalEarned      float64          `json:"totalEarned" example:"200"`
	TotalWithdrawn   float64          `json:"totalWithdrawn" example:"50"`
	Transactions     []TransactionDTO `json:"transactions"`
}
