package dto

import "time"

type WithdrawRequestDTO struct {
	Amount            float64 `json:"amount" example:"100"`
	UpiID             string  `json:"upiId,omitempty" example:"name@upi"`
	BankAccountName   string  `json:"bankAccountName,omitempty" example:"A. Sharma"`
	BankAccountNumber string  `json:"bankAccountNumber,omitempty" example:"123456789012"`
	BankIFSC          string  `json:"bankIfsc,omitempty" example:"HDFC0001234"`
}

type WithdrawalResponseDTO struct {
	ID          int        `json:"id" example:"5"`
	UserID      int        `json:"userId" example:"1"`
	Amount      float64    `json:"amount" example:"100"`
	UpiID       string     `json:"upiId,omitempty"`
	Status      string     `json:"status" example:"pending"`
	AdminNote   string     `json:"adminNote,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ProcessedAt *time.Time `json:"processedAt,omitempty"`
}

type WithdrawalActionRequestDTO struct {
	WithdrawalID int    `json:"withdrawalId" example:"5"`
	Action       string `json:"action" example:"approve"`
	AdminNote    string `json:"adminNote,omitempty"`
}
