package dto

import "time"

type ReferralDTO struct {
	ID           int        `json:"id" example:"3"`
	ReferrerID   int        `json:"referrerId" example:"1"`
	RefereeID    int        `json:"refereeId" example:"2"`
	ReferralType string     `json:"referralType" example:"patient_to_patient"`
	Status       string     `json:"status" example:"pending"`
	RewardAmount float64    `json:"rewardAmount" example:"0"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreditedAt   *time.Time `json:"creditedAt,omitempty"`
}

type MyReferralsResponseDTO struct {
	ReferralCode string        `json:"referralCode" example:"RAVI1A2B"`
	Referrals    []ReferralDTO `json:"referrals"`
}

type ReferralActionRequestDTO struct {
	ReferralID int    `json:"referralId" example:"3"`
	Action     string `json:"action" example:"credit"`
}
