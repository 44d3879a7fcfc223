package dto

type AppointmentCompletedEventDTO struct {
	PatientID      int    `json:"patientId" example:"2"`
	AppointmentRef string `json:"appointmentRef" example:"apt-2025-000123"`
}

type WalletAuditResponseDTO struct {
	WalletsChecked int   `json:"walletsChecked" example:"120"`
	Mismatched     []int `json:"mismatchedWalletIds"`
}
