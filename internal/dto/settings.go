package dto

type ReferralSettingsDTO struct {
	PatientToPatientReward float64 `json:"patientToPatientReward" example:"50"`
	DoctorToDoctorReward   float64 `json:"doctorToDoctorReward" example:"100"`
	DoctorToPatientReward  float64 `json:"doctorToPatientReward" example:"75"`
	MinWithdrawal          float64 `json:"minWithdrawal" example:"100"`
	IsEnabled              bool    `json:"isEnabled" example:"true"`
}
