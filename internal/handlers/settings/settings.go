package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/internal/service/settingsservice"
	"github.com/caredesk/referral-ledger/pkg/utils"
)

type Service interface {
	Get(ctx context.Context) (*domain.ReferralSettings, error)
	Update(ctx context.Context, settings *domain.ReferralSettings) (*domain.ReferralSettings, error)
}

type SettingsHandler struct {
	settingsService Service
}

func New(settingsService Service) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get godoc
//
//	@Summary		Get referral settings
//	@Description	Returns the active reward rates and the minimum withdrawal; creates the default row on first read.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralSettingsDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/referral-settings [get]
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(settings))
}

// Update godoc
//
//	@Summary		Update referral settings
//	@Description	Replaces the reward rates, the minimum withdrawal and the enabled flag.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralSettingsDTO	true	"Settings payload"
//	@Success		200		{object}	dto.ReferralSettingsDTO
//	@Failure		400		{object}	utils.Response	"Invalid settings values"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/referral-settings [put]
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ReferralSettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.settingsService.Update(r.Context(), &domain.ReferralSettings{
		PatientToPatientReward: req.PatientToPatientReward,
		DoctorToDoctorReward:   req.DoctorToDoctorReward,
		DoctorToPatientReward:  req.DoctorToPatientReward,
		MinWithdrawal:          req.MinWithdrawal,
		IsEnabled:              req.IsEnabled,
	})
	if err != nil {
		if errors.Is(err, settingsservice.ErrInvalidSettings) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(updated))
}

func toDTO(settings *domain.ReferralSettings) dto.ReferralSettingsDTO {
	return dto.ReferralSettingsDTO{
		PatientToPatientReward: settings.PatientToPatientReward,
		DoctorToDoctorReward:   settings.DoctorToDoctorReward,
		DoctorToPatientReward:  settings.DoctorToPatientReward,
		MinWithdrawal:          settings.MinWithdrawal,
		IsEnabled:              settings.IsEnabled,
	}
}
