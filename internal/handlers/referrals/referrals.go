package referrals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/internal/service/referralservice"
	"github.com/caredesk/referral-ledger/pkg/auth"
	"github.com/caredesk/referral-ledger/pkg/utils"
)

type Service interface {
	ListMine(ctx context.Context, userID int) (string, []domain.Referral, error)
	ListAll(ctx context.Context) ([]domain.Referral, error)
	Credit(ctx context.Context, referralID int) (*domain.Referral, error)
}

type ReferralHandler struct {
	referralService Service
}

func New(referralService Service) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// GetMyReferrals godoc
//
//	@Summary		Get own referral code and referrals
//	@Description	Returns the authenticated user's shareable referral code and the referrals they initiated.
//	@Tags			Referrals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MyReferralsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals [get]
func (h *ReferralHandler) GetMyReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	code, referrals, err := h.referralService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MyReferralsResponseDTO{
		ReferralCode: code,
		Referrals:    toDTOs(referrals),
	})
}

// GetAllReferrals godoc
//
//	@Summary		List all referrals
//	@Description	Admin view of every referral and its reward state.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/referrals [get]
func (h *ReferralHandler) GetAllReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.referralService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTOs(referrals))
}

// Action godoc
//
//	@Summary		Credit a referral
//	@Description	Admin override that credits a specific pending referral through the same compare-and-swap path the appointment trigger uses.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ReferralActionRequestDTO	true	"Referral action payload"
//	@Success		200		{object}	dto.ReferralDTO
//	@Failure		400		{object}	utils.Response	"Unknown action or referral already credited"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Referral not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/referrals [put]
func (h *ReferralHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req dto.ReferralActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Action != "credit" {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown action")
		return
	}

	referral, err := h.referralService.Credit(r.Context(), req.ReferralID)
	if err != nil {
		switch {
		case errors.Is(err, referralservice.ErrReferralNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, referralservice.ErrAlreadyCredited):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(referral))
}

func toDTO(referral *domain.Referral) dto.ReferralDTO {
	return dto.ReferralDTO{
		ID:           referral.ID,
		ReferrerID:   referral.ReferrerID,
		RefereeID:    referral.RefereeID,
		ReferralType: referral.ReferralType,
		Status:       referral.Status,
		RewardAmount: referral.RewardAmount,
		CreatedAt:    referral.CreatedAt,
		CreditedAt:   referral.CreditedAt,
	}
}

func toDTOs(referrals []domain.Referral) []dto.ReferralDTO {
	response := make([]dto.ReferralDTO, len(referrals))
	for i := range referrals {
		response[i] = toDTO(&referrals[i])
	}
	return response
}
