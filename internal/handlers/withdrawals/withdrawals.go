package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/internal/service/withdrawalservice"
	"github.com/caredesk/referral-ledger/pkg/utils"
)

type Service interface {
	ListAll(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
	Approve(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error)
	Reject(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error)
	Process(ctx context.Context, id int, adminNote string) (*domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// GetAll godoc
//
//	@Summary		List withdrawal requests
//	@Description	Admin view of withdrawal requests, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(pending, approved, rejected, processed)
//	@Success		200		{array}		dto.WithdrawalResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *WithdrawalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListAll(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toDTO(&wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Action godoc
//
//	@Summary		Approve, reject or process a withdrawal
//	@Description	Drives the withdrawal state machine: pending to approved, pending to rejected, approved to processed. Processing debits the wallet.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalActionRequestDTO	true	"Withdrawal action payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown action, illegal transition or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [put]
func (h *WithdrawalHandler) Action(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawalActionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		withdrawal *domain.WithdrawalRequest
		err        error
	)
	switch req.Action {
	case "approve":
		withdrawal, err = h.withdrawalService.Approve(r.Context(), req.WithdrawalID, req.AdminNote)
	case "reject":
		withdrawal, err = h.withdrawalService.Reject(r.Context(), req.WithdrawalID, req.AdminNote)
	case "process":
		withdrawal, err = h.withdrawalService.Process(r.Context(), req.WithdrawalID, req.AdminNote)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown action")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidTransition),
			errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(withdrawal))
}

func toDTO(wd *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          wd.ID,
		UserID:      wd.UserID,
		Amount:      wd.Amount,
		UpiID:       wd.UpiID,
		Status:      wd.Status,
		AdminNote:   wd.AdminNote,
		CreatedAt:   wd.CreatedAt,
		ProcessedAt: wd.ProcessedAt,
	}
}
