package events

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/pkg/utils"
)

type AppointmentService interface {
	Complete(ctx context.Context, patientID int, appointmentRef string) error
}

type WalletService interface {
	Audit(ctx context.Context) (int, []int, error)
}

type EventHandler struct {
	appointmentService AppointmentService
	walletService      WalletService
}

func New(appointmentService AppointmentService, walletService WalletService) *EventHandler {
	return &EventHandler{
		appointmentService: appointmentService,
		walletService:      walletService,
	}
}

// AppointmentCompleted godoc
//
//	@Summary		Notify an appointment completion
//	@Description	Records a completed appointment for a patient and, if it is the patient's first, credits their referrer. Replayed events are ignored; reward failures never fail the event.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AppointmentCompletedEventDTO	true	"Completion event"
//	@Success		202		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/events/appointment-completed [post]
func (h *EventHandler) AppointmentCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentCompletedEventDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PatientID == 0 || req.AppointmentRef == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "patientId and appointmentRef are required")
		return
	}

	if err := h.appointmentService.Complete(r.Context(), req.PatientID, req.AppointmentRef); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, utils.Response{Message: "completion recorded"})
}

// WalletAudit godoc
//
//	@Summary		Audit wallet balances
//	@Description	Checks every wallet's balance against the sum of its transactions and reports any drift.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletAuditResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin only"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/wallet-audit [get]
func (h *EventHandler) WalletAudit(w http.ResponseWriter, r *http.Request) {
	checked, mismatched, err := h.walletService.Audit(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if mismatched == nil {
		mismatched = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletAuditResponseDTO{
		WalletsChecked: checked,
		Mismatched:     mismatched,
	})
}
