package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caredesk/referral-ledger/internal/domain"
	"github.com/caredesk/referral-ledger/internal/dto"
	"github.com/caredesk/referral-ledger/internal/service/withdrawalservice"
	"github.com/caredesk/referral-ledger/pkg/auth"
	"github.com/caredesk/referral-ledger/pkg/utils"
	"github.com/caredesk/referral-ledger/pkg/validate"
)

type Service interface {
	Get(ctx context.Context, userID int) (*domain.Wallet, float64, error)
	Transactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WithdrawalService interface {
	Create(ctx context.Context, userID int, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	List(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type WalletHandler struct {
	walletService     Service
	withdrawalService WithdrawalService
}

func New(walletService Service, withdrawalService WithdrawalService) *WalletHandler {
	return &WalletHandler{
		walletService:     walletService,
		withdrawalService: withdrawalService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the wallet balance, the balance available for withdrawal, lifetime totals and the transaction history.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet state"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, available, err := h.walletService.Get(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	transactions, err := h.walletService.Transactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.WalletResponseDTO{
		Balance:          wallet.Balance,
		AvailableBalance: available,
		TotalEarned:      wallet.TotalEarned,
		TotalWithdrawn:   wallet.TotalWithdrawn,
		Transactions:     make([]dto.TransactionDTO, len(transactions)),
	}
	for i, tx := range transactions {
		response.Transactions[i] = dto.TransactionDTO{
			ID:          tx.ID,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Description: tx.Description,
			ReferenceID: tx.ReferenceID,
			Status:      tx.Status,
			CreatedAt:   tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Open a pending withdrawal request against the available balance. The amount must meet the configured minimum and a UPI id or bank account must be supplied.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failure, below minimum or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UpiID != "" && !validate.IsUPI(req.UpiID) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid UPI id")
		return
	}
	if req.BankAccountNumber != "" && !validate.IsBankAccountNumber(req.BankAccountNumber) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid bank account number")
		return
	}
	if req.BankIFSC != "" && !validate.IsIFSC(req.BankIFSC) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid IFSC code")
		return
	}

	withdrawal, err := h.withdrawalService.Create(r.Context(), userID, &domain.WithdrawalRequest{
		Amount:            req.Amount,
		UpiID:             req.UpiID,
		BankAccountName:   req.BankAccountName,
		BankAccountNumber: req.BankAccountNumber,
		BankIFSC:          req.BankIFSC,
	})
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, withdrawalservice.ErrMissingPayoutDetails),
			errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrReferralsDisabled),
			errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get the authenticated user's withdrawal requests, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.withdrawalService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toWithdrawalDTO(&wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWithdrawalDTO(wd *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
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
