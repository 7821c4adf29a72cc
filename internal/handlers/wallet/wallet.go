package wallet

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet

import (
	"context"
	"net/http"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/dto"
	"github.com/gitmarket/gitmarket/pkg/auth"
	"github.com/gitmarket/gitmarket/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID string) (*domain.Wallet, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get the caller's wallet
//	@Description	Current balance and the ledger, newest entry first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Balance and transactions"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	wallet, err := h.walletService.GetWallet(r.Context(), identity.ID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponse(wallet))
}
