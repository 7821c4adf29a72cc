package profile

//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile

import (
	"context"
	"net/http"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/dto"
	"github.com/gitmarket/gitmarket/pkg/auth"
	"github.com/gitmarket/gitmarket/pkg/utils"
)

type Service interface {
	GetOrCreate(ctx context.Context, identity domain.Identity) (*domain.Profile, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Me godoc
//
//	@Summary		Get the caller's profile
//	@Description	Returns the caller's profile, creating it with the signup bonus on first call.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/me [get]
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileService.GetOrCreate(r.Context(), identity)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(profile))
}
