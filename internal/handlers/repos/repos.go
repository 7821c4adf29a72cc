package repos

//go:generate mockgen -source=repos.go -destination=mock_repos.go -package=repos

import (
	"context"
	"net/http"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/dto"
	"github.com/gitmarket/gitmarket/pkg/utils"
)

type Service interface {
	Search(ctx context.Context, reference string) (*domain.RepoSearchResult, error)
}

type RepoHandler struct {
	repoService Service
}

func New(repoService Service) *RepoHandler {
	return &RepoHandler{
		repoService: repoService,
	}
}

// Search godoc
//
//	@Summary		Look up a GitHub repository
//	@Description	Accepts a GitHub URL or owner/repo shorthand. Returns the repository and its open issues, each with its open bounty if any.
//	@Tags			Repos
//	@Produce		json
//	@Param			url	query		string						true	"GitHub URL or owner/repo"
//	@Success		200	{object}	dto.RepoSearchResponseDTO	"Repository and issues"
//	@Failure		400	{object}	utils.Response				"Invalid GitHub URL"
//	@Failure		404	{object}	utils.Response				"Repository not found on GitHub"
//	@Failure		503	{object}	utils.Response				"GitHub is unavailable"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/repos/search [get]
func (h *RepoHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.repoService.Search(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRepoSearchResponse(result))
}
