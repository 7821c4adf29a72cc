package bounties

//go:generate mockgen -source=bounties.go -destination=mock_bounties.go -package=bounties

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/dto"
	"github.com/gitmarket/gitmarket/pkg/auth"
	"github.com/gitmarket/gitmarket/pkg/utils"
	"github.com/gitmarket/gitmarket/pkg/validate"
)

type Service interface {
	ListOpen(ctx context.Context) ([]domain.BountyDetails, error)
	GetBounty(ctx context.Context, id int64) (*domain.BountyDetails, []domain.SubmissionDetails, error)
	CreateBounty(ctx context.Context, nb *domain.NewBounty) (int64, error)
	CancelBounty(ctx context.Context, actorID string, bountyID int64) error
	CreateSubmission(ctx context.Context, solverID string, bountyID int64, prURL string, comment *string) (*domain.Submission, error)
	ApproveSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error
	RejectSubmission(ctx context.Context, approverID string, bountyID, submissionID int64) error
}

type BountyHandler struct {
	bountyService Service
}

func New(bountyService Service) *BountyHandler {
	return &BountyHandler{
		bountyService: bountyService,
	}
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return identity.ID, true
}

// ListBounties godoc
//
//	@Summary		List open bounties
//	@Description	Open bounties with their repository and creator, newest first.
//	@Tags			Bounties
//	@Produce		json
//	@Success		200	{array}		dto.BountyListItemDTO	"Open bounties"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/bounties [get]
func (h *BountyHandler) ListBounties(w http.ResponseWriter, r *http.Request) {
	bounties, err := h.bountyService.ListOpen(r.Context())
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBountyList(bounties))
}

// GetBounty godoc
//
//	@Summary		Get a bounty
//	@Description	A bounty with its submissions, oldest submission first.
//	@Tags			Bounties
//	@Produce		json
//	@Param			id	path		int							true	"Bounty ID"
//	@Success		200	{object}	dto.BountyDetailResponseDTO	"Bounty and submissions"
//	@Failure		400	{object}	utils.Response				"Invalid bounty id"
//	@Failure		404	{object}	utils.Response				"Bounty not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/bounties/{id} [get]
func (h *BountyHandler) GetBounty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bounty id")
		return
	}

	bounty, submissions, err := h.bountyService.GetBounty(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBountyDetail(bounty, submissions))
}

// CreateBounty godoc
//
//	@Summary		Place a bounty
//	@Description	Escrow an amount from the caller's balance on a GitHub issue.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBountyRequestDTO	true	"Bounty to place"
//	@Success		200		{object}	dto.CreateBountyResponseDTO	"ID of the new bounty"
//	@Failure		400		{object}	utils.Response				"Amount below minimum, insufficient balance or rejected request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/bounties [post]
func (h *BountyHandler) CreateBounty(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.CreateBountyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := domain.CheckBountyAmount(req.Amount); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	if req.RepoID <= 0 || req.IssueNumber <= 0 || validate.IsBlank(req.IssueTitle) || !validate.IsHTTPURL(req.IssueURL) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.bountyService.CreateBounty(r.Context(), &domain.NewBounty{
		CreatorID:   userID,
		RepoID:      req.RepoID,
		IssueNumber: req.IssueNumber,
		IssueTitle:  strings.TrimSpace(req.IssueTitle),
		IssueURL:    strings.TrimSpace(req.IssueURL),
		Amount:      req.Amount,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreateBountyResponseDTO{ID: id})
}

// CancelBounty godoc
//
//	@Summary		Cancel a bounty
//	@Description	Refund an open bounty to its creator.
//	@Tags			Bounties
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Bounty ID"
//	@Success		200	{object}	dto.OKResponseDTO	"Bounty cancelled"
//	@Failure		400	{object}	utils.Response		"Bounty is not open"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		403	{object}	utils.Response		"Not your bounty"
//	@Failure		404	{object}	utils.Response		"Bounty not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/bounties/{id} [delete]
func (h *BountyHandler) CancelBounty(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bounty id")
		return
	}

	if err := h.bountyService.CancelBounty(r.Context(), userID, id); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}

// CreateSubmission godoc
//
//	@Summary		Submit a solution
//	@Description	Claim an open bounty with a pull request.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Bounty ID"
//	@Param			request	body		dto.CreateSubmissionRequestDTO	true	"Pull request and optional comment"
//	@Success		200		{object}	dto.SubmissionDTO				"Created submission"
//	@Failure		400		{object}	utils.Response					"Bounty not open or already submitted"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Cannot submit to your own bounty"
//	@Failure		404		{object}	utils.Response					"Bounty not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/bounties/{id}/submissions [post]
func (h *BountyHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bounty id")
		return
	}

	var req dto.CreateSubmissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsHTTPURL(req.PRURL) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid pull request URL")
		return
	}
	comment := req.Comment
	if comment != nil && validate.IsBlank(*comment) {
		comment = nil
	}

	submission, err := h.bountyService.CreateSubmission(r.Context(), userID, id, strings.TrimSpace(req.PRURL), comment)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSubmission(*submission))
}

// ApproveSubmission godoc
//
//	@Summary		Approve a submission
//	@Description	Pay the bounty to the submission's solver and close the bounty.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Bounty ID"
//	@Param			sid	path		int					true	"Submission ID"
//	@Success		200	{object}	dto.OKResponseDTO	"Submission approved"
//	@Failure		400	{object}	utils.Response		"Approval rejected"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/bounties/{id}/submissions/{sid}/approve [post]
func (h *BountyHandler) ApproveSubmission(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.bountyService.ApproveSubmission)
}

// RejectSubmission godoc
//
//	@Summary		Reject a submission
//	@Description	Mark a pending submission rejected. The bounty stays open.
//	@Tags			Submissions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int					true	"Bounty ID"
//	@Param			sid	path		int					true	"Submission ID"
//	@Success		200	{object}	dto.OKResponseDTO	"Submission rejected"
//	@Failure		400	{object}	utils.Response		"Submission is not pending"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		403	{object}	utils.Response		"Only the creator can reject"
//	@Failure		404	{object}	utils.Response		"Bounty or submission not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/bounties/{id}/submissions/{sid}/reject [post]
func (h *BountyHandler) RejectSubmission(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.bountyService.RejectSubmission)
}

func (h *BountyHandler) review(w http.ResponseWriter, r *http.Request, decide func(ctx context.Context, approverID string, bountyID, submissionID int64) error) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	bountyID, ok := pathID(r, "id")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bounty id")
		return
	}
	submissionID, ok := pathID(r, "sid")
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	if err := decide(r.Context(), userID, bountyID, submissionID); err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OKResponseDTO{OK: true})
}
