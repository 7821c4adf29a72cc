package dto

import "github.com/gitmarket/gitmarket/internal/domain"

func NewProfileResponse(p *domain.Profile) ProfileResponseDTO {
	return ProfileResponseDTO{
		ID:             p.ID,
		Username:       p.Username,
		AvatarURL:      p.AvatarURL,
		GitHubUsername: p.GitHubUsername,
		Balance:        p.Balance,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewPublicProfile(p domain.Profile) PublicProfileDTO {
	return PublicProfileDTO{
		ID:             p.ID,
		Username:       p.Username,
		AvatarURL:      p.AvatarURL,
		GitHubUsername: p.GitHubUsername,
	}
}

func NewRepo(r domain.Repo) RepoDTO {
	return RepoDTO{
		ID:          r.ID,
		GitHubID:    r.GitHubID,
		Owner:       r.Owner,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		Stars:       r.Stars,
		Language:    r.Language,
		URL:         r.URL,
		CreatedAt:   r.CreatedAt,
	}
}

func NewBounty(b domain.Bounty) BountyDTO {
	return BountyDTO{
		ID:          b.ID,
		RepoID:      b.RepoID,
		IssueNumber: b.IssueNumber,
		IssueTitle:  b.IssueTitle,
		IssueURL:    b.IssueURL,
		CreatorID:   b.CreatorID,
		Amount:      b.Amount,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func NewBountyListItem(b domain.BountyDetails) BountyListItemDTO {
	return BountyListItemDTO{
		BountyDTO: NewBounty(b.Bounty),
		Repos:     NewRepo(b.Repo),
		Profiles:  NewPublicProfile(b.Creator),
	}
}

func NewBountyList(bounties []domain.BountyDetails) []BountyListItemDTO {
	items := make([]BountyListItemDTO, 0, len(bounties))
	for _, b := range bounties {
		items = append(items, NewBountyListItem(b))
	}
	return items
}

func NewSubmission(s domain.Submission) SubmissionDTO {
	return SubmissionDTO{
		ID:        s.ID,
		BountyID:  s.BountyID,
		SolverID:  s.SolverID,
		PRURL:     s.PRURL,
		Comment:   s.Comment,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewBountyDetail(b *domain.BountyDetails, submissions []domain.SubmissionDetails) BountyDetailResponseDTO {
	items := make([]SubmissionDTO, 0, len(submissions))
	for _, s := range submissions {
		item := NewSubmission(s.Submission)
		solver := NewPublicProfile(s.Solver)
		item.Profiles = &solver
		items = append(items, item)
	}
	return BountyDetailResponseDTO{
		Bounty:      NewBountyListItem(*b),
		Submissions: items,
	}
}

func NewIssue(i domain.Issue) IssueDTO {
	labels := make([]LabelDTO, 0, len(i.Labels))
	for _, l := range i.Labels {
		labels = append(labels, LabelDTO{Name: l.Name, Color: l.Color})
	}

	issue := IssueDTO{
		Number:  i.Number,
		Title:   i.Title,
		HTMLURL: i.URL,
		State:   i.State,
		Labels:  labels,
		User: IssueUserDTO{
			Login:     i.Author.Login,
			AvatarURL: i.Author.AvatarURL,
		},
		CreatedAt: i.CreatedAt,
		Comments:  i.Comments,
	}
	if i.Bounty != nil {
		b := NewBounty(*i.Bounty)
		issue.Bounty = &b
	}
	return issue
}

func NewRepoSearchResponse(r *domain.RepoSearchResult) RepoSearchResponseDTO {
	issues := make([]IssueDTO, 0, len(r.Issues))
	for _, i := range r.Issues {
		issues = append(issues, NewIssue(i))
	}
	return RepoSearchResponseDTO{
		Repo:   NewRepo(r.Repo),
		Issues: issues,
	}
}

func NewWalletResponse(w *domain.Wallet) WalletResponseDTO {
	transactions := make([]TransactionDTO, 0, len(w.Transactions))
	for _, t := range w.Transactions {
		transactions = append(transactions, TransactionDTO{
			ID:          t.ID,
			UserID:      t.UserID,
			Amount:      t.Amount,
			Type:        t.Type,
			BountyID:    t.BountyID,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return WalletResponseDTO{
		Balance:      w.Balance,
		Transactions: transactions,
	}
}
