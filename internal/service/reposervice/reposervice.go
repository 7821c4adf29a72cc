package reposervice

//go:generate mockgen -source=reposervice.go -destination=mock_reposervice.go -package=reposervice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gitmarket/gitmarket/internal/domain"
	"github.com/gitmarket/gitmarket/internal/github"
)

type GitHubClient interface {
	FetchRepo(ctx context.Context, owner, name string) (*domain.Repo, error)
	FetchIssues(ctx context.Context, owner, name string) ([]domain.Issue, error)
}

type RepoRepo interface {
	Upsert(ctx context.Context, repo *domain.Repo) (*domain.Repo, error)
}

type BountyRepo interface {
	ListOpenByRepo(ctx context.Context, repoID int64) ([]domain.Bounty, error)
}

type Service struct {
	github     GitHubClient
	repoRepo   RepoRepo
	bountyRepo BountyRepo
}

func New(gh GitHubClient, repoRepo RepoRepo, bountyRepo BountyRepo) *Service {
	return &Service{
		github:     gh,
		repoRepo:   repoRepo,
		bountyRepo: bountyRepo,
	}
}

// Search resolves reference to a repository, refreshes its stored metadata
// and returns its open issues with any open bounty attached.
func (s *Service) Search(ctx context.Context, reference string) (*domain.RepoSearchResult, error) {
	owner, name, err := github.ParseReference(reference)
	if err != nil {
		return nil, err
	}

	var (
		ghRepo *domain.Repo
		issues []domain.Issue
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ghRepo, err = s.github.FetchRepo(gctx, owner, name)
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = s.github.FetchIssues(gctx, owner, name)
		if err != nil {
			zap.L().Warn("issue listing unavailable", zap.String("repo", owner+"/"+name), zap.Error(err))
			issues = []domain.Issue{}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	repo, err := s.repoRepo.Upsert(ctx, ghRepo)
	if err != nil {
		return nil, err
	}

	bounties, err := s.bountyRepo.ListOpenByRepo(ctx, repo.ID)
	if err != nil {
		return nil, err
	}

	return &domain.RepoSearchResult{
		Repo:   *repo,
		Issues: EnrichIssues(issues, bounties),
	}, nil
}

// EnrichIssues attaches to each issue the open bounty placed on its number.
func EnrichIssues(issues []domain.Issue, bounties []domain.Bounty) []domain.Issue {
	byNumber := make(map[int]domain.Bounty, len(bounties))
	for _, b := range bounties {
		byNumber[b.IssueNumber] = b
	}

	enriched := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if b, ok := byNumber[issue.Number]; ok {
			issue.Bounty = &b
		}
		enriched = append(enriched, issue)
	}
	return enriched
}
