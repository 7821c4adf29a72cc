package service

import (
	"github.com/gitmarket/gitmarket/internal/config"
	"github.com/gitmarket/gitmarket/internal/handlers/bounties"
	"github.com/gitmarket/gitmarket/internal/handlers/profile"
	"github.com/gitmarket/gitmarket/internal/handlers/repos"
	"github.com/gitmarket/gitmarket/internal/handlers/wallet"
	"github.com/gitmarket/gitmarket/internal/repo"
	"github.com/gitmarket/gitmarket/internal/service/bountyservice"
	"github.com/gitmarket/gitmarket/internal/service/profileservice"
	"github.com/gitmarket/gitmarket/internal/service/reposervice"
	"github.com/gitmarket/gitmarket/internal/service/walletservice"
)

type Services struct {
	ProfileService profile.Service
	RepoService    repos.Service
	BountyService  bounties.Service
	WalletService  wallet.Service
}

func New(cfg *config.Config, repo *repo.Repositories, gh reposervice.GitHubClient) *Services {
	return &Services{
		ProfileService: profileservice.New(repo.Profiles, repo.Transactions, repo.TxManager, cfg.SignupBonus),
		RepoService:    reposervice.New(gh, repo.GitRepos, repo.Bounties),
		BountyService: bountyservice.New(
			repo.Bounties,
			repo.Submissions,
			repo.Profiles,
			repo.Transactions,
			repo.TxManager,
		),
		WalletService: walletservice.New(repo.Profiles, repo.Transactions),
	}
}
