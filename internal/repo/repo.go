package repo

import (
	"github.com/gitmarket/gitmarket/internal/pg"
	bountyrepo "github.com/gitmarket/gitmarket/internal/repo/bounty-repo"
	gitreporepo "github.com/gitmarket/gitmarket/internal/repo/gitrepo-repo"
	profilerepo "github.com/gitmarket/gitmarket/internal/repo/profile-repo"
	submissionrepo "github.com/gitmarket/gitmarket/internal/repo/submission-repo"
	transactionrepo "github.com/gitmarket/gitmarket/internal/repo/transaction-repo"
	"github.com/gitmarket/gitmarket/internal/service/bountyservice"
	"github.com/gitmarket/gitmarket/internal/service/profileservice"
	"github.com/gitmarket/gitmarket/internal/service/reposervice"
	"github.com/gitmarket/gitmarket/internal/service/walletservice"
)

// ProfileRepo is everything the services need from the profiles table.
type ProfileRepo interface {
	profileservice.ProfileRepo
	bountyservice.ProfileRepo
	walletservice.ProfileRepo
}

type BountyRepo interface {
	bountyservice.BountyRepo
	reposervice.BountyRepo
}

type TransactionRepo interface {
	bountyservice.TransactionRepo
	profileservice.TransactionRepo
	walletservice.TransactionRepo
}

type Repositories struct {
	Profiles     ProfileRepo
	GitRepos     reposervice.RepoRepo
	Bounties     BountyRepo
	Submissions  bountyservice.SubmissionRepo
	Transactions TransactionRepo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Profiles:     profilerepo.New(conn),
		GitRepos:     gitreporepo.New(conn),
		Bounties:     bountyrepo.New(conn),
		Submissions:  submissionrepo.New(conn),
		Transactions: transactionrepo.New(conn),
		TxManager:    txManager,
	}
}
