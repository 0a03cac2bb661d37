package service

import (
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/repository"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
)

type Services struct {
	Users        *UserService
	Accounts     *AccountService
	Transactions *TransactionService
	Tokens       *TokenService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Users:        NewUserService(repos.Users, notifier, s.Logger),
		Accounts:     NewAccountService(repos.Accounts, s.Logger),
		Transactions: NewTransactionService(repos.Transactions, s.Logger),
		Tokens:       NewTokenService(s.Config.Auth),
	}
}
