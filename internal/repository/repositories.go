package repository

import (
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
)

// Repositories groups the repositories handed to the service layer.
type Repositories struct {
	Users        *UserRepository
	Accounts     *AccountRepository
	Transactions *TransactionRepository
}

// NewRepositories builds every repository over the server's shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(s.DB.Pool, s.Logger),
		Accounts:     NewAccountRepository(s.DB.Pool, s.Logger),
		Transactions: NewTransactionRepository(s.DB.Pool, s.Logger),
	}
}
