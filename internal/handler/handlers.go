package handler

import (
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/server"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Users        *UserHandler
	Accounts     *AccountHandler
	Transactions *TransactionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	h := NewHandler(s)

	return &Handlers{
		Health:       NewHealthHandler(h),
		OpenAPI:      NewOpenAPIHandler(h),
		Users:        NewUserHandler(h, services.Users, services.Tokens),
		Accounts:     NewAccountHandler(h, services.Accounts),
		Transactions: NewTransactionHandler(h, services.Transactions),
	}
}
