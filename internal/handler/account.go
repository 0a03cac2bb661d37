package handler

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	GetAllAccounts(ctx context.Context) ([]model.Account, error)
	GetAccountByID(ctx context.Context, id int64) (model.Account, error)
	AddNewAccount(ctx context.Context, account model.Account) (model.Account, error)
	UpdateAccount(ctx context.Context, account model.Account) (bool, error)
	DeleteByID(ctx context.Context, payload map[string]any) (bool, error)
}

type AccountHandler struct {
	Handler
	accounts AccountService
}

func NewAccountHandler(h Handler, accounts AccountService) *AccountHandler {
	return &AccountHandler{
		Handler:  h,
		accounts: accounts,
	}
}

type AccountRequest struct {
	AccountID   int64           `json:"accountId"`
	Balance     decimal.Decimal `json:"balance"`
	AccountType string          `json:"accountType"`
	OwnerID     int64           `json:"ownerId"`
}

func (r *AccountRequest) Validate() error {
	return nil
}

func (r *AccountRequest) toModel() model.Account {
	return model.Account{
		AccountID:   r.AccountID,
		Balance:     r.Balance,
		AccountType: r.AccountType,
		OwnerID:     r.OwnerID,
	}
}

func (h *AccountHandler) GetAllAccounts(c echo.Context, _ *ListRequest) ([]model.Account, error) {
	return h.accounts.GetAllAccounts(c.Request().Context())
}

func (h *AccountHandler) GetAccountByID(c echo.Context, req *IDRequest) (model.Account, error) {
	return h.accounts.GetAccountByID(c.Request().Context(), req.Value())
}

func (h *AccountHandler) AddNewAccount(c echo.Context, req *AccountRequest) (model.Account, error) {
	return h.accounts.AddNewAccount(c.Request().Context(), req.toModel())
}

func (h *AccountHandler) UpdateAccount(c echo.Context, req *AccountRequest) (bool, error) {
	return h.accounts.UpdateAccount(c.Request().Context(), req.toModel())
}

func (h *AccountHandler) DeleteAccount(c echo.Context, req *DeleteRequest) (bool, error) {
	return h.accounts.DeleteByID(c.Request().Context(), *req)
}
