package handler

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionService interface {
	GetAllTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (model.Transaction, error)
	AddNewTransaction(ctx context.Context, transaction model.Transaction) (model.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction model.Transaction) (bool, error)
	DeleteByID(ctx context.Context, payload map[string]any) (bool, error)
}

type TransactionHandler struct {
	Handler
	transactions TransactionService
}

func NewTransactionHandler(h Handler, transactions TransactionService) *TransactionHandler {
	return &TransactionHandler{
		Handler:      h,
		transactions: transactions,
	}
}

type TransactionRequest struct {
	TransactionID int64           `json:"transcationId"`
	Deposit       bool            `json:"deposit"`
	Withdrawal    bool            `json:"withdrawal"`
	Amount        decimal.Decimal `json:"amount"`
	AccountID     int64           `json:"accountId"`
}

func (r *TransactionRequest) Validate() error {
	return nil
}

func (r *TransactionRequest) toModel() model.Transaction {
	return model.Transaction{
		TransactionID: r.TransactionID,
		Deposit:       r.Deposit,
		Withdrawal:    r.Withdrawal,
		Amount:        r.Amount,
		AccountID:     r.AccountID,
	}
}

func (h *TransactionHandler) GetAllTransactions(c echo.Context, _ *ListRequest) ([]model.Transaction, error) {
	return h.transactions.GetAllTransactions(c.Request().Context())
}

func (h *TransactionHandler) GetTransactionByID(c echo.Context, req *IDRequest) (model.Transaction, error) {
	return h.transactions.GetTransactionByID(c.Request().Context(), req.Value())
}

func (h *TransactionHandler) AddNewTransaction(c echo.Context, req *TransactionRequest) (model.Transaction, error) {
	return h.transactions.AddNewTransaction(c.Request().Context(), req.toModel())
}

func (h *TransactionHandler) UpdateTransaction(c echo.Context, req *TransactionRequest) (bool, error) {
	return h.transactions.UpdateTransaction(c.Request().Context(), req.toModel())
}

func (h *TransactionHandler) DeleteTransaction(c echo.Context, req *DeleteRequest) (bool, error) {
	return h.transactions.DeleteByID(c.Request().Context(), *req)
}
