package service

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
	"github.com/rs/zerolog"
)

type TransactionService struct {
	repo   TransactionRepository
	logger *zerolog.Logger
}

func NewTransactionService(repo TransactionRepository, logger *zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, logger: logger}
}

func (s *TransactionService) GetAllTransactions(ctx context.Context) ([]model.Transaction, error) {
	transactions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(transactions) == 0 {
		return nil, errs.NewResourceNotFoundError("")
	}

	for i := range transactions {
		transactions[i] = redactTransaction(transactions[i])
	}
	return transactions, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, id int64) (model.Transaction, error) {
	if !validation.IsValidID(id) {
		return model.Transaction{}, errs.NewBadRequestError("")
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}

	transaction, ok := result.Get()
	if !ok {
		return model.Transaction{}, errs.NewResourceNotFoundError("")
	}
	return redactTransaction(transaction), nil
}

// AddNewTransaction records a deposit or withdrawal against an existing
// account. An unknown account is rejected by the repository.
func (s *TransactionService) AddNewTransaction(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	if !validation.IsValidMoney(transaction.Amount) {
		return model.Transaction{}, errs.NewBadRequestError("Invalid property value found in amount.")
	}

	if !validation.IsValidID(transaction.AccountID) {
		return model.Transaction{}, errs.NewBadRequestError("Invalid property value found in account id.")
	}

	transaction.TransactionID = 0

	saved, err := s.repo.Save(ctx, transaction)
	if err != nil {
		return model.Transaction{}, err
	}
	return redactTransaction(saved), nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transaction model.Transaction) (bool, error) {
	if !validation.IsValidMoney(transaction.Amount) {
		return false, errs.NewBadRequestError("")
	}

	if !validation.IsValidID(transaction.TransactionID) {
		return false, errs.NewBadRequestError("")
	}

	return s.repo.Update(ctx, transaction)
}

// DeleteByID deletes the transaction named by payload["transcationId"].
func (s *TransactionService) DeleteByID(ctx context.Context, payload map[string]any) (bool, error) {
	id, err := deleteTarget(payload, model.Transaction{}, model.TransactionIDProperty)
	if err != nil {
		return false, err
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Info().Int64("transaction_id", id).Bool("deleted", deleted).Msg("transaction delete requested")
	return deleted, nil
}

func redactTransaction(transaction model.Transaction) model.Transaction {
	transaction.AccountID = 0
	return transaction
}
