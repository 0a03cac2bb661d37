package service

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/validation"
	"github.com/rs/zerolog"
)

type AccountService struct {
	repo   AccountRepository
	logger *zerolog.Logger
}

func NewAccountService(repo AccountRepository, logger *zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) GetAllAccounts(ctx context.Context) ([]model.Account, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, errs.NewResourceNotFoundError("")
	}

	for i := range accounts {
		accounts[i] = redactAccount(accounts[i])
	}
	return accounts, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id int64) (model.Account, error) {
	if !validation.IsValidID(id) {
		return model.Account{}, errs.NewBadRequestError("")
	}

	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Account{}, err
	}

	account, ok := result.Get()
	if !ok {
		return model.Account{}, errs.NewResourceNotFoundError("")
	}
	return redactAccount(account), nil
}

// AddNewAccount opens an account for account.OwnerID.
func (s *AccountService) AddNewAccount(ctx context.Context, account model.Account) (model.Account, error) {
	if !validation.IsValidMoney(account.Balance) {
		return model.Account{}, errs.NewBadRequestError("Invalid property value found in balance.")
	}

	if !validation.IsValidString(account.AccountType) {
		return model.Account{}, errs.NewBadRequestError("Invalid property value in account type.")
	}

	if !validation.IsValidID(account.OwnerID) {
		return model.Account{}, errs.NewBadRequestError("Invalid property value found in owner id.")
	}

	account.AccountID = 0

	saved, err := s.repo.Save(ctx, account)
	if err != nil {
		return model.Account{}, err
	}
	return redactAccount(saved), nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, account model.Account) (bool, error) {
	if !validation.IsValidID(account.AccountID) {
		return false, errs.NewBadRequestError("")
	}

	if !validation.IsValidMoney(account.Balance) {
		return false, errs.NewBadRequestError("")
	}

	if !validation.IsValidString(account.AccountType) {
		return false, errs.NewBadRequestError("")
	}

	return s.repo.Update(ctx, account)
}

// DeleteByID deletes the account named by payload["accountId"].
func (s *AccountService) DeleteByID(ctx context.Context, payload map[string]any) (bool, error) {
	id, err := deleteTarget(payload, model.Account{}, model.AccountIDProperty)
	if err != nil {
		return false, err
	}

	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	s.logger.Info().Int64("account_id", id).Bool("deleted", deleted).Msg("account delete requested")
	return deleted, nil
}

func redactAccount(account model.Account) model.Account {
	account.CreatedTime = nil
	return account
}
