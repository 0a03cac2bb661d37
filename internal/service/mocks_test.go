package service

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.User], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Optional[model.User]), args.Error(1)
}

func (m *mockUserRepository) GetByUniqueKey(ctx context.Context, key model.UserLookupKey, value string) (model.Optional[model.User], error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).(model.Optional[model.User]), args.Error(1)
}

func (m *mockUserRepository) GetByCredentials(ctx context.Context, username, password string) (model.Optional[model.User], error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.Optional[model.User]), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user model.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) GetAll(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]model.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.Account], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Optional[model.Account]), args.Error(1)
}

func (m *mockAccountRepository) Save(ctx context.Context, account model.Account) (model.Account, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *mockAccountRepository) Update(ctx context.Context, account model.Account) (bool, error) {
	args := m.Called(ctx, account)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) EnqueueWelcomeEmail(ctx context.Context, to, firstName, username string) error {
	return m.Called(ctx, to, firstName, username).Error(0)
}

// memoryTransactionRepository keeps transactions in a slice, in insert order.
type memoryTransactionRepository struct {
	rows   []model.Transaction
	nextID int64
}

func (r *memoryTransactionRepository) GetAll(ctx context.Context) ([]model.Transaction, error) {
	return append([]model.Transaction{}, r.rows...), nil
}

func (r *memoryTransactionRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.Transaction], error) {
	for _, row := range r.rows {
		if row.TransactionID == id {
			return model.Found(row), nil
		}
	}
	return model.NotFound[model.Transaction](), nil
}

func (r *memoryTransactionRepository) Save(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	r.nextID++
	transaction.TransactionID = r.nextID
	r.rows = append(r.rows, transaction)
	return transaction, nil
}

func (r *memoryTransactionRepository) Update(ctx context.Context, transaction model.Transaction) (bool, error) {
	for i, row := range r.rows {
		if row.TransactionID == transaction.TransactionID {
			r.rows[i] = transaction
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryTransactionRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	for i, row := range r.rows {
		if row.TransactionID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
