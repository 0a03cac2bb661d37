package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{"id", "balance", "created_time", "account_type", "user_id"}

func TestAccountRepository_GetAll(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	created := time.Date(2020, 4, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`JOIN user_accounts ua ON ua.account_id = ba.id ORDER BY ba.id`).
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow(int64(1), decimal.RequireFromString("250.75"), created, "checking", int64(2)).
			AddRow(int64(2), decimal.RequireFromString("10.00"), created, "saving", int64(3)))

	accounts, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].AccountID)
	assert.Equal(t, "saving", accounts[1].AccountType)
	assert.Equal(t, int64(3), accounts[1].OwnerID)
	assert.True(t, accounts[1].Balance.Equal(decimal.RequireFromString("10")))
	require.NotNil(t, accounts[0].CreatedTime)
	requireExpectations(t, mock)
}

func TestAccountRepository_GetAllEmpty(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	mock.ExpectQuery("FROM bank_account ba").
		WillReturnRows(pgxmock.NewRows(accountColumns))

	accounts, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, accounts)
	requireExpectations(t, mock)
}

func TestAccountRepository_GetByID(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	created := time.Date(2020, 4, 20, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`WHERE ba.id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(accountColumns).
			AddRow(int64(1), decimal.RequireFromString("250.75"), created, "checking", int64(2)))

	result, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	account, ok := result.Get()
	require.True(t, ok)
	assert.Equal(t, int64(1), account.AccountID)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("250.75")))
	assert.Equal(t, "checking", account.AccountType)
	assert.Equal(t, int64(2), account.OwnerID)
	require.NotNil(t, account.CreatedTime)
	assert.Equal(t, created, *account.CreatedTime)
	requireExpectations(t, mock)
}

func TestAccountRepository_Save(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	created := time.Date(2020, 4, 21, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM account_type").
		WithArgs("saving").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int32(2)))
	mock.ExpectQuery("INSERT INTO bank_account").
		WithArgs(pgxmock.AnyArg(), int32(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_time"}).AddRow(int64(7), created))
	mock.ExpectExec("INSERT INTO user_accounts").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	saved, err := repo.Save(context.Background(), model.Account{
		Balance:     decimal.NewFromInt(500),
		AccountType: "saving",
		OwnerID:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.AccountID)
	require.NotNil(t, saved.CreatedTime)
	assert.Equal(t, created, *saved.CreatedTime)
	requireExpectations(t, mock)
}

func TestAccountRepository_SaveUnknownTypeRollsBack(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM account_type").
		WithArgs("brokerage").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), model.Account{
		Balance:     decimal.NewFromInt(500),
		AccountType: "brokerage",
		OwnerID:     3,
	})

	assert.ErrorIs(t, err, errs.ErrBadRequest)
	requireExpectations(t, mock)
}

func TestAccountRepository_SaveLinkFailureRollsBack(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM account_type").
		WithArgs("checking").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int32(1)))
	mock.ExpectQuery("INSERT INTO bank_account").
		WithArgs(pgxmock.AnyArg(), int32(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_time"}).AddRow(int64(8), time.Now()))
	mock.ExpectExec("INSERT INTO user_accounts").
		WithArgs(int64(3), int64(8)).
		WillReturnError(errors.New("connection reset by peer"))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), model.Account{
		Balance:     decimal.NewFromInt(10),
		AccountType: "checking",
		OwnerID:     3,
	})

	assert.ErrorIs(t, err, errs.ErrInternalServer)
	requireExpectations(t, mock)
}

func TestAccountRepository_Update(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	mock.ExpectQuery("SELECT id FROM account_type").
		WithArgs("checking").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int32(1)))
	mock.ExpectExec("UPDATE bank_account").
		WithArgs(int64(5), pgxmock.AnyArg(), int32(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.Update(context.Background(), model.Account{
		AccountID:   5,
		Balance:     decimal.NewFromInt(75),
		AccountType: "checking",
	})

	require.NoError(t, err)
	assert.False(t, updated)
	requireExpectations(t, mock)
}

func TestAccountRepository_DeleteByID(t *testing.T) {
	mock, logger := newMock(t)
	repo := NewAccountRepository(mock, logger)

	mock.ExpectExec("DELETE FROM bank_account").
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.DeleteByID(context.Background(), 5)

	require.NoError(t, err)
	assert.True(t, deleted)
	requireExpectations(t, mock)
}
