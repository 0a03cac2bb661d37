package repository

import (
	"context"
	"errors"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const accountSelect = `
	SELECT ba.id, ba.balance, ba.created_time, at.name AS account_type, ua.user_id
	FROM bank_account ba
	JOIN account_type at ON ba.acc_type = at.id
	JOIN user_accounts ua ON ua.account_id = ba.id`

type AccountRepository struct {
	base
}

func NewAccountRepository(db DBTX, logger *zerolog.Logger) *AccountRepository {
	return &AccountRepository{base{db: db, logger: logger}}
}

func scanAccount(row pgx.Row) (model.Account, error) {
	var (
		account model.Account
		created time.Time
	)
	err := row.Scan(
		&account.AccountID,
		&account.Balance,
		&created,
		&account.AccountType,
		&account.OwnerID,
	)
	if err == nil {
		account.CreatedTime = &created
	}
	return account, err
}

// accountTypeID resolves an account type name to its id.
func accountTypeID(ctx context.Context, q rowQuerier, name string) (int32, error) {
	var id int32
	err := q.QueryRow(ctx, `SELECT id FROM account_type WHERE name = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errs.NewBadRequestError("The provided account type does not exist.")
	}
	return id, err
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]model.Account, error) {
	rows, err := r.db.Query(ctx, accountSelect+` ORDER BY ba.id`)
	if err != nil {
		return nil, r.fail("account.get_all", err)
	}

	accounts, err := collect(rows, scanAccount)
	if err != nil {
		return nil, r.fail("account.get_all", err)
	}
	return accounts, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.Account], error) {
	account, err := one(scanAccount(r.db.QueryRow(ctx, accountSelect+` WHERE ba.id = $1`, id)))
	if err != nil {
		return account, r.fail("account.get_by_id", err)
	}
	return account, nil
}

// Save creates the account and links it to its owner in one transaction.
// Either both rows exist afterwards or neither does.
func (r *AccountRepository) Save(ctx context.Context, account model.Account) (model.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Account{}, r.fail("account.save", err)
	}
	defer rollback(ctx, tx, r.logger)

	typeID, err := accountTypeID(ctx, tx, account.AccountType)
	if err != nil {
		return model.Account{}, r.fail("account.save", err)
	}

	var created time.Time
	err = tx.QueryRow(ctx,
		`INSERT INTO bank_account (balance, acc_type) VALUES ($1, $2) RETURNING id, created_time`,
		account.Balance, typeID,
	).Scan(&account.AccountID, &created)
	if err != nil {
		return model.Account{}, r.fail("account.save", err)
	}
	account.CreatedTime = &created

	if _, err = tx.Exec(ctx,
		`INSERT INTO user_accounts (user_id, account_id) VALUES ($1, $2)`,
		account.OwnerID, account.AccountID,
	); err != nil {
		return model.Account{}, r.fail("account.save", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return model.Account{}, r.fail("account.save", err)
	}

	return account, nil
}

// Update sets balance and type of the account.
func (r *AccountRepository) Update(ctx context.Context, account model.Account) (bool, error) {
	typeID, err := accountTypeID(ctx, r.db, account.AccountType)
	if err != nil {
		return false, r.fail("account.update", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE bank_account SET balance = $2, acc_type = $3 WHERE id = $1`,
		account.AccountID, account.Balance, typeID,
	)
	if err != nil {
		return false, r.fail("account.update", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByID removes the account. Owner links and transactions cascade.
func (r *AccountRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bank_account WHERE id = $1`, id)
	if err != nil {
		return false, r.fail("account.delete", err)
	}
	return tag.RowsAffected() > 0, nil
}
