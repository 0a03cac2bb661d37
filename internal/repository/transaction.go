package repository

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const transactionSelect = `
	SELECT t.id, t.deposit, t.withdrawal, t.amount, t.account_id
	FROM transactions t
	JOIN bank_account ba ON t.account_id = ba.id`

type TransactionRepository struct {
	base
}

func NewTransactionRepository(db DBTX, logger *zerolog.Logger) *TransactionRepository {
	return &TransactionRepository{base{db: db, logger: logger}}
}

func scanTransaction(row pgx.Row) (model.Transaction, error) {
	var transaction model.Transaction
	err := row.Scan(
		&transaction.TransactionID,
		&transaction.Deposit,
		&transaction.Withdrawal,
		&transaction.Amount,
		&transaction.AccountID,
	)
	return transaction, err
}

func (r *TransactionRepository) GetAll(ctx context.Context) ([]model.Transaction, error) {
	rows, err := r.db.Query(ctx, transactionSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, r.fail("transaction.get_all", err)
	}

	transactions, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, r.fail("transaction.get_all", err)
	}
	return transactions, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (model.Optional[model.Transaction], error) {
	transaction, err := one(scanTransaction(r.db.QueryRow(ctx, transactionSelect+` WHERE t.id = $1`, id)))
	if err != nil {
		return transaction, r.fail("transaction.get_by_id", err)
	}
	return transaction, nil
}

// Save records the transaction. An unknown account fails the foreign key
// and surfaces as a bad request.
func (r *TransactionRepository) Save(ctx context.Context, transaction model.Transaction) (model.Transaction, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO transactions (deposit, withdrawal, amount, account_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		transaction.Deposit,
		transaction.Withdrawal,
		transaction.Amount,
		transaction.AccountID,
	).Scan(&transaction.TransactionID)
	if err != nil {
		return model.Transaction{}, r.fail("transaction.save", err)
	}
	return transaction, nil
}

// Update overwrites the flags and amount. A zero AccountID keeps the
// current account.
func (r *TransactionRepository) Update(ctx context.Context, transaction model.Transaction) (bool, error) {
	const query = `
		UPDATE transactions
		SET deposit = $2, withdrawal = $3, amount = $4,
		    account_id = COALESCE(NULLIF($5::bigint, 0), account_id)
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		transaction.TransactionID,
		transaction.Deposit,
		transaction.Withdrawal,
		transaction.Amount,
		transaction.AccountID,
	)
	if err != nil {
		return false, r.fail("transaction.update", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TransactionRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, r.fail("transaction.delete", err)
	}
	return tag.RowsAffected() > 0, nil
}
