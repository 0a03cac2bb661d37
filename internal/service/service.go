// Package service contains the business rules.
//
// Services validate their input with the validation predicates, enforce
// uniqueness, call the repositories and redact what leaves them. Every
// failure is an *errs.HTTPError; services never downgrade an error raised
// below them.
package service

import (
	"context"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.Optional[model.User], error)
	GetByUniqueKey(ctx context.Context, key model.UserLookupKey, value string) (model.Optional[model.User], error)
	GetByCredentials(ctx context.Context, username, password string) (model.Optional[model.User], error)
	Save(ctx context.Context, user model.User) (model.User, error)
	Update(ctx context.Context, user model.User) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type AccountRepository interface {
	GetAll(ctx context.Context) ([]model.Account, error)
	GetByID(ctx context.Context, id int64) (model.Optional[model.Account], error)
	Save(ctx context.Context, account model.Account) (model.Account, error)
	Update(ctx context.Context, account model.Account) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type TransactionRepository interface {
	GetAll(ctx context.Context) ([]model.Transaction, error)
	GetByID(ctx context.Context, id int64) (model.Optional[model.Transaction], error)
	Save(ctx context.Context, transaction model.Transaction) (model.Transaction, error)
	Update(ctx context.Context, transaction model.Transaction) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// WelcomeNotifier schedules the welcome e-mail of a new user.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, firstName, username string) error
}
