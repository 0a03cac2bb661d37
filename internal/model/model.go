// Package model holds the entities exchanged between repositories, services
// and handlers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUserRole is forced onto every newly created user.
const DefaultUserRole = "user"

// AdminRole gates the full user listing.
const AdminRole = "admin"

type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickname"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Account is a bank account. CreatedTime is populated by the repository and
// cleared by the service before the account leaves it.
type Account struct {
	AccountID   int64           `json:"accountId"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedTime *time.Time      `json:"createdTime,omitempty"`
	AccountType string          `json:"accountType"`
	OwnerID     int64           `json:"ownerId,omitempty"`
}

// Transaction is a deposit or withdrawal against an account.
//
// The JSON name "transcationId" is the established wire name.
type Transaction struct {
	TransactionID int64           `json:"transcationId"`
	Deposit       bool            `json:"deposit"`
	Withdrawal    bool            `json:"withdrawal"`
	Amount        decimal.Decimal `json:"amount"`
	AccountID     int64           `json:"accountId,omitempty"`
}

// Property names used as identifier keys in delete payloads.
const (
	AccountIDProperty     = "accountId"
	TransactionIDProperty = "transcationId"
	UserIDProperty        = "id"
)
