package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	found := Found(User{ID: 3})
	v, ok := found.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(3), v.ID)
	assert.False(t, found.IsEmpty())

	missing := NotFound[User]()
	_, ok = missing.Get()
	assert.False(t, ok)
	assert.True(t, missing.IsEmpty())
}

func TestParseUserLookupKey(t *testing.T) {
	for _, k := range UserLookupKeys {
		parsed, err := ParseUserLookupKey(string(k))
		require.NoError(t, err)
		col, ok := parsed.Column()
		assert.True(t, ok)
		assert.Equal(t, string(k), col)
	}

	_, err := ParseUserLookupKey("password")
	assert.Error(t, err)
	_, err = ParseUserLookupKey("username; drop table app_user")
	assert.Error(t, err)
}

func TestUserLookupKey_Value(t *testing.T) {
	u := User{Username: "arobert", Email: "arobert@test.com", Nickname: "Father"}
	assert.Equal(t, "arobert", LookupUsername.Value(u))
	assert.Equal(t, "arobert@test.com", LookupEmail.Value(u))
	assert.Equal(t, "Father", LookupNickname.Value(u))
}

func TestRedactedFieldsAreOmittedFromJSON(t *testing.T) {
	body, err := json.Marshal(User{ID: 1, Username: "arobert"})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")

	body, err = json.Marshal(Transaction{TransactionID: 2, Deposit: true, Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "accountId")
	assert.Contains(t, string(body), `"transcationId":2`)

	body, err = json.Marshal(Account{AccountID: 1, Balance: decimal.NewFromInt(5), AccountType: "checking"})
	require.NoError(t, err)
	assert.NotContains(t, string(body), "createdTime")
}
