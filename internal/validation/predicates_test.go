package validation

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	valid := []any{1, int64(999999), uint8(3), 42.0, json.Number("123"), decimal.NewFromInt(7)}
	for _, v := range valid {
		assert.Truef(t, IsValidID(v), "expected %#v to be a valid id", v)
	}

	invalid := []any{
		0, -1, int64(-20), 3.14, 0.01, math.NaN(), math.Inf(1),
		"1", "", true, nil, json.Number("4.2"), decimal.NewFromFloat(1.5), decimal.Zero,
	}
	for _, v := range invalid {
		assert.Falsef(t, IsValidID(v), "expected %#v to be an invalid id", v)
	}
}

func TestIsValidID_FollowsPointers(t *testing.T) {
	n := int64(5)
	var missing *int64

	assert.True(t, IsValidID(&n))
	assert.False(t, IsValidID(missing))
}

func TestIsValidMoney(t *testing.T) {
	valid := []any{100, 0.005, 3.14, json.Number("12.50"), decimal.RequireFromString("0.01")}
	for _, v := range valid {
		assert.Truef(t, IsValidMoney(v), "expected %#v to be valid money", v)
	}

	invalid := []any{0, -0.005, -1, math.NaN(), math.Inf(1), "100", false, nil, decimal.Zero, decimal.NewFromFloat(-0.005)}
	for _, v := range invalid {
		assert.Falsef(t, IsValidMoney(v), "expected %#v to be invalid money", v)
	}
}

func TestIsValidMoney_IsLooserThanIsValidID(t *testing.T) {
	assert.True(t, IsValidMoney(2.5))
	assert.False(t, IsValidID(2.5))
}

func TestIsValidString(t *testing.T) {
	assert.True(t, IsValidString("a"))
	assert.True(t, IsValidString("username", "password"))
	assert.False(t, IsValidString(""))
	assert.False(t, IsValidString("username", ""))
}

func TestIsValidBoolean(t *testing.T) {
	assert.True(t, IsValidBoolean(true))
	assert.False(t, IsValidBoolean(false))
	assert.False(t, IsValidBoolean("true"))
	assert.False(t, IsValidBoolean(1))
	assert.False(t, IsValidBoolean(nil))
}

func TestIsValidObject_Struct(t *testing.T) {
	user := model.User{
		Username:  "arobert",
		Password:  "password",
		FirstName: "Andy",
		LastName:  "Robert",
		Nickname:  "Father",
		Email:     "arobert@test.com",
	}

	assert.True(t, IsValidObject(user, "id", "role"))
	assert.True(t, IsValidObject(&user, "id", "role"))
	assert.False(t, IsValidObject(user, "id"), "role is empty and not nullable")
	assert.False(t, IsValidObject(user), "id is zero")

	user.Email = ""
	assert.False(t, IsValidObject(user, "id", "role"))
}

func TestIsValidObject_ZeroDecimalIsFalsy(t *testing.T) {
	account := model.Account{AccountID: 1, Balance: decimal.Zero, AccountType: "checking", OwnerID: 1}
	assert.False(t, IsValidObject(account, "createdTime"))

	account.Balance = decimal.NewFromInt(10)
	assert.True(t, IsValidObject(account, "createdTime"))
}

func TestIsValidObject_Map(t *testing.T) {
	assert.True(t, IsValidObject(map[string]any{"a": 1, "b": "x"}))
	assert.False(t, IsValidObject(map[string]any{"a": 0}))
	assert.True(t, IsValidObject(map[string]any{"a": 0}, "a"))
	assert.False(t, IsValidObject(nil))
}

func TestIsPropertyOf(t *testing.T) {
	assert.True(t, IsPropertyOf("accountId", model.Account{}))
	assert.True(t, IsPropertyOf("balance", &model.Account{}))
	assert.True(t, IsPropertyOf("transcationId", model.Transaction{}))
	assert.True(t, IsPropertyOf("nickname", model.User{}))

	assert.False(t, IsPropertyOf("AccountID", model.Account{}))
	assert.False(t, IsPropertyOf("id", model.Account{}))
	assert.False(t, IsPropertyOf("username", "not a struct"))
	assert.False(t, IsPropertyOf("username", nil))
}

func TestIsEmptyObject(t *testing.T) {
	assert.True(t, IsEmptyObject(nil))
	assert.True(t, IsEmptyObject(model.User{}))
	assert.True(t, IsEmptyObject(map[string]any{}))
	assert.True(t, IsEmptyObject([]int{}))
	assert.True(t, IsEmptyObject(model.NotFound[model.User]()))

	assert.False(t, IsEmptyObject(model.User{ID: 1}))
	assert.False(t, IsEmptyObject(map[string]any{"id": 1}))
	assert.False(t, IsEmptyObject(model.Found(model.User{})))
}
