package model

import "fmt"

// UserLookupKey is the closed set of unique user attributes that may be used
// to look a user up. Only these ever reach query construction.
type UserLookupKey string

const (
	LookupUsername UserLookupKey = "username"
	LookupEmail    UserLookupKey = "email"
	LookupNickname UserLookupKey = "nickname"
)

// UserLookupKeys lists the keys in the order uniqueness is probed.
var UserLookupKeys = []UserLookupKey{LookupUsername, LookupEmail, LookupNickname}

var lookupColumns = map[UserLookupKey]string{
	LookupUsername: "username",
	LookupEmail:    "email",
	LookupNickname: "nickname",
}

// ParseUserLookupKey maps a property name onto a lookup key.
func ParseUserLookupKey(s string) (UserLookupKey, error) {
	key := UserLookupKey(s)
	if _, ok := lookupColumns[key]; !ok {
		return "", fmt.Errorf("unsupported user lookup key %q", s)
	}
	return key, nil
}

// Column returns the app_user column backing the key.
func (k UserLookupKey) Column() (string, bool) {
	col, ok := lookupColumns[k]
	return col, ok
}

// Value returns the user's value for the key.
func (k UserLookupKey) Value(u User) string {
	switch k {
	case LookupUsername:
		return u.Username
	case LookupEmail:
		return u.Email
	case LookupNickname:
		return u.Nickname
	}
	return ""
}
