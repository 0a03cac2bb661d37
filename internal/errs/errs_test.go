package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_StatusAndDefaultReason(t *testing.T) {
	cases := []struct {
		err    *HTTPError
		status int
		kind   Kind
	}{
		{NewBadRequestError(""), http.StatusBadRequest, KindBadRequest},
		{NewResourceNotFoundError(""), http.StatusNotFound, KindResourceNotFound},
		{NewResourcePersistenceError(""), http.StatusConflict, KindResourcePersistence},
		{NewAuthenticationError(""), http.StatusUnauthorized, KindAuthentication},
		{NewForbiddenError(""), http.StatusForbidden, KindForbidden},
		{NewInternalServerError(), http.StatusInternalServerError, KindInternalServer},
		{NewMethodNotImplementedError(""), http.StatusNotImplemented, KindMethodNotImplemented},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.Equal(t, tc.status, tc.err.Status)
			assert.Equal(t, tc.kind, tc.err.Kind)
			assert.Equal(t, UnspecifiedReason, tc.err.Reason)
			assert.NotEmpty(t, tc.err.Message)
		})
	}
}

func TestIs_MatchesByKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewResourceNotFoundError("user 7"))

	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.False(t, errors.Is(err, ErrBadRequest))
	assert.True(t, errors.Is(err, &HTTPError{}))
}

func TestWithReason_CopiesWithoutMutating(t *testing.T) {
	base := NewBadRequestError("")
	custom := base.WithReason("balance must be positive")

	assert.Equal(t, UnspecifiedReason, base.Reason)
	assert.Equal(t, "balance must be positive", custom.Reason)
	assert.Equal(t, base.Status, custom.Status)
}

func TestJSONShape(t *testing.T) {
	body, err := json.Marshal(NewResourcePersistenceError("The provided email is already taken."))
	require.NoError(t, err)

	assert.JSONEq(t, `{"message":"The resource was not persisted.","reason":"The provided email is already taken."}`, string(body))
}

func TestFromStatus(t *testing.T) {
	assert.Equal(t, KindResourceNotFound, FromStatus(http.StatusNotFound, "Route not found").Kind)
	assert.Equal(t, http.StatusMethodNotAllowed, FromStatus(http.StatusMethodNotAllowed, "").Status)
	assert.Equal(t, KindInternalServer, FromStatus(http.StatusBadGateway, "").Kind)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "METHOD_NOT_ALLOWED", MakeUpperCaseWithUnderscores("Method Not Allowed"))
}
