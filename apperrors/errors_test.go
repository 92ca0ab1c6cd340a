package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("wrapped app error keeps its kind", func(t *testing.T) {
		err := fmt.Errorf("register tourist: %w", Duplicate("account", "email", "email already registered"))
		assert.Equal(t, KindDuplicate, KindOf(err))
		assert.True(t, IsKind(err, KindDuplicate))
		assert.False(t, IsKind(err, KindValidation))
	})

	t.Run("plain error is internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to save profile", cause)

	assert.Equal(t, "failed to save profile: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "password too short", Validation("password", "password too short").Error())
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindValidation:          http.StatusBadRequest,
		KindDuplicate:           http.StatusBadRequest,
		KindInvalidInput:        http.StatusBadRequest,
		KindAuthentication:      http.StatusUnauthorized,
		KindNotRegistered:       http.StatusForbidden,
		KindPendingVerification: http.StatusForbidden,
		KindAccountInactive:     http.StatusForbidden,
		KindNotFound:            http.StatusNotFound,
		KindInternal:            http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
