package types

import (
	"errors"
	"net/http"
	"testing"

	appErr "github.com/mogith007/skillswap/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFromErrorMapsCodes(t *testing.T) {
	cases := map[appErr.Code]int{
		appErr.CodeInvalid:      http.StatusBadRequest,
		appErr.CodeUnauthorized: http.StatusUnauthorized,
		appErr.CodeForbidden:    http.StatusForbidden,
		appErr.CodeNotFound:     http.StatusNotFound,
		appErr.CodeConflict:     http.StatusConflict,
	}
	for code, want := range cases {
		status, resp := FromError(appErr.New(code, "boom"))
		require.Equal(t, want, status, code)
		require.False(t, resp.Success)
		require.Equal(t, "boom", resp.Message)
	}
}

func TestFromErrorHidesInternals(t *testing.T) {
	status, resp := FromError(appErr.Wrap(errors.New("pq: relation missing"), appErr.CodeInternal, "list users failed"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, internalMessage, resp.Message)

	status, resp = FromError(errors.New("plain"))
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, internalMessage, resp.Message)
}

func TestFromErrorCarriesViolations(t *testing.T) {
	_, resp := FromError(appErr.Invalid("Validation failed", []string{"email: must be a valid email"}))
	require.Equal(t, []string{"email: must be a valid email"}, resp.Errors)
}
