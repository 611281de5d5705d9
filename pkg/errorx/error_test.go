package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", New(PermissionDenied, "Permission denied"))
	require.Equal(t, New(PermissionDenied, "Permission denied"), From(err))
	require.Equal(t, Unknown, From(errors.New("raw")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{code: BadRequest, want: http.StatusBadRequest},
		{code: Unauthenticated, want: http.StatusUnauthorized},
		{code: PermissionDenied, want: http.StatusForbidden},
		{code: Internal, want: http.StatusInternalServerError},
		{code: Unknown.Code, want: http.StatusInternalServerError},
		{code: MethodNotAllowed, want: http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HTTPStatus(tt.code))
	}
}

func TestWithDetails(t *testing.T) {
	base := New(BadRequest, "Invalid payload")
	withDetails := base.WithDetails([]string{"winnerAddress"})
	require.Nil(t, base.Details)
	require.Equal(t, []string{"winnerAddress"}, withDetails.Details)
	require.Equal(t, "Invalid payload", withDetails.Error())
}
