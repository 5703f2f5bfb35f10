package errors

import (
	"net/http"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Invalid login or password",
		http.StatusUnauthorized,
	)

	ErrUserDeactivated = apperror.New(
		"USER_DEACTIVATED",
		"This account has not been activated",
		http.StatusForbidden,
	)
)
