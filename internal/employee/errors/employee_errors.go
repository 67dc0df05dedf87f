package employeeerrors

import (
	"fmt"
	"net/http"

	"hrms-lite/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee ID already exists",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email is already in use",
		http.StatusConflict,
	)
)

// EmployeeIDAlreadyExists names the offending id in the message while
// staying errors.Is-comparable to ErrEmployeeIDAlreadyExists.
func EmployeeIDAlreadyExists(id string) *apperror.AppError {
	return apperror.Wrap(
		ErrEmployeeIDAlreadyExists,
		apperror.CodeConflict,
		fmt.Sprintf("Employee ID '%s' already exists", id),
		http.StatusConflict,
	)
}

// EmailAlreadyInUse is the email counterpart of EmployeeIDAlreadyExists.
func EmailAlreadyInUse(email string) *apperror.AppError {
	return apperror.Wrap(
		ErrEmailAlreadyExists,
		apperror.CodeConflict,
		fmt.Sprintf("Email '%s' is already in use", email),
		http.StatusConflict,
	)
}
