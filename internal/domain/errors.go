package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the core returns wraps exactly one of these, so
// callers classify with errors.Is and never need to parse messages.
var (
	ErrValidation     = errors.New("validation error")
	ErrAccount        = errors.New("account error")
	ErrTransaction    = errors.New("transaction error")
	ErrAuthentication = errors.New("authentication error")
	ErrSystem         = errors.New("system error")
)

// Validation errors
var (
	ErrAmountNotPositive      = fmt.Errorf("%w: transaction amount must be positive", ErrValidation)
	ErrAmountTooSmall         = fmt.Errorf("%w: transaction amount is below the minimum", ErrValidation)
	ErrAmountTooLarge         = fmt.Errorf("%w: transaction amount exceeds the maximum", ErrValidation)
	ErrInvalidAccountType     = fmt.Errorf("%w: account type must be SAVINGS or CHECKING", ErrValidation)
	ErrInitialDepositTooSmall = fmt.Errorf("%w: initial deposit is below the minimum balance", ErrValidation)
	ErrTooManyAccounts        = fmt.Errorf("%w: owner already holds the maximum number of accounts", ErrValidation)
	ErrEmptyAccountNumber     = fmt.Errorf("%w: account number cannot be empty", ErrValidation)
	ErrEmptyOwner             = fmt.Errorf("%w: account owner cannot be empty", ErrValidation)
	ErrMissingDateBound       = fmt.Errorf("%w: start and end dates are required", ErrValidation)
	ErrInvalidDateRange       = fmt.Errorf("%w: start date cannot be after end date", ErrValidation)
	ErrDailyLimitExceeded     = fmt.Errorf("%w: transaction would exceed the daily limit", ErrValidation)
	ErrInvalidTransactionKind = fmt.Errorf("%w: unsupported transaction kind", ErrValidation)
	ErrInvalidUsername        = fmt.Errorf("%w: invalid username", ErrValidation)
	ErrPasswordTooWeak        = fmt.Errorf("%w: password does not meet requirements", ErrValidation)
	ErrUsernameTaken          = fmt.Errorf("%w: username already registered", ErrValidation)
)

// Account errors
var (
	ErrAccountNotFound    = fmt.Errorf("%w: account not found", ErrAccount)
	ErrAccountNumberTaken = fmt.Errorf("%w: account number already registered", ErrAccount)
)

// Transaction errors
var (
	ErrBelowMinimumBalance = fmt.Errorf("%w: withdrawal would put the account below the minimum balance", ErrTransaction)
)

// Authentication errors
var (
	ErrNotAccountOwner    = fmt.Errorf("%w: account belongs to another user", ErrAuthentication)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuthentication)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrAuthentication)
	ErrExpiredToken       = fmt.Errorf("%w: token expired", ErrAuthentication)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrAuthentication)
)

// System errors
var (
	ErrAccountNumbersExhausted = fmt.Errorf("%w: could not allocate a unique account number", ErrSystem)
)
