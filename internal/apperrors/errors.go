package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrFundInUse indicates that a fund cannot be deleted because transactions
// still reference it. Callers should offer deactivation as the remedy.
var ErrFundInUse = errors.New("fund has transactions attached; deactivate it instead of deleting")

// ErrInvalidRange indicates a reporting range whose start date is after its end date.
var ErrInvalidRange = errors.New("invalid date range: start is after end")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
