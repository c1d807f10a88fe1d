package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid           = errors.New("invalid parameters")
	ErrContactFieldsRequired  = errors.New("Name and email are required")
	ErrBookingFieldsRequired  = errors.New("Name, email, date, and time are required")
	ErrPostNotFound           = errors.New("post not found")
	ErrPasswordIncorrect      = errors.New("invalid email or password")
	ErrTokenRevoked           = errors.New("token has been revoked")
	ErrFileNotSupported       = errors.New("unsupported file type")
	ErrMediaStorageDisabled   = errors.New("media storage is not configured")
	ErrMigrationSourceInvalid = errors.New("legacy posts are not valid JSON")
	UnauthorizedError         = errors.New("unauthorized")
	UnExpectedError           = errors.New("unexpected error, please try again later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:           BadRequest,
	ErrContactFieldsRequired:  BadRequest,
	ErrBookingFieldsRequired:  BadRequest,
	ErrPostNotFound:           NotFound,
	ErrPasswordIncorrect:      Unauthorized,
	ErrTokenRevoked:           Unauthorized,
	ErrFileNotSupported:       BadRequest,
	ErrMediaStorageDisabled:   ServiceUnavailable,
	ErrMigrationSourceInvalid: BadRequest,
	UnauthorizedError:         Unauthorized,
	UnExpectedError:           InternalServerError,
}
