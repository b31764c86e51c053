package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrProfileLimitReached = errors.New("free tier allows only one custom profile")

	ErrValidationNoDeviceID         = errors.New("no device ID provided")
	ErrValidationNoProfileName      = errors.New("no profile name provided")
	ErrValidationBadRulesJSON       = errors.New("profile rules must be a valid JSON object")
	ErrValidationNoAppPackage       = errors.New("no app package provided")
	ErrValidationNoVIPIdentifier    = errors.New("no VIP identifier provided")
	ErrValidationBadVIPPriority     = errors.New("VIP priority must be between 1 and 5")
	ErrValidationBadSyncItem        = errors.New("sync items must carry a local ID and a type")
	ErrValidationPartialCredentials = errors.New("email and password must be provided together")
)
