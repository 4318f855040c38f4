package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("record belongs to another user")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrCheckinNotFound        = errors.New("mood check-in doesn't exist")
	ErrCheckinClassified      = errors.New("mood check-in already classified")
	ErrSessionNotFound        = errors.New("exercise session doesn't exist")
	ErrPrescriptionNotFound   = errors.New("prescription doesn't exist")
	ErrFeedbackRecorded       = errors.New("feedback for prescription already recorded")
	ErrConsentRequired        = errors.New("consent required")
	ErrInvalidLagDays         = errors.New("lag days must be between 0 and 3")
	ErrClassificationDisabled = errors.New("classification disabled")
	ErrFutureDate             = errors.New("date cannot be in the future")
)
