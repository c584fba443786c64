package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatabaseError      = errors.New("database error")
	ErrUploadFailed       = errors.New("upload failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailNotAllowed    = errors.New("email is not on the guest list")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtp         = errors.New("invalid or expired code")
	ErrMailFailed         = errors.New("could not send sign-in email")

	ErrTripNotFound       = errors.New("trip not found")
	ErrAlbumNotFound      = errors.New("album not found")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrGiftLocked         = errors.New("gift is still locked")
	ErrCapsuleNotFound    = errors.New("capsule not found")
	ErrCapsuleLocked      = errors.New("capsule is still locked")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrBucketItemNotFound = errors.New("bucket list item not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrTriviaNotFound     = errors.New("trivia question not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidMood        = errors.New("invalid mood")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
)
