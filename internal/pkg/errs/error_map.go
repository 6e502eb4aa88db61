/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to CustomError templates, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError template for every application error code.
// Entries without an explicit Status default to HTTP 200 with a business code,
// matching how the frontend distinguishes outcomes.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large."},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrNotFound:              {Code: ErrNotFound, Message: "Page not found.", Status: http.StatusNotFound},

	// 2xxx: Reservation, Contact, and Chat Business Errors
	ErrReservationFieldsMissing: {Code: ErrReservationFieldsMissing, Message: "Please fill in all required fields."},
	ErrReservationDatesInvalid:  {Code: ErrReservationDatesInvalid, Message: "Please review the check-in and check-out dates."},
	ErrRoomTypeInvalid:          {Code: ErrRoomTypeInvalid, Message: "Invalid room type."},
	ErrContactFieldsMissing:     {Code: ErrContactFieldsMissing, Message: "Please fill in all required fields."},
	ErrMessageContentTooLong:    {Code: ErrMessageContentTooLong, Message: "Message is too long."},

	// 3xxx: Account and Session Errors
	ErrInvalidName:        {Code: ErrInvalidName, Message: "Name must have at least 3 characters."},
	ErrInvalidEmail:       {Code: ErrInvalidEmail, Message: "Invalid e-mail address."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Password must have at least 8 characters, including a letter, a number and a special character."},
	ErrDuplicateEmail:     {Code: ErrDuplicateEmail, Message: "An account with this e-mail already exists."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect e-mail or password."},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "Account not found."},
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 5xxx: Internal System Errors
	ErrUnknown:           {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrFileStorageFailed: {Code: ErrFileStorageFailed, Message: "Picture upload failed. Please try again."},
}
