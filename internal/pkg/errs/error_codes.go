/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both inside the
server and in responses to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrRequestEntityTooLarge indicates that the request body exceeded the server limit.
	ErrRequestEntityTooLarge = 1006

	// ErrRateLimitExceeded indicates that the request rate exceeded the configured limit.
	ErrRateLimitExceeded = 1007

	// ErrNotFound indicates that the requested route or resource does not exist.
	ErrNotFound = 1008
)

// 2xxx: Reservation, Contact, and Chat Business Errors
const (
	// ErrReservationFieldsMissing indicates that a required reservation field is empty.
	ErrReservationFieldsMissing = 2101

	// ErrReservationDatesInvalid indicates check-in/check-out dates that violate
	// the booking rules (past check-in, or check-out not after check-in).
	ErrReservationDatesInvalid = 2102

	// ErrRoomTypeInvalid indicates an unknown room category in a reservation inquiry.
	ErrRoomTypeInvalid = 2103

	// ErrContactFieldsMissing indicates that a required contact form field is empty.
	ErrContactFieldsMissing = 2104

	// ErrMessageContentTooLong indicates a chat message above the maximum length.
	ErrMessageContentTooLong = 2201
)

// 3xxx: Account and Session Errors
const (
	// ErrInvalidName indicates a registration name shorter than the minimum length.
	ErrInvalidName = 3101

	// ErrInvalidEmail indicates a syntactically invalid e-mail address.
	ErrInvalidEmail = 3102

	// ErrInvalidPassword indicates a password that fails the strength rules.
	ErrInvalidPassword = 3103

	// ErrDuplicateEmail indicates a registration attempt with an e-mail already on file.
	ErrDuplicateEmail = 3104

	// ErrInvalidCredentials covers both unknown e-mail and wrong password on login.
	// The two cases are deliberately not distinguished in responses.
	ErrInvalidCredentials = 3105

	// ErrUserNotFound indicates that the account referenced by a session no longer exists.
	ErrUserNotFound = 3106

	// ErrAlreadyLoggedIn indicates a register/login attempt from an authenticated session.
	ErrAlreadyLoggedIn = 3107

	// ErrUnauthorized indicates a missing or invalid session on a guarded route.
	ErrUnauthorized = 3108
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000

	// ErrFileStorageFailed indicates a failure talking to the picture object store.
	ErrFileStorageFailed = 5001
)
