package usecase

// DomainError is a business failure the caller can act on: bad input,
// invalid token, missing object.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a backend failure (database, storage): surfaced as a
// generic message, never retried automatically.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// Error codes used across the usecases.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeObjectNotFound = "OBJECT_NOT_FOUND"
	CodeDatabaseError  = "DATABASE_ERROR"
	CodeStorageError   = "STORAGE_ERROR"
)
