package db

import (
	"errors"

	"github.com/lib/pq"
)

const (
	postgresUniqueValueViolationErrorCode = "23505"
	postgresSerializationFailureErrorCode = "40001"
	postgresDeadlockDetectedErrorCode     = "40P01"
)

func isErrorUniqueViolation(err error) bool {
	var psqlErr *pq.Error
	return errors.As(err, &psqlErr) && psqlErr.Code == postgresUniqueValueViolationErrorCode
}

// isErrorSerialization matches the conflicts a serializable transaction
// can run into; the transaction is safe to retry from the top.
func isErrorSerialization(err error) bool {
	var psqlErr *pq.Error
	if !errors.As(err, &psqlErr) {
		return false
	}
	return psqlErr.Code == postgresSerializationFailureErrorCode ||
		psqlErr.Code == postgresDeadlockDetectedErrorCode
}
