// Package common defines the sentinel errors shared by the storage layer,
// the panel and the CLI. Match them with errors.Is.
package common

import "errors"

var (
	// Storage errors.
	ErrorNotFound = errors.New("not found")

	// Panel errors, one per user-facing failure.
	ErrorValidation         = errors.New("validation error")
	ErrorCredentialMismatch = errors.New("credential mismatch")

	// ErrorCorruptRecord means a stored value could not be decoded.
	ErrorCorruptRecord = errors.New("corrupt record")
)
