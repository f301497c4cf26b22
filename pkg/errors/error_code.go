package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidSnapshot      ErrorCode = 102
	ErrCodeVersionMismatch      ErrorCode = 103

	// Position errors (200-299)
	ErrCodeAlreadyHeld ErrorCode = 200
	ErrCodeNothingHeld ErrorCode = 201

	// Trading errors (300-399)
	ErrCodeMinimumNotReached ErrorCode = 300
	ErrCodeUpstreamFailure   ErrorCode = 301
	ErrCodeOrderFailed       ErrorCode = 302
	ErrCodeStrategyCompleted ErrorCode = 303

	// Precision errors (400-499)
	ErrCodePrecisionConversion ErrorCode = 400

	// Ledger errors (500-599)
	ErrCodeLedgerFailed ErrorCode = 500
)
