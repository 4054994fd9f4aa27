package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Reasons attached under MetaReason to separate battle failures that share a code
const (
	MetaReason = "reason"

	ReasonDataUnavailable  = "data_unavailable"
	ReasonInvalidSelection = "invalid_selection"
	ReasonBattleOver       = "battle_over"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
