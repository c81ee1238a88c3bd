package scenario

import "errors"

// Scenario errors
var (
	ErrUnknownOp          = errors.New("unknown operation")
	ErrInvalidOperand     = errors.New("invalid operand")
	ErrInvalidExpectation = errors.New("invalid expectation")
	ErrEmptyScenario      = errors.New("scenario has no cases")
)
