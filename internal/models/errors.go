package models

import "fmt"

// StrategyError records one strategy's failure during an adviser run.
// The run continues past it; presentation of the error belongs to the
// caller (the bot forwards these to the operator chat).
type StrategyError struct {
	Label string `json:"strategy"`
	Err   error  `json:"-"`
	Stack string `json:"-"`
}

func (e StrategyError) Error() string {
	return fmt.Sprintf("strategy %s: %v", e.Label, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is / errors.As.
func (e StrategyError) Unwrap() error {
	return e.Err
}
