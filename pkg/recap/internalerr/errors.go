package internalerr

import "errors"

// Sentinel errors for terminal pipeline failures
var (
	ErrNoMessages       = errors.New("no messages could be parsed from the transcript")
	ErrNoMessagesInYear = errors.New("no messages found in the requested year")
	ErrNoUserMessages   = errors.New("no messages remain after member filtering")
)
