package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidAccount  = errors.New("invalid account name")
)

// Fault classifies an operator-facing command failure.
type Fault string

const (
	FaultNoChange       Fault = "nochange"
	FaultBadParams      Fault = "badparams"
	FaultNeedMoreParams Fault = "needmoreparams"
	FaultNoPrivs        Fault = "noprivs"
	FaultNoSuchTarget   Fault = "nosuch_target"
	FaultUnknownCommand Fault = "unknown_command"
)
