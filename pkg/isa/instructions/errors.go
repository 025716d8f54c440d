package instructions

import "errors"

var (
	ErrUnknownFormat     = errors.New("unknown instruction format")
	ErrDuplicateMnemonic = errors.New("duplicate mnemonic")
	ErrUnresolvedAlias   = errors.New("unresolved alias")
	ErrWidthMismatch     = errors.New("instruction width mismatch")
	ErrAliasConflict     = errors.New("alias conflicts with its target")
	ErrUnknownRole       = errors.New("unknown operand role")
	ErrInvalidLayout     = errors.New("invalid encoding layout")
)
