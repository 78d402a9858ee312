package ledger

import "errors"

var (
	ErrInvalidRecord = errors.New("invalid split record")
)
