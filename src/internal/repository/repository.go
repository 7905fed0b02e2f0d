package repository

import "errors"

// ErrTxConflict is returned when a guarded update inside a store transaction
// matches zero rows (a concurrent writer got there first). The whole
// transaction has been rolled back when this is returned.
var ErrTxConflict = errors.New("transaction conflict")
