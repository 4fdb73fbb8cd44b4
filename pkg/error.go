package pkg

import "errors"

// Two-wire bus transport and driver errors.
var (
	// ErrOutOfRange indicates a span outside the device's address space.
	ErrOutOfRange = errors.New("address out of range")

	// ErrNACK indicates the addressed device did not acknowledge.
	ErrNACK = errors.New("no acknowledgment")

	// ErrArbitrationLost indicates the master lost bus arbitration.
	ErrArbitrationLost = errors.New("bus arbitration lost")

	// ErrTimeout indicates a transaction timeout in the transport.
	ErrTimeout = errors.New("transaction timeout")

	// ErrCancelled indicates a cancelled transaction.
	ErrCancelled = errors.New("transaction cancelled")

	// ErrBusClosed indicates the bus handle has been closed.
	ErrBusClosed = errors.New("bus closed")

	// ErrInvalidAddress indicates a slave address outside the 7-bit range.
	ErrInvalidAddress = errors.New("invalid slave address")

	// ErrAlreadyInitialized indicates a second initialization attempt.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrNotInitialized indicates use before initialization.
	ErrNotInitialized = errors.New("not initialized")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrProtocol indicates a transaction violating the bus protocol.
	ErrProtocol = errors.New("protocol error")
)

// TxStatus represents the completion status of a bus transaction.
type TxStatus int

// Transaction status values.
const (
	TxStatusSuccess         TxStatus = iota // Transaction completed successfully
	TxStatusError                           // Transaction failed with error
	TxStatusNACKAddr                        // Address byte not acknowledged
	TxStatusNACKData                        // Data byte not acknowledged
	TxStatusArbitrationLost                 // Arbitration lost to another master
	TxStatusTimeout                         // Transaction timed out
	TxStatusCancelled                       // Transaction was cancelled
)

// String returns a string representation of the transaction status.
func (s TxStatus) String() string {
	switch s {
	case TxStatusSuccess:
		return "success"
	case TxStatusError:
		return "error"
	case TxStatusNACKAddr:
		return "nack-addr"
	case TxStatusNACKData:
		return "nack-data"
	case TxStatusArbitrationLost:
		return "arbitration-lost"
	case TxStatusTimeout:
		return "timeout"
	case TxStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Error returns the corresponding error for the transaction status.
func (s TxStatus) Error() error {
	switch s {
	case TxStatusSuccess:
		return nil
	case TxStatusNACKAddr, TxStatusNACKData:
		return ErrNACK
	case TxStatusArbitrationLost:
		return ErrArbitrationLost
	case TxStatusTimeout:
		return ErrTimeout
	case TxStatusCancelled:
		return ErrCancelled
	default:
		return ErrProtocol
	}
}
