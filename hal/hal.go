package hal

import (
	"context"
	"fmt"
)

// Addr is a 7-bit bus slave address, right aligned.
type Addr uint8

// AddrMax is the highest valid 7-bit slave address.
const AddrMax Addr = 0x7F

// Reserved address ranges (general call, CBUS, high-speed master codes,
// 10-bit prefixes, device ID). These are documented for implementors but
// not enforced by Valid: the F-RAM device-ID port lives at 0x7C, inside
// the upper reserved range, and the driver must be able to address it.
const (
	ReservedLowMax  Addr = 0x07
	ReservedHighMin Addr = 0x78
)

// Valid reports whether a fits in 7 bits.
func (a Addr) Valid() bool {
	return a <= AddrMax
}

// Reserved reports whether a lies in one of the protocol-reserved ranges.
func (a Addr) Reserved() bool {
	return a <= ReservedLowMax || (a >= ReservedHighMin && a <= AddrMax)
}

// String returns the address in conventional hex notation.
func (a Addr) String() string {
	return fmt.Sprintf("0x%02X", uint8(a))
}

// Bus is the transaction primitive consumed by the driver.
//
// Tx performs one combined transaction against the slave at addr: a write
// phase transmitting w (skipped when w is empty), then a read phase filling
// r (skipped when r is empty), all under a single bus arbitration. Tx blocks
// until the transaction completes, fails, or ctx is cancelled.
//
// Transport failures should match the sentinel errors in
// [github.com/ardnew/fram/pkg] via errors.Is where the cause is known
// (ErrNACK, ErrArbitrationLost, ErrTimeout).
type Bus interface {
	Tx(ctx context.Context, addr Addr, w, r []byte) error

	// Close releases the underlying transport. Transactions issued after
	// Close fail with pkg.ErrBusClosed.
	Close() error
}
