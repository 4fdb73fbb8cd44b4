// Package fram implements a driver for FM24V10-class 1 Mbit serial
// ferroelectric non-volatile memories on a two-wire bus.
//
// The device stores 131,072 bytes addressed by a 17-bit linear offset,
// but only sixteen address bits travel in the memory address bytes of a
// transaction. The seventeenth bit selects one of two 65,536-byte banks
// and is encoded in the bus slave address itself, next to the two
// hardware address-select pins:
//
//	slave address = 1 0 1 0 A2 A1 B
//
// where B is the bank-select bit. A transfer that straddles the bank
// boundary therefore cannot be one bus transaction: the driver splits it
// into at most two bank-confined transactions and issues them in order.
//
// # Architecture
//
// Address arithmetic is kept separate from I/O:
//
//   - the transaction planner is a pure function from (offset, length)
//     to bank-confined transaction descriptors, testable without a bus
//   - [Device] owns a [hal.Bus] handle exclusively and executes planned
//     transactions sequentially, surfacing the first failure as a
//     [*BusError] without retrying
//
// # Usage
//
//	bus, _ := periph.Open("")
//	dev := fram.New(bus, fram.Pins{A1: false, A2: false})
//
//	if err := dev.Write(ctx, 0x1FFFF, []byte{0x42}); err != nil {
//	    // ...
//	}
//	b, err := dev.ReadByte(ctx, 0x1FFFF)
//
// [NewFile] wraps a Device in an io.ReadWriteSeeker for code that wants
// a stream view of the array; Device itself implements io.ReaderAt and
// io.WriterAt.
//
// # Failure semantics
//
// Operations are single-shot. Validation happens before any bus
// activity; an out-of-range span fails with pkg.ErrOutOfRange and has no
// side effects. A transport failure aborts the operation immediately:
// chunks transferred by earlier transactions remain (read bytes stay in
// the caller's buffer, written bytes stay committed in the device, which
// has no delayed write cycle). Retry policy belongs to the caller.
//
// Unlike EEPROM, the memory technology has no practical write-endurance
// limit, so the driver performs no wear-leveling or write caching.
package fram
