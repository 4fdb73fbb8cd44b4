// Package mem provides an in-process simulated two-wire bus for tests
// and examples.
//
// [Bus] implements [hal.Bus] over a registry of attached [Device]
// handlers keyed by slave address. It records every transaction for
// assertions and can inject transport failures at a chosen transaction.
//
// [Chip] is a behavioral model of an FM24V10-class F-RAM: two banks
// selected by the slave-address LSB, a 16-bit big-endian address latch
// with sequential access wrapping inside the addressed bank, immediate
// write commit, and the reserved device-ID port.
//
//	bus := mem.NewBus()
//	chip := mem.NewChip(fram.Pins{})
//	chip.Attach(bus)
//	dev := fram.New(bus, fram.Pins{})
package mem
