package fram

import "github.com/ardnew/fram/hal"

// Device geometry for the FM24V10 family (1 Mbit).
const (
	// Capacity is the size of the storage array in bytes.
	Capacity = 128 * 1024

	// BankSize is the span addressable under one slave address. The
	// seventeenth address bit selects the bank and travels in the slave
	// address byte, not in the two memory address bytes.
	BankSize = 64 * 1024

	// bankCount bounds the number of transactions any transfer can need.
	bankCount = Capacity / BankSize

	// memAddrBytes is the size of the in-bank address sent on the wire,
	// most-significant byte first.
	memAddrBytes = 2

	// devTypeCode is the fixed device type prefix occupying the four
	// most-significant bits of the 7-bit slave address.
	devTypeCode = 0b1010
)

// DeviceIDAddr is the reserved slave address that answers JEDEC
// device-ID reads for the F-RAM family.
const DeviceIDAddr hal.Addr = 0x7C
