// Package hal defines the Hardware Abstraction Layer for two-wire
// (I2C-style) bus masters used by the fram driver.
//
// The HAL reduces the bus to its single relevant primitive: one combined
// transaction consisting of an optional write phase followed by an optional
// read phase, addressed to a 7-bit slave address and completed under a
// single bus arbitration.
//
// Implementations in this module:
//
//   - [github.com/ardnew/fram/hal/mem] - in-process simulated bus with
//     attachable device models, used by tests and examples
//   - [github.com/ardnew/fram/hal/periph] - adapter over periph.io buses
//     for real hardware
//
// The driver assumes exclusive ownership of the Bus handle it is given.
// If several drivers must share one physical bus, an external arbitration
// layer has to serialize their access; the HAL does not provide one.
package hal
