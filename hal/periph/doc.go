// Package periph adapts periph.io i2c buses to the fram HAL.
//
// It is the hardware binding of the driver stack: any bus registered
// with periph.io's host drivers (Raspberry Pi, FT232H adapters, Linux
// i2c-dev, ...) can carry the F-RAM transactions.
//
//	bus, err := periph.Open("")       // first available bus
//	// or wrap a handle you already hold:
//	bus := periph.New(i2cBus)
//
//	dev := fram.New(bus, fram.Pins{A1: true})
//
// The periph.io transaction API takes no context; cancellation is
// observed between transactions only, and timeouts remain the
// transport's concern.
package periph
