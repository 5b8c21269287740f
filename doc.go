// Package tm1637 controls a TM1637 four-digit 7-segment LED display.
//
// The TM1637 is driven over a two-wire clock/data bus bit-banged on
// two GPIO output lines. The bus resembles I²C (start and stop
// conditions, one clock pulse per bit) but has no address phase, sends
// bytes least significant bit first, and is write-only: the driver
// never samples the acknowledgement slot.
//
// # Display Characteristics
//
//   - 4 digit registers of 7 segments plus a decimal point each
//   - On clock modules the second digit's point drives the colon
//   - 8 brightness levels (0-7)
//   - Wide timing tolerance; 10µs between line transitions is ample
//
// # Hardware Connection
//
// Connect the display module to any two free GPIO lines:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V or 5V
//	CLK         → any GPIO output
//	DIO         → any GPIO output
//
// # Basic Usage
//
// With periph.io host pins:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/villeparamio/tm1637"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		clk := gpioreg.ByName("GPIO23")
//		dio := gpioreg.ByName("GPIO24")
//
//		dev, err := tm1637.New(clk, dio, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// 12:30 with the colon lit.
//		dev.Numbers(12, 30, true)
//	}
//
// On platforms where periph.io has no GPIO support (for example the
// Raspberry Pi 5), use the cdev subpackage, which requests lines from
// the Linux GPIO character device:
//
//	clk, err := cdev.OpenPin(23)
//	...
//	dio, err := cdev.OpenPin(24)
//	...
//	dev, err := tm1637.New(clk, dio, nil)
//
// # Text and Numbers
//
// Show displays up to four characters; digits, letters, space, '-'
// and '*' (degree symbol) are supported:
//
//	dev.Show("cool", false)
//
// Numbers displays two values of -9..99 side by side, Temperature a
// value with a °C suffix ("lo"/"hi" outside -9..99), and Scroll
// animates longer text across the display:
//
//	dev.Numbers(12, 30, true)
//	dev.Temperature(21)
//	dev.Scroll("hello", 250*time.Millisecond)
//
// Write gives raw access to the segment bytes for custom patterns.
//
// # Transactions
//
// Every content change is a complete, self-contained bus transaction:
// data command, address plus segment payload, display control. The
// device holds no mode state the driver relies on between calls. A
// failed line write mid-transaction leaves the display content
// unspecified; reissue the operation to recover.
//
// # Concurrency
//
// A Dev owns its two lines exclusively and performs no locking.
// Serialize access in the caller, and never drive the same lines from
// more than one Dev.
//
// # Datasheet
//
// https://www.makerguides.com/wp-content/uploads/2019/08/TM1637-Datasheet.pdf
package tm1637
