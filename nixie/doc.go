// Package nixie drives a daisy chain of Smart Nixie Tube boards over a
// point-to-point serial link.
//
// Each board shows one digit with two decimal points, a PWM brightness
// level and an RGB backlight. The whole chain is updated by one framed
// command per Send:
//
//	$[DIGIT],[LDP],[RDP],[BRIGHTNESS],[RED],[GREEN],[BLUE] ... !
//
// with one $-prefixed fragment per tube, rightmost tube first, and a
// single '!' latch terminator.
//
// Basic usage:
//
//	port, err := serialport.Open("/dev/ttyUSB0")
//	if err != nil {
//		log.Fatal(err)
//	}
//	d, err := nixie.New(4, port, nixie.WithBrightness(128))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer d.Close()
//
//	d.SetNumber(1234)
//	if err := d.Send(); err != nil {
//		log.Fatal(err)
//	}
//
// Close blanks the chain and releases the port.
package nixie
