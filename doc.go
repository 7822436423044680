/*
Package motion converts platform multi-touch events into device independent
touch events and relays the platform gesture callbacks to an application
handler.

A Normalizer is bound to the rendering surface and to the device capabilities
once, then every raw event is converted with a single call:

	package main

	import (
		"fmt"

		"github.com/esimov/motion"
	)

	func main() {
		profile := motion.DefaultProfile()
		norm := motion.NewNormalizer(profile.Viewport(), profile.Config())

		ev := &motion.MotionEvent{
			ActionWord: motion.CodeDown,
			Pointers:   []motion.Pointer{{ID: 0, X: 120, Y: 240, Pressure: 1}},
		}
		te := norm.Normalize(ev)
		fmt.Println(te.Action, te.Points[0].Position)
	}

The package also provides a command line interface normalizing recorded
event traces. To check the supported commands type:

	$ motion --help
*/
package motion
