// Package gpio requests the button and indicator lines from a GPIO
// character device.
package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Consumer labels the lines this program holds in the kernel
const Consumer = "digitmatrix"

// Output requests offset on chip as an output driven low
func Output(chip string, offset int) (*gpiocdev.Line, error) {
	line, err := gpiocdev.RequestLine(chip, offset,
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, fmt.Errorf("failed to request output %s:%d: %w", chip, offset, err)
	}
	return line, nil
}

// Buttons requests offsets on chip as active-low pulled-up inputs reporting
// falling edges. All lines share one request, so handler is called from a
// single goroutine in event order.
func Buttons(chip string, offsets []int, handler gpiocdev.EventHandler) (*gpiocdev.Lines, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("no button lines given")
	}
	lines, err := gpiocdev.RequestLines(chip, offsets,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(handler),
		gpiocdev.WithConsumer(Consumer))
	if err != nil {
		return nil, fmt.Errorf("failed to request buttons %s:%v: %w", chip, offsets, err)
	}
	return lines, nil
}
