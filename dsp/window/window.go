// Package window provides Window Functions for singnal analysis
//
// See https://wikipedia.org/wiki/Window_function
package window

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/window"
)

// Function is a function that will do window things for you
type Function func(buf []float64)

// Rectangle is just do nothing
func Rectangle(buf []float64) {
	// do nothing
}

// Hamming modifies the buffer to a symmetric Hamming window
// (0.54 - 0.46*cos(2*pi*n/(N-1))).
func Hamming(buf []float64) {
	if len(buf) < 2 {
		return
	}

	window.Hamming(buf)
}

// Hann modifies the buffer to a Hann window
func Hann(buf []float64) {
	if len(buf) < 2 {
		return
	}

	window.Hann(buf)
}

// Blackman modifies the buffer to a Blackman window
func Blackman(buf []float64) {
	if len(buf) < 2 {
		return
	}

	window.Blackman(buf)
}

// Lanczos modifies the buffer to a Lanczos window
func Lanczos(buf []float64) {
	if len(buf) < 2 {
		return
	}

	window.Lanczos(buf)
}

var functions = map[string]Function{
	"rectangle": Rectangle,
	"hamming":   Hamming,
	"hann":      Hann,
	"blackman":  Blackman,
	"lanczos":   Lanczos,
}

// Names returns the names accepted by Parse.
func Names() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Parse returns the window function with the given name (case-insensitive).
func Parse(name string) (Function, error) {
	fn, ok := functions[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown window function %q", name)
	}

	return fn, nil
}
