package ui

import (
	"fmt"
	"io"
	"os"
)

// NoColor disables ANSI colors. It is set from VECMATH_NO_COLOR=1 at startup.
var NoColor = os.Getenv("VECMATH_NO_COLOR") == "1"

// RedWriter wraps an io.Writer and emits red-colored output.
type RedWriter struct{ w io.Writer }

func (r RedWriter) Write(p []byte) (int, error) {
	if NoColor {
		return r.w.Write(p)
	}
	out := append([]byte("\033[31m"), p...)
	out = append(out, []byte("\033[0m")...)
	if _, err := r.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewRedWriter returns a RedWriter wrapping the provided io.Writer.
func NewRedWriter(w io.Writer) RedWriter { return RedWriter{w: w} }

func colorf(color, format string, a ...interface{}) {
	if !NoColor {
		fmt.Print(color)
	}
	fmt.Printf(format, a...)
	if !NoColor {
		fmt.Print("\033[0m")
	}
}

// Debugf prints a yellow debug message when enabled is true.
func Debugf(enabled bool, format string, a ...interface{}) {
	if enabled {
		colorf("\033[33m", "[DEBUG] "+format, a...)
	}
}

// Greenf prints a light green message.
func Greenf(format string, a ...interface{}) {
	colorf("\033[92m", format, a...)
}

// Warningf prints a bright yellow/orange warning.
func Warningf(format string, a ...interface{}) {
	colorf("\033[93m", format, a...)
}
