package matrix

import (
	"fmt"
	"math"
)

func ToIEEE754(f float32) uint32 {
	return math.Float32bits(f)
}

// IEEE754 returns each component rounded to float32 and rendered as 8 hex
// digits.
func IEEE754(v *Vector) []string {
	out := make([]string, v.Len())
	for i, val := range v.values {
		out[i] = fmt.Sprintf("%08X", ToIEEE754(float32(val)))
	}
	return out
}

// PrintIEEE prints the components with their IEEE754 hex form.
func PrintIEEE(v *Vector, title string) {
	// Orange
	fmt.Print("\033[38;5;208m")
	fmt.Println(MatrixLine)
	fmt.Println(title + " (IEEE754)")
	for i, hex := range IEEE754(v) {
		// Space flag keeps the decimal column aligned regardless of sign.
		fmt.Printf("[%03d]  % .12f  %s\n", i, v.values[i], hex)
	}
	fmt.Println(MatrixLine)
	fmt.Print("\033[0m")
}
