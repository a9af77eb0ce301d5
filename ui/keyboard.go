package ui

// NextStep shows a green prompt and waits for a single key. It returns 'N'
// for next (Enter, space, N), 'C' to continue without further prompts, or 27
// for ESC / Q. If the keyboard is unavailable it returns 'C'.
func NextStep(message string) rune {
	Greenf("%s\n", message)
	DrainKeys()
	keyEvents := StartKeyEvents()
	for {
		k, ok := <-keyEvents
		if !ok {
			return 'C'
		}
		switch k {
		case 'N', 'n', ' ', '\r', '\n':
			return 'N'
		case 'C', 'c':
			return 'C'
		case 'Q', 'q', 27:
			return 27
		}
	}
}
