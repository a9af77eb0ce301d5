package ui

import (
	"sync"

	"github.com/eiannone/keyboard"
)

// Singleton buffered channel and one reader goroutine to avoid multiple opens
// and to make DrainKeys non-blocking.
var (
	keyCh     chan rune
	startOnce sync.Once

	openMu sync.Mutex
	opened bool
)

// StartKeyEvents returns a channel that emits single-key runes read without
// Enter. Enter is reported as '\r', Space as ' ' and ESC or Ctrl-C as 27. It
// initializes a single background reader the first time it is called. If the
// keyboard cannot be opened, or reading fails later, the channel is closed.
//
// The terminal stays in raw mode until StopKeyEvents is called.
func StartKeyEvents() chan rune {
	startOnce.Do(func() {
		keyCh = make(chan rune, 64)
		openMu.Lock()
		err := keyboard.Open()
		opened = err == nil
		openMu.Unlock()
		if err != nil {
			close(keyCh)
			return
		}
		go func() {
			for {
				char, key, err := keyboard.GetKey()
				if err != nil {
					close(keyCh)
					return
				}
				r, ok := keyRune(char, key)
				if !ok {
					continue
				}
				// Drop events if nobody is consuming.
				select {
				case keyCh <- r:
				default:
				}
			}
		}()
	})
	return keyCh
}

// StopKeyEvents restores the terminal if StartKeyEvents opened it. It is safe
// to call more than once and when the keyboard was never opened.
func StopKeyEvents() {
	openMu.Lock()
	defer openMu.Unlock()
	if !opened {
		return
	}
	opened = false
	_ = keyboard.Close()
}

// keyRune maps a key event to the rune delivered on the channel. Keys with no
// mapping are reported as not ok.
func keyRune(char rune, key keyboard.Key) (rune, bool) {
	switch key {
	case 0:
		return char, true
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		// Raw mode swallows SIGINT, so Ctrl-C quits like ESC.
		return 27, true
	case keyboard.KeyEnter:
		return '\r', true
	case keyboard.KeySpace:
		return ' ', true
	}
	return 0, false
}

// DrainKeys consumes any immediately available keys to avoid accidental
// triggers.
func DrainKeys() {
	ch := StartKeyEvents()
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
