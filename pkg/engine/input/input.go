package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// CommandPrefix switches the terminal reader into word mode: the following
// characters up to Enter are resolved with ResolveCommand.
const CommandPrefix = ':'

// DecodeKey turns one read from a raw-mode terminal into a binding code.
// It returns "" for sequences it does not know.
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	if b[0] == 0x1b {
		if len(b) == 1 {
			return "escape"
		}
		// CSI (ESC [) and SS3 (ESC O) sequences
		if len(b) >= 3 && (b[1] == '[' || b[1] == 'O') {
			switch b[2] {
			case 'A':
				return "arrow_up"
			case 'B':
				return "arrow_down"
			case 'C':
				return "arrow_right"
			case 'D':
				return "arrow_left"
			case 'Z':
				return "shift_tab"
			}
			if len(b) >= 5 && b[2] == '2' && b[3] == '0' && b[4] == '~' {
				return "f9"
			}
		}
		return ""
	}

	switch c := b[0]; {
	case c == 3:
		return "ctrl_c"
	case c == '\r' || c == '\n':
		return "enter"
	case c == '\t':
		return "tab"
	case c == ' ':
		return "space"
	case c >= 'A' && c <= 'Z':
		return string(c + ('a' - 'A'))
	case c > 32 && c < 127:
		return string(c)
	}
	return ""
}

// Terminal reads key presses from a raw-mode terminal and turns them into
// intents. Start puts the terminal in raw mode; Stop restores it.
type Terminal struct {
	in   *os.File
	echo io.Writer

	mu       sync.Mutex
	oldState *term.State
	events   chan Intent
	started  bool
}

// NewTerminal creates a reader over in, echoing typed words to echo.
func NewTerminal(in *os.File, echo io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		echo:   echo,
		events: make(chan Intent, 16),
	}
}

// Start switches the terminal to raw mode and begins reading.
func (t *Terminal) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return nil
	}

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("set terminal to raw mode: %w", err)
	}
	t.oldState = oldState
	t.started = true

	go t.readLoop()
	return nil
}

// Stop restores the terminal to the state it had before Start.
func (t *Terminal) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started || t.oldState == nil {
		return nil
	}
	t.started = false
	return term.Restore(int(t.in.Fd()), t.oldState)
}

// Next blocks until the next intent or until ctx is done.
func (t *Terminal) Next(ctx context.Context) (Intent, error) {
	select {
	case <-ctx.Done():
		return Intent{}, ctx.Err()
	case intent, ok := <-t.events:
		if !ok {
			return Intent{}, io.EOF
		}
		return intent, nil
	}
}

func (t *Terminal) readLoop() {
	defer close(t.events)

	buf := make([]byte, 16)
	var word []byte
	inWord := false

	for {
		n, err := t.in.Read(buf)
		if err != nil {
			return
		}
		chunk := buf[:n]

		if inWord {
			switch code := DecodeKey(chunk); code {
			case "enter":
				inWord = false
				fmt.Fprint(t.echo, "\r\n")
				t.emit(Intent{Action: ResolveCommand(string(word))})
				word = word[:0]
			case "escape", "ctrl_c":
				inWord = false
				word = word[:0]
				fmt.Fprint(t.echo, "\r\n")
			default:
				for _, b := range chunk {
					if b == 127 || b == 8 {
						if len(word) > 0 {
							word = word[:len(word)-1]
							fmt.Fprint(t.echo, "\b \b")
						}
						continue
					}
					if b >= 32 && b < 127 {
						word = append(word, b)
						fmt.Fprint(t.echo, string(b))
					}
				}
			}
			continue
		}

		if chunk[0] == CommandPrefix {
			inWord = true
			fmt.Fprint(t.echo, string(CommandPrefix))
			continue
		}

		intent := FromCode(DeviceTerminal, DecodeKey(chunk))
		if intent.Action != ActionNone {
			t.emit(intent)
		}
	}
}

func (t *Terminal) emit(intent Intent) {
	select {
	case t.events <- intent:
	case <-time.After(time.Second):
		// Nobody is reading; drop the key rather than wedge the reader.
	}
}
