// Package logging is the severity-gated formatted-text sink every
// technique reports its deductions through. It wraps zerolog for actual
// emission but keeps the original engine's seven-level, process-wide
// gate so log line text (part of this engine's observable surface)
// stays exactly as documented.
package logging

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Level mirrors the original engine's LogLevel enum.
type Level int

const (
	Never Level = iota
	Fatal
	Error
	Warning
	Info
	Debug
	Trace
)

func (l Level) String() string {
	switch l {
	case Never:
		return "Never"
	case Fatal:
		return "Fatal"
	case Error:
		return "Error"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	case Debug:
		return "Debug"
	case Trace:
		return "Trace"
	default:
		return "Unknown"
	}
}

// ParseLevel accepts both the single-letter CLI tokens (§6) and the
// full names.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "f", "Fatal":
		return Fatal, true
	case "e", "Error":
		return Error, true
	case "w", "Warning":
		return Warning, true
	case "i", "Info":
		return Info, true
	case "d", "Debug":
		return Debug, true
	case "t", "Trace":
		return Trace, true
	default:
		return Never, false
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Fatal:
		return zerolog.FatalLevel
	case Error:
		return zerolog.ErrorLevel
	case Warning:
		return zerolog.WarnLevel
	case Info:
		return zerolog.InfoLevel
	case Debug:
		return zerolog.DebugLevel
	case Trace:
		return zerolog.TraceLevel
	default:
		return zerolog.NoLevel
	}
}

var (
	mu         sync.Mutex
	level      = Info
	printLevel = false
	sink       zerolog.Logger
)

func init() {
	var w = os.Stderr
	var out zerolog.ConsoleWriter
	if isatty.IsTerminal(w.Fd()) {
		out = zerolog.ConsoleWriter{Out: colorable.NewColorable(w), TimeFormat: "15:04:05"}
	} else {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}
	sink = zerolog.New(out).With().Timestamp().Logger()
}

// SetLevel sets the process-wide severity gate; messages below it are
// dropped. Not thread-safe across goroutines, by design parity with the
// original engine's module-level state (§5).
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// CurrentLevel returns the active gate.
func CurrentLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// SetShouldPrintLogLevel turns the "Level: " message prefix on or off.
func SetShouldPrintLogLevel(b bool) {
	mu.Lock()
	printLevel = b
	mu.Unlock()
}

// QuietlyBifurcate runs fn with the gate temporarily raised to Fatal
// when quiet is true, restoring the previous level once fn returns —
// the bifurcation recursion's "quiet bifurcation" option (§4.4, §5).
func QuietlyBifurcate(quiet bool, fn func()) {
	if !quiet {
		fn()
		return
	}
	prev := CurrentLevel()
	SetLevel(Fatal)
	defer SetLevel(prev)
	fn()
}

// Log emits a formatted message at the given severity if the gate
// allows it.
func Log(l Level, format string, args ...any) {
	mu.Lock()
	cur := level
	show := printLevel
	mu.Unlock()

	if cur < l {
		return
	}

	msg := fmt.Sprintf(format, args...)
	if show {
		msg = l.String() + ": " + msg
	}
	sink.WithLevel(l.zerolog()).Msg(msg)
}
