package obslog

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Logger wraps an independent *gologger.Logger with a fixed key/value
// argument convention layered over gologger's Event.Str chaining, so call
// sites look like a standard structured logger instead of threading
// *gologger.Event values through the engine.
type Logger struct {
	inner *gologger.Logger
}

// New wraps l. A nil l gets a fresh, silenced gologger.Logger rather than
// falling back to gologger.DefaultLogger: this adapter never reads from
// or writes to gologger's process-wide singleton.
func New(l *gologger.Logger) *Logger {
	if l == nil {
		l = gologger.NewLogger()
		l.SetMaxLevel(levels.LevelSilent)
	}
	return &Logger{inner: l}
}

// Debug logs at debug level with structured key/value pairs.
func (l *Logger) Debug(msg string, args ...any) { emit(l.inner.Debug(), msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { emit(l.inner.Info(), msg, args...) }

// Warning logs at warn level.
func (l *Logger) Warning(msg string, args ...any) { emit(l.inner.Warning(), msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { emit(l.inner.Error(), msg, args...) }

// emit attaches args as alternating key/value pairs to ev via Str, then
// writes msg. A trailing unpaired key is rendered with an empty value.
func emit(ev *gologger.Event, msg string, args ...any) {
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		value := ""
		if i+1 < len(args) {
			value = fmt.Sprint(args[i+1])
		}
		ev = ev.Str(key, value)
	}
	ev.Msg(msg)
}
