// Package debuglog writes opt-in JSON-lines debug events to a file.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultPath is the fixed path for debug logs.
const DefaultPath = "daygrid-debug.log"

// Logger writes structured events. The zero value and a nil Logger discard everything.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
	session string
	now     func() time.Time
}

// Global debug logger instance
var std *Logger

// New returns an enabled logger writing to w.
func New(w io.Writer) *Logger {
	l := &Logger{
		w:       w,
		enabled: true,
		session: uuid.NewString(),
		now:     time.Now,
	}
	if c, ok := w.(io.Closer); ok {
		l.closer = c
	}
	return l
}

// Init sets up the global logger. When enabled is false every event is dropped.
func Init(enabled bool) error {
	return InitPath(enabled, DefaultPath)
}

// InitPath is Init with an explicit log file.
func InitPath(enabled bool, path string) error {
	if !enabled {
		std = &Logger{}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	std = New(f)
	std.Event("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// Set replaces the global logger and returns the previous one.
func Set(l *Logger) *Logger {
	prev := std
	std = l
	return prev
}

// Close ends the global log and closes its file.
func Close() {
	if std == nil || !std.enabled {
		return
	}
	std.Event("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if std.closer != nil {
		_ = std.closer.Close()
	}
	std = nil
}

// Enabled reports whether the global logger records events.
func Enabled() bool {
	return std != nil && std.enabled
}

// Session returns the session id of l.
func (l *Logger) Session() string {
	if l == nil {
		return ""
	}
	return l.session
}

// Event writes one entry.
func (l *Logger) Event(event string, data map[string]any) {
	if l == nil || !l.enabled || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":     l.seq,
		"ts":      l.now().Format("15:04:05.000"),
		"event":   event,
		"session": l.session,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// Event writes an entry to the global logger.
func Event(event string, data map[string]any) {
	std.Event(event, data)
}

// KeyPress logs a key press.
func KeyPress(key string) {
	if !Enabled() {
		return
	}
	std.Event("KEY_PRESS", map[string]any{"key": key})
}

// AllocationChange logs an hours change for one activity.
func AllocationChange(activity string, from, to float64, reason string) {
	if !Enabled() {
		return
	}
	std.Event("ALLOCATION_CHANGE", map[string]any{
		"activity": activity,
		"from":     from,
		"to":       to,
		"reason":   reason,
	})
}

// GranularityChange logs a smallest-unit change in minutes.
func GranularityChange(from, to int) {
	if !Enabled() {
		return
	}
	std.Event("GRANULARITY_CHANGE", map[string]any{
		"from": from,
		"to":   to,
	})
}

// Persist logs a save attempt.
func Persist(total float64, unit int, err error) {
	if !Enabled() {
		return
	}
	data := map[string]any{
		"total": total,
		"unit":  unit,
		"ok":    err == nil,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	std.Event("PERSIST", data)
}

// LoadFallback logs stored data that could not be read.
func LoadFallback(err error) {
	if !Enabled() || err == nil {
		return
	}
	std.Event("LOAD_FALLBACK", map[string]any{"error": err.Error()})
}

// Import logs an import from path.
func Import(path string, err error) {
	transfer("IMPORT", path, err)
}

// Export logs an export to path.
func Export(path string, err error) {
	transfer("EXPORT", path, err)
}

func transfer(event, path string, err error) {
	if !Enabled() {
		return
	}
	data := map[string]any{
		"path": path,
		"ok":   err == nil,
	}
	if err != nil {
		data["error"] = err.Error()
	}
	std.Event(event, data)
}

// Reset logs a delete of all saved data.
func Reset(err error) {
	if !Enabled() {
		return
	}
	data := map[string]any{"ok": err == nil}
	if err != nil {
		data["error"] = err.Error()
	}
	std.Event("RESET", data)
}

// Error logs an error.
func Error(context string, err error) {
	if !Enabled() || err == nil {
		return
	}
	std.Event("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
