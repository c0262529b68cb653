// Package eventlog records workflow events to an append-only
// newline-delimited JSON file, one file per session identity.
package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/brandresponse/brandintel/internal/model"
)

// Logger appends session events to a per-session log file. Entries are
// written and synced before the triggering action reports success, and are
// never rewritten or deleted; a new session always gets a new file.
type Logger struct {
	path      string
	sessionID string
	mu        sync.Mutex
}

// New creates the log file for a session and records the session_start
// event.
func New(dir, sessionID string) (*Logger, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	l := &Logger{
		path:      filepath.Join(dir, fmt.Sprintf("session_%s.log", sessionID)),
		sessionID: sessionID,
	}

	if err := l.Log(model.EventSessionStart, map[string]any{
		"session_id": sessionID,
	}); err != nil {
		return nil, err
	}
	return l, nil
}

// SessionID returns the session identity this log belongs to.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Log appends one event and syncs it to disk before returning.
func (l *Logger) Log(eventType model.EventType, details map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := model.SessionEvent{
		Timestamp: time.Now(),
		Type:      eventType,
		Details:   details,
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}
	return nil
}

// Read returns all events in this session's log in append order.
func (l *Logger) Read() ([]model.SessionEvent, error) {
	return ReadFile(l.path)
}

// ReadFile reads a session log file. Blank lines are skipped; a malformed
// line is an error since the log is never hand-edited.
func ReadFile(path string) ([]model.SessionEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var events []model.SessionEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event model.SessionEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("failed to parse log entry: %w", err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return events, nil
}
