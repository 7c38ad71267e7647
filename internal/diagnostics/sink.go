// Package diagnostics is the append-only, timestamped log sink used for boot status,
// registration decisions and error traces. Nothing in here ever returns an error to the
// caller: a log line that cannot be written is dropped.
package diagnostics

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
)

const (
	BootFile      = "MegaStones_boot.txt"
	RegisterFile  = "MegaStones_register_log.txt"
	ErrorFile     = "MegaStones_errorlog.txt"
	ItemDebugFile = "MegaStones_itemdebug.txt"
)

// Sink receives diagnostics from the engine
type Sink interface {
	// Boot records an early status line
	Boot(format string, args ...any)

	// Logf records a progress line (registration, icons, auto-equip)
	Logf(format string, args ...any)

	// Error records an error with where it happened and a stack trace
	Error(err error, where string)

	// Dump replaces a named debug file with the given lines
	Dump(name string, lines []string)
}

// FileSink writes each stream to its own file under Dir
type FileSink struct {
	Dir string

	mu sync.Mutex
}

// NewFileSink creates a sink rooted at dir ("" means the working directory)
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Boot appends to the boot file
func (s *FileSink) Boot(format string, args ...any) {
	s.appendLines(BootFile, fmt.Sprintf(format, args...))
}

// Logf appends to the register log
func (s *FileSink) Logf(format string, args ...any) {
	s.appendLines(RegisterFile, fmt.Sprintf(format, args...))
}

// Error appends the error, its type and the current stack to the error log
func (s *FileSink) Error(err error, where string) {
	if err == nil {
		return
	}
	s.appendLines(ErrorFile,
		where,
		fmt.Sprintf("%T: %v", err, err),
		strings.TrimRight(string(debug.Stack()), "\n"),
		strings.Repeat("-", 80),
	)
}

// Dump rewrites name with lines
func (s *FileSink) Dump(name string, lines []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = os.WriteFile(s.path(name), []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}

func (s *FileSink) appendLines(name string, lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	logger := log.New(f, "", log.LstdFlags)
	logger.Print(lines[0])
	for _, line := range lines[1:] {
		_, _ = fmt.Fprintln(f, line)
	}
}

func (s *FileSink) path(name string) string {
	if s.Dir == "" {
		return name
	}
	return filepath.Join(s.Dir, name)
}

// Nop discards everything
type Nop struct{}

func (Nop) Boot(string, ...any) {}
func (Nop) Logf(string, ...any) {}
func (Nop) Error(error, string) {}
func (Nop) Dump(string, []string) {}

// Recorder keeps lines in memory; tests use it to assert on log output
type Recorder struct {
	mu     sync.Mutex
	Lines  []string
	Errors []string
	Dumps  map[string][]string
}

func (r *Recorder) Boot(format string, args ...any) {
	r.record(fmt.Sprintf(format, args...))
}

func (r *Recorder) Logf(format string, args ...any) {
	r.record(fmt.Sprintf(format, args...))
}

func (r *Recorder) Error(err error, where string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", where, err))
}

func (r *Recorder) Dump(name string, lines []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Dumps == nil {
		r.Dumps = make(map[string][]string)
	}
	r.Dumps[name] = append([]string(nil), lines...)
}

// Contains reports whether any recorded line contains substr
func (r *Recorder) Contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range r.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func (r *Recorder) record(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, line)
}
