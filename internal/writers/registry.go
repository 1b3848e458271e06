package writers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Handle is an append-mode output stream owned by a Registry. Exactly one
// handle exists per path between CloseAll calls.
type Handle struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

// Path returns the output file path this handle writes to.
func (h *Handle) Path() string {
	return h.path
}

// WriteLine appends one newline-terminated line and flushes it straight to
// disk, so partial reports survive if the process is interrupted mid-run.
// It returns the number of bytes written, newline included.
func (h *Handle) WriteLine(line string) (int, error) {
	n, err := h.buf.WriteString(line)
	if err != nil {
		return n, fmt.Errorf("writing %s: %w", h.path, err)
	}
	if err := h.buf.WriteByte('\n'); err != nil {
		return n, fmt.Errorf("writing %s: %w", h.path, err)
	}
	if err := h.buf.Flush(); err != nil {
		return n + 1, fmt.Errorf("flushing %s: %w", h.path, err)
	}
	return n + 1, nil
}

// Flush forces any buffered bytes to disk.
func (h *Handle) Flush() error {
	if err := h.buf.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", h.path, err)
	}
	return nil
}

// Close flushes and releases the underlying file. After Close the handle
// must not be written to; obtain a fresh one from the registry instead.
func (h *Handle) Close() error {
	if err := h.buf.Flush(); err != nil {
		h.file.Close()
		return fmt.Errorf("flushing %s: %w", h.path, err)
	}
	if err := h.file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", h.path, err)
	}
	return nil
}

// Registry maps output paths to open handles, guaranteeing at most one open
// writer per path. All report sections for a service funnel through the same
// handle regardless of which job produced them.
type Registry struct {
	mu   sync.Mutex
	open map[string]*Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{open: make(map[string]*Handle)}
}

// Get returns the handle already registered for path, or opens a new
// append-mode handle, registers it, and returns it. The file and its parent
// directory are created if absent; existing content is never truncated.
func (r *Registry) Get(path string) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.open[path]; ok {
		return h, nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory for %s: %w", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	h := &Handle{path: path, file: f, buf: bufio.NewWriter(f)}
	r.open[path] = h
	return h, nil
}

// Len returns the number of handles currently open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.open)
}

// Paths returns the open output paths, sorted.
func (r *Registry) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	paths := make([]string, 0, len(r.open))
	for p := range r.open {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// CloseAll closes every registered handle and clears the table, so a
// subsequent Get re-opens the file rather than reusing a closed handle.
// Per-handle close errors are collected and joined.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := make([]string, 0, len(r.open))
	for p := range r.open {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var errs []error
	for _, p := range paths {
		if err := r.open[p].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.open = make(map[string]*Handle)
	return errors.Join(errs...)
}
