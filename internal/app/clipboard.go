package app

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrClipboardEmpty indicates the clipboard holds no text.
var ErrClipboardEmpty = errors.New("clipboard is empty")

// Clipboard abstracts the system clipboard so the session can be
// tested without a display server.
type Clipboard interface {
	// ReadText returns the current clipboard text.
	ReadText() (string, error)
	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard creates a clipboard backed by the OS.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// ReadText returns the current system clipboard text.
func (c *SystemClipboard) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", NewOperationError("clipboard read", "", err)
	}
	if text == "" {
		return "", ErrClipboardEmpty
	}
	return text, nil
}

// WriteText replaces the system clipboard contents.
func (c *SystemClipboard) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return NewOperationError("clipboard write", "", err)
	}
	return nil
}

// MemoryClipboard is an in-process clipboard for tests and for
// environments without clipboard support.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemoryClipboard creates an empty in-process clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

// ReadText returns the stored text.
func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set {
		return "", ErrClipboardEmpty
	}
	return c.text, nil
}

// WriteText stores text.
func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.set = true
	return nil
}
