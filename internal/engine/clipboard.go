package engine

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned by SystemClipboard on platforms
// without a clipboard utility.
var ErrClipboardUnavailable = errors.New("system clipboard unavailable")

// Clipboard stores text for Cut, Copy and Paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// MemoryClipboard is a process-local clipboard. The zero value is empty and
// ready to use.
type MemoryClipboard struct {
	text string
}

// ReadAll returns the stored text.
func (c *MemoryClipboard) ReadAll() (string, error) {
	return c.text, nil
}

// WriteAll stores text.
func (c *MemoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// ReadAll returns the system clipboard text.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll replaces the system clipboard text.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}
