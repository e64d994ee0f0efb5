// Package sink delivers the rendered status line to the window manager.
package sink

// Sink receives one status line per tick
type Sink interface {
	// Render replaces the displayed status with line
	Render(line string) error
	// Close releases the output surface
	Close() error
}
