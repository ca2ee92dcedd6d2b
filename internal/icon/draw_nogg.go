//go:build nogg

package icon

import "image"

// Available reports whether this build can render icons.
func Available() bool { return false }

// Render always fails in builds without the drawing backend.
func Render(size int, opts Options) (*image.RGBA, error) {
	return nil, ErrUnavailable
}
