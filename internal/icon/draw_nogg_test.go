//go:build nogg

package icon

import (
	"errors"
	"testing"
)

func TestRenderUnavailable(t *testing.T) {
	if Available() {
		t.Fatal("Available() = true in nogg build")
	}
	if _, err := Render(48, Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Render error = %v, want ErrUnavailable", err)
	}
}
