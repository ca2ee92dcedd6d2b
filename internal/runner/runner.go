package runner

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/Mavwarf/mangaicons/internal/icon"
	"github.com/Mavwarf/mangaicons/internal/paths"
)

// RenderFunc draws one icon of the given size.
type RenderFunc func(size int) (image.Image, error)

// Job is a single icon to produce.
type Job struct {
	Size int
	Path string
}

// Result describes a written icon file.
type Result struct {
	Size   int
	Path   string
	Bytes  int
	SHA256 string
}

// Name returns the file name of the written icon.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// Plan builds one job per size; pattern's {size} is expanded for each.
func Plan(dir, pattern string, sizes []int) []Job {
	jobs := make([]Job, 0, len(sizes))
	for _, s := range sizes {
		jobs = append(jobs, Job{
			Size: s,
			Path: filepath.Join(dir, paths.IconFileName(pattern, s)),
		})
	}
	return jobs
}

// Execute renders and encodes every job before writing anything, so a
// render failure (including icon.ErrUnavailable) leaves no files behind.
// Files are then written atomically in job order.
func Execute(render RenderFunc, jobs []Job) ([]Result, error) {
	encoded := make([][]byte, len(jobs))
	for i, j := range jobs {
		img, err := render(j.Size)
		if err != nil {
			return nil, fmt.Errorf("rendering %dx%d: %w", j.Size, j.Size, err)
		}
		var buf bytes.Buffer
		if err := icon.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encoding %dx%d: %w", j.Size, j.Size, err)
		}
		encoded[i] = buf.Bytes()
	}

	results := make([]Result, 0, len(jobs))
	for i, j := range jobs {
		data := encoded[i]
		if err := paths.AtomicWrite(j.Path, data); err != nil {
			return results, fmt.Errorf("writing %s: %w", j.Path, err)
		}
		sum := sha256.Sum256(data)
		results = append(results, Result{
			Size:   j.Size,
			Path:   j.Path,
			Bytes:  len(data),
			SHA256: hex.EncodeToString(sum[:]),
		})
	}
	return results, nil
}

// Remediation returns the instructions printed when this build cannot
// render icons.
func Remediation(sizes []int) string {
	names := make([]string, len(sizes))
	for i, s := range sizes {
		names[i] = paths.IconFileName("", s)
	}
	var saveAs string
	switch len(names) {
	case 0:
		saveAs = "the icon PNGs"
	case 1:
		saveAs = names[0]
	default:
		saveAs = strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}

	var b strings.Builder
	b.WriteString("Icon renderer not available in this build.\n")
	b.WriteString("Rebuild without the nogg tag: go build ./cmd/mkicon\n")
	b.WriteString("\n")
	b.WriteString("Alternatively, you can:\n")
	b.WriteString("1. Open generate-icons.html in a browser\n")
	b.WriteString("2. Or create icons manually using any image editor\n")
	fmt.Fprintf(&b, "3. Save as %s in the icons folder\n", saveAs)
	return b.String()
}
