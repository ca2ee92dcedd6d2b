package eventlog

import "time"

// Record is one generated icon file.
type Record struct {
	Time        time.Time
	Dir         string
	File        string
	Size        int
	Bytes       int
	SHA256      string
	Supersample int
}

// Store abstracts the generation log.
type Store interface {
	// Write
	Log(r Record) error

	// Read
	Entries(days int) ([]Record, error) // 0 = all, oldest first

	// Maintenance
	Clean(days int) (int, error) // remove entries older than days, return removed count
	Clear() error                // delete all data

	// Metadata
	Path() string
	Close() error
}

// DayCutoff returns midnight of the day (days-1) days ago, so days=1
// means "today".
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}
