package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Mavwarf/mangaicons/internal/eventlog"
)

func runHistory(args []string) {
	store, err := eventlog.NewSQLiteStore(eventlog.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := history(os.Stdout, store, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// history dispatches the history subcommands against store.
func history(w io.Writer, store eventlog.Store, args []string) error {
	if len(args) == 0 {
		return listHistory(w, store, 0)
	}
	switch args[0] {
	case "clean":
		if len(args) < 2 {
			return fmt.Errorf("'history clean' requires a number of days")
		}
		days, err := parseDays(args[1])
		if err != nil {
			return err
		}
		n, err := store.Clean(days)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Removed %d entries older than %d days\n", n, days)
		return nil
	case "clear":
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(w, "Generation log cleared")
		return nil
	default:
		days, err := parseDays(args[0])
		if err != nil {
			return err
		}
		return listHistory(w, store, days)
	}
}

func parseDays(s string) (int, error) {
	days, err := strconv.Atoi(s)
	if err != nil || days < 1 {
		return 0, fmt.Errorf("days must be a positive number, got %q", s)
	}
	return days, nil
}

func listHistory(w io.Writer, store eventlog.Store, days int) error {
	entries, err := store.Entries(days)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "No generations logged (%s)\n", store.Path())
		return nil
	}
	for _, e := range entries {
		sha := e.SHA256
		if len(sha) > 12 {
			sha = sha[:12]
		}
		fmt.Fprintf(w, "%s  %-16s %4dpx  x%d  %6d B  %s  %s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.File, e.Size, e.Supersample, e.Bytes, sha, e.Dir)
	}
	return nil
}
