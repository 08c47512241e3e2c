package set

import (
	"io"
	"log"
	"os"
)

// Diagnostic receives the failure reports of Save. Save never surfaces
// an error to its caller; swap this logger to observe failures.
var Diagnostic = log.New(os.Stderr, "", log.LstdFlags)

// Save writes the Set's canonical textual form (see String) to the
// file at path. If the file cannot be opened it reports the failure
// through Diagnostic and performs no write; it returns normally either
// way.
func Save[T any](s *Set[T], path string) {
	f, err := os.Create(path)
	if err != nil {
		Diagnostic.Printf("[ERROR] failed to open %s: %v", path, err)
		return
	}
	defer f.Close()

	if _, err := io.WriteString(f, s.String()); err != nil {
		Diagnostic.Printf("[ERROR] failed to write %s: %v", path, err)
	}
}
