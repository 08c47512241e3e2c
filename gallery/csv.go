package gallery

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/lorypota/setflow/set"
)

const fieldCount = 5

// Load reads a catalogue CSV (a header row followed by school, author,
// subject, date, room records) into a Set. Quoted fields are honored,
// values are trimmed, duplicate rows collapse through the Set's
// equality.
func Load(r io.Reader) (*set.Set[Painting], error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fieldCount

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, errors.New("gallery: catalogue has no header row")
		}
		return nil, errors.Wrap(err, "reading catalogue header")
	}

	s := set.New(Equal)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return s, nil
		}
		if err != nil {
			s.Clear()
			return nil, errors.Wrap(err, "reading catalogue record")
		}

		p := Painting{
			School:  strings.TrimSpace(rec[0]),
			Author:  strings.TrimSpace(rec[1]),
			Subject: strings.TrimSpace(rec[2]),
			Date:    strings.TrimSpace(rec[3]),
			Room:    strings.TrimSpace(rec[4]),
		}
		if _, err := s.Add(p); err != nil {
			s.Clear()
			return nil, errors.Wrap(err, "adding catalogue record")
		}
	}
}

// LoadFile is Load over a file on disk.
func LoadFile(path string) (*set.Set[Painting], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening catalogue %s", path)
	}
	defer f.Close()

	return Load(f)
}

// Key returns the projection of a record named by column: one of
// school, author, subject, date or room.
func Key(column string) (func(Painting) string, error) {
	switch column {
	case "school":
		return func(p Painting) string { return p.School }, nil
	case "author":
		return func(p Painting) string { return p.Author }, nil
	case "subject":
		return func(p Painting) string { return p.Subject }, nil
	case "date":
		return func(p Painting) string { return p.Date }, nil
	case "room":
		return func(p Painting) string { return p.Room }, nil
	default:
		return nil, errors.Errorf("gallery: unknown column %q", column)
	}
}
