package gallery

import "fmt"

// Painting is one catalogue record: the five columns of the gallery
// CSV in file order.
type Painting struct {
	School  string
	Author  string
	Subject string
	Date    string
	Room    string
}

func (p Painting) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s", p.School, p.Author, p.Subject, p.Date, p.Room)
}

// Equal compares two catalogue records field by field.
func Equal(a, b Painting) bool {
	return a == b
}
