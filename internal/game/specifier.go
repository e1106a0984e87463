package game

import "fmt"

// Specifier picks one card out of a zone, either by literal name or by
// zero-based position.
type Specifier struct {
	ByName bool
	Name   string
	Index  int
}

// ByName builds a name specifier.
func ByName(name string) Specifier {
	return Specifier{ByName: true, Name: name}
}

// ByIndex builds a positional specifier.
func ByIndex(i int) Specifier {
	return Specifier{Index: i}
}

func (s Specifier) String() string {
	if s.ByName {
		return s.Name
	}
	return fmt.Sprintf("$%d", s.Index)
}
