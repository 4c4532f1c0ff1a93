package section

import "fmt"

// Element selects which part of a section a coordinate addresses.
type Element uint8

const (
	ElementItem   Element = iota // Item row/cell
	ElementHeader                // Section header
	ElementFooter                // Section footer
)

// String returns the string representation of the Element.
func (e Element) String() string {
	switch e {
	case ElementItem:
		return "Item"
	case ElementHeader:
		return "Header"
	case ElementFooter:
		return "Footer"
	default:
		return "Unknown"
	}
}

// Coordinate is a position in the current snapshot.
// It is only valid until the next render or update is applied.
type Coordinate struct {
	Section int
	Item    int
	Element Element
}

// At returns the coordinate of an item.
func At(section, item int) Coordinate {
	return Coordinate{Section: section, Item: item}
}

// HeaderAt returns the coordinate of a section header.
func HeaderAt(section int) Coordinate {
	return Coordinate{Section: section, Element: ElementHeader}
}

// FooterAt returns the coordinate of a section footer.
func FooterAt(section int) Coordinate {
	return Coordinate{Section: section, Element: ElementFooter}
}

// String returns "[s,i]" for items and "[s,header]"/"[s,footer]" otherwise.
func (c Coordinate) String() string {
	switch c.Element {
	case ElementHeader:
		return fmt.Sprintf("[%d,header]", c.Section)
	case ElementFooter:
		return fmt.Sprintf("[%d,footer]", c.Section)
	default:
		return fmt.Sprintf("[%d,%d]", c.Section, c.Item)
	}
}
