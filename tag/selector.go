package tag

import "strings"

// DefaultKind is the element created when a selector names no tag.
const DefaultKind = "div"

// Selector is a parsed `tag#id.class.class` string.
type Selector struct {
	Kind  string
	ID    string
	HasID bool

	// Classes keeps every dot segment, blank ones included, in the order
	// they appear once the id segment has been cut out.
	Classes []string
}

// ParseSelector splits s into element kind, id and class segments. Dot
// segments after the id are appended to the ones before it, so
// "div.a#id.b" has classes a then b. Anything after a second '#' is ignored.
func ParseSelector(s string) Selector {
	var sel Selector
	rest := s
	if parts := strings.Split(s, "#"); len(parts) > 1 {
		idParts := strings.Split(parts[1], ".")
		sel.ID, sel.HasID = idParts[0], true
		rest = strings.Join(append([]string{parts[0]}, idParts[1:]...), ".")
	}

	segments := strings.Split(rest, ".")
	sel.Kind = segments[0]
	if sel.Kind == "" {
		sel.Kind = DefaultKind
	}
	sel.Classes = segments[1:]
	return sel
}
