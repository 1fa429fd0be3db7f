package tag

import (
	"fmt"
	"strings"

	"github.com/heathj/domkit/dom"
)

// Trim returns the elements of s whose printed form is not blank, in order.
// s is not modified.
func Trim[T any](s []T) []T {
	out := make([]T, 0, len(s))
	for _, e := range s {
		if strings.TrimSpace(fmt.Sprint(e)) != "" {
			out = append(out, e)
		}
	}
	return out
}

// Append appends children to parent and returns parent.
func Append(parent *dom.Node, children ...*dom.Node) *dom.Node {
	return parent.Append(children...)
}
