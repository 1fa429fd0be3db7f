package domkit

import (
	"github.com/heathj/domkit/clone"
	"github.com/heathj/domkit/dom"
	"github.com/heathj/domkit/props"
	"github.com/heathj/domkit/tag"
)

// Tag builds an element with the default builder. content is a
// *props.Props, a props.Text or nil.
func Tag(selector string, content props.Content, text ...string) (*dom.Node, error) {
	return tag.Build(selector, content, text...)
}

// Merge returns base's keys with overlay's values where overlay has them.
func Merge(base, overlay *props.Props) *props.Props {
	return props.Merge(base, overlay)
}

// MergeMaps is Merge for plain maps.
func MergeMaps[K comparable, V any](base, overlay map[K]V) map[K]V {
	return props.MergeMaps(base, overlay)
}

// Clone returns a deep copy of x with the same concrete type.
func Clone[T any](x T) T {
	return clone.Clone(x)
}

// ProcessProps applies fn to every field, entry or element of target. With
// cloneFlag set, results go into a new value of target's type; otherwise
// target is updated in place.
func ProcessProps(target interface{}, fn clone.PropFunc, cloneFlag bool) (interface{}, error) {
	return clone.ProcessProps(target, fn, cloneFlag)
}
