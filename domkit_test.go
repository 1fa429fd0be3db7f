package domkit

import (
	"strings"
	"testing"

	"github.com/heathj/domkit/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	n, err := Tag("div#foo.bar.baz", nil)
	require.NoError(t, err)
	assert.Equal(t, "foo", n.ID())
	assert.Equal(t, "bar baz", n.ClassName())

	n, err = Tag(".a.b", props.Text("hello"))
	require.NoError(t, err)
	assert.Equal(t, `<div class="a b">hello</div>`, n.OuterHTML())
}

func TestMerge(t *testing.T) {
	base := props.New().Set("a", 1).Set("b", 2)
	overlay := props.New().Set("b", 0).Set("c", 3)

	got := Merge(base, overlay)
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	b, _ := got.Get("b")
	assert.Equal(t, 0, b)
	assert.False(t, got.Has("c"))
}

func TestMergeMaps(t *testing.T) {
	base := map[string]interface{}{"a": 1, "b": 2}
	overlay := map[string]interface{}{"b": nil, "c": 3}

	got := MergeMaps(base, overlay)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": nil}, got)
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 2}, base)
}

func TestClone(t *testing.T) {
	type node struct {
		Name     string
		Children []*node
	}
	src := &node{Name: "root", Children: []*node{{Name: "leaf"}}}

	got := Clone(src)
	assert.Equal(t, src, got)
	assert.NotSame(t, src.Children[0], got.Children[0])
}

func TestProcessProps(t *testing.T) {
	src := map[string]string{"a": "x", "b": "y"}
	out, err := ProcessProps(src, func(v interface{}, _ string, _ interface{}) interface{} {
		return strings.ToUpper(v.(string))
	}, true)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "X", "b": "Y"}, out)
	assert.Equal(t, "x", src["a"])
}
