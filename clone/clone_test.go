package clone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type shape struct {
	Name   string
	Points []point
	Tags   map[string]string
	Origin *point
	Meta   interface{}
	hidden *point
}

// Circle stands in for a specialised kind that must survive a round trip
// through interface{}.
type Circle struct {
	shape
	Radius float64
	Center *point
}

func sample() *shape {
	return &shape{
		Name:   "tri",
		Points: []point{{0, 0}, {1, 0}, {0, 1}},
		Tags:   map[string]string{"color": "red"},
		Origin: &point{5, 5},
		Meta:   map[string]interface{}{"layers": []interface{}{"a", "b"}},
		hidden: &point{9, 9},
	}
}

func TestCloneIsDeepAndEqual(t *testing.T) {
	src := sample()

	got := Clone(src)

	require.NotSame(t, src, got)
	assert.Equal(t, src.Name, got.Name)
	assert.Equal(t, src.Points, got.Points)
	assert.Equal(t, src.Tags, got.Tags)
	assert.Equal(t, src.Origin, got.Origin)
	assert.Equal(t, src.Meta, got.Meta)

	got.Points[0].X = 100
	got.Tags["color"] = "blue"
	got.Origin.X = 100
	got.Meta.(map[string]interface{})["layers"].([]interface{})[0] = "z"

	assert.Equal(t, 0, src.Points[0].X)
	assert.Equal(t, "red", src.Tags["color"])
	assert.Equal(t, 5, src.Origin.X)
	assert.Equal(t, "a", src.Meta.(map[string]interface{})["layers"].([]interface{})[0])
}

func TestCloneCopiesUnexportedFieldsShallowly(t *testing.T) {
	src := sample()
	got := Clone(src)
	assert.Same(t, src.hidden, got.hidden)
}

func TestClonePreservesDynamicType(t *testing.T) {
	var src interface{} = &Circle{Radius: 2, Center: &point{1, 1}}

	got := Clone(src)

	c, ok := got.(*Circle)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, 2.0, c.Radius)
	assert.NotSame(t, src.(*Circle).Center, c.Center)

	var values interface{} = []interface{}{Circle{Radius: 1}, point{1, 2}, "s", 3}
	cloned := Clone(values).([]interface{})
	assert.IsType(t, Circle{}, cloned[0])
	assert.IsType(t, point{}, cloned[1])
	assert.Equal(t, values, cloned)
}

func TestClonePrimitivesPassThrough(t *testing.T) {
	assert.Equal(t, 3, Clone(3))
	assert.Equal(t, "s", Clone("s"))
	assert.Nil(t, Clone[interface{}](nil))
	assert.Nil(t, Clone((*point)(nil)))
	assert.Nil(t, Clone(map[string]int(nil)))
}

func TestCloneCopiesScalarPointers(t *testing.T) {
	type counter struct {
		Count *int
		Again *int
		Label *string
	}
	n, label := 4, "a"
	src := &counter{Count: &n, Again: &n, Label: &label}

	got := Clone(src)

	require.NotSame(t, src.Count, got.Count)
	assert.Same(t, got.Count, got.Again)
	*got.Count = 7
	*got.Label = "b"
	assert.Equal(t, 4, n)
	assert.Equal(t, "a", label)

	p := Clone(&n)
	assert.NotSame(t, &n, p)
	assert.Equal(t, 4, *p)
}

type inner struct {
	Items []int
	Ref   *point
}

type byValue struct {
	inner
	Name string
}

type byPointer struct {
	*inner
	Name string
}

func TestCloneWalksEmbeddedStructs(t *testing.T) {
	src := byValue{inner: inner{Items: []int{1, 2}, Ref: &point{1, 1}}, Name: "v"}

	got := Clone(src)

	assert.Equal(t, src, got)
	got.Items[0] = 99
	got.Ref.X = 99
	assert.Equal(t, []int{1, 2}, src.Items)
	assert.Equal(t, 1, src.Ref.X)

	circle := &Circle{shape: shape{Points: []point{{1, 1}}, Tags: map[string]string{"k": "v"}}}
	c := Clone(circle)
	c.Points[0].X = 5
	c.Tags["k"] = "w"
	assert.Equal(t, 1, circle.Points[0].X)
	assert.Equal(t, "v", circle.Tags["k"])
}

func TestCloneWalksEmbeddedPointers(t *testing.T) {
	shared := &inner{Items: []int{1, 2}}
	src := []byPointer{{inner: shared, Name: "a"}, {inner: shared, Name: "b"}, {Name: "nil"}}

	got := Clone(src)

	require.Len(t, got, 3)
	assert.NotSame(t, shared, got[0].inner)
	assert.Same(t, got[0].inner, got[1].inner)
	assert.Nil(t, got[2].inner)
	got[0].Items = append(got[0].Items, 3)
	got[0].Items[0] = 99
	assert.Equal(t, []int{1, 2}, shared.Items)
}

func TestProcessPropsVisitsPromotedFields(t *testing.T) {
	src := &byPointer{inner: &inner{Items: []int{1}}, Name: "n"}
	var keys []string
	_, err := ProcessProps(src, func(v interface{}, key string, _ interface{}) interface{} {
		keys = append(keys, key)
		return v
	}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Items", "Ref", "Name"}, keys)
}

func TestCloneIsIdempotent(t *testing.T) {
	once := Clone(sample())
	twice := Clone(once)
	assert.Equal(t, once, twice)
}

type ring struct {
	Value int
	Next  *ring
}

func TestCloneReproducesCycles(t *testing.T) {
	a := &ring{Value: 1}
	b := &ring{Value: 2, Next: a}
	a.Next = b

	got := Clone(a)

	require.NotSame(t, a, got)
	require.NotSame(t, b, got.Next)
	assert.Equal(t, 2, got.Next.Value)
	assert.Same(t, got, got.Next.Next)

	self := []interface{}{1, nil}
	self[1] = self
	cp := Clone(self)
	assert.Equal(t, 1, cp[0])
	inner := cp[1].([]interface{})
	inner[0] = 7
	assert.Equal(t, 7, cp[0])
	assert.Equal(t, 1, self[0])
}

func TestCloneKeepsSharedReferencesShared(t *testing.T) {
	shared := &point{1, 1}
	src := []*point{shared, shared}
	got := Clone(src)
	assert.NotSame(t, shared, got[0])
	assert.Same(t, got[0], got[1])
}

func TestCloneWith(t *testing.T) {
	src := map[string]interface{}{"a": "x", "b": []int{1}, "c": 3}

	got, err := CloneWith(src, func(v interface{}, key string, parent interface{}) interface{} {
		if s, ok := v.(string); ok {
			return strings.ToUpper(s)
		}
		return v
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"a": "X", "b": []int{1}, "c": 3}, got)
	assert.Equal(t, "x", src["a"])
	got["b"].([]int)[0] = 9
	assert.Equal(t, 9, src["b"].([]int)[0], "only the first level is copied without recursion")
}

func TestProcessPropsInPlace(t *testing.T) {
	p := &point{1, 2}
	var keys []string
	out, err := ProcessProps(p, func(v interface{}, key string, parent interface{}) interface{} {
		keys = append(keys, key)
		assert.Same(t, p, parent)
		return v.(int) * 10
	}, false)
	require.NoError(t, err)

	assert.Same(t, p, out)
	assert.Equal(t, point{10, 20}, *p)
	assert.Equal(t, []string{"X", "Y"}, keys)

	m := map[string]int{"b": 2, "a": 1}
	out, err = ProcessProps(m, func(v interface{}, _ string, _ interface{}) interface{} {
		return v.(int) + 1
	}, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 3}, m)
	assert.Equal(t, m, out)
}

func TestProcessPropsStructValueIsCopied(t *testing.T) {
	v := point{1, 2}
	out, err := ProcessProps(v, func(x interface{}, _ string, _ interface{}) interface{} {
		return x.(int) + 1
	}, false)
	require.NoError(t, err)
	assert.Equal(t, point{2, 3}, out)
	assert.Equal(t, point{1, 2}, v)
}

func TestProcessPropsClone(t *testing.T) {
	src := []string{"a", "b"}
	var keys []string
	out, err := ProcessProps(src, func(v interface{}, key string, _ interface{}) interface{} {
		keys = append(keys, key)
		return v.(string) + key
	}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"a0", "b1"}, out)
	assert.Equal(t, []string{"a", "b"}, src)
	assert.Equal(t, []string{"0", "1"}, keys)
}

func TestProcessPropsDefaults(t *testing.T) {
	out, err := ProcessProps(7, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	p := &point{1, 2}
	out, err = ProcessProps(p, nil, true)
	require.NoError(t, err)
	assert.Equal(t, p, out)
	assert.NotSame(t, p, out)
}

func TestProcessPropsNilResultStoresZero(t *testing.T) {
	src := &shape{Name: "x", Origin: &point{}}
	out, err := ProcessProps(src, func(interface{}, string, interface{}) interface{} { return nil }, true)
	require.NoError(t, err)
	got := out.(*shape)
	assert.Equal(t, "", got.Name)
	assert.Nil(t, got.Origin)
}

func TestProcessPropsTypeMismatch(t *testing.T) {
	_, err := ProcessProps(&point{1, 2}, func(interface{}, string, interface{}) interface{} {
		return "nope"
	}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `property "X"`)
}
