package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasProperty(t *testing.T) {
	d := NewDocument()
	a := mustElement(t, d, "a")
	div := mustElement(t, d, "div")

	tests := []struct {
		node *Node
		name string
		want bool
	}{
		{div, "id", true},
		{div, "className", true},
		{div, "class", false},
		{div, "textContent", true},
		{div, "onclick", true},
		{div, "onfoo", false},
		{div, "href", false},
		{a, "href", true},
		{div, "data-role", false},
		{d.CreateTextNode("x"), "id", false},
	}
	for _, tt := range tests {
		t.Run(tt.node.NodeName+"."+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.HasProperty(tt.name))
		})
	}
}

func TestReflectedProperties(t *testing.T) {
	d := NewDocument()
	in := mustElement(t, d, "input")

	require.NoError(t, in.SetProperty("className", "big"))
	require.NoError(t, in.SetProperty("value", 42))
	require.NoError(t, in.SetProperty("maxLength", "12.7"))
	require.NoError(t, in.SetProperty("tabIndex", 3))
	require.NoError(t, in.SetProperty("disabled", true))
	require.NoError(t, in.SetProperty("checked", ""))

	assert.Equal(t, "big", in.GetAttribute("class"))
	assert.Equal(t, "42", in.GetAttribute("value"))
	assert.Equal(t, "12", in.GetAttribute("maxlength"))
	assert.Equal(t, "3", in.GetAttribute("tabindex"))
	assert.True(t, in.HasAttribute("disabled"))
	assert.False(t, in.HasAttribute("checked"))

	v, ok := in.GetProperty("disabled")
	require.True(t, ok)
	assert.Equal(t, true, v)
	v, ok = in.GetProperty("tabIndex")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	require.NoError(t, in.SetProperty("disabled", 0))
	assert.False(t, in.HasAttribute("disabled"))

	_, ok = in.GetProperty("nope")
	assert.False(t, ok)
	assert.True(t, IsException(in.SetProperty("nope", 1), TypeError))
}

func TestTextContentProperty(t *testing.T) {
	d := NewDocument()
	p := mustElement(t, d, "p")
	p.Append(mustElement(t, d, "b").AppendText("old"))

	require.NoError(t, p.SetProperty("textContent", "new <text>"))
	require.Len(t, p.ChildNodes, 1)
	assert.Equal(t, TextNode, p.FirstChild.NodeType)
	assert.Equal(t, "new <text>", p.TextContent())

	require.NoError(t, p.SetProperty("textContent", ""))
	assert.False(t, p.HasChildNodes())
}

func TestInnerHTMLProperty(t *testing.T) {
	d := NewDocument()
	div := mustElement(t, d, "div")

	require.NoError(t, div.SetProperty("innerHTML", `<b class="x">bold</b> and <!--c--><i>it</i>`))

	require.Len(t, div.ChildNodes, 4)
	b := div.FirstChild
	assert.Equal(t, "b", b.NodeName)
	assert.Equal(t, "x", b.ClassName())
	assert.Same(t, div, b.ParentNode)
	assert.Same(t, d.AsNode(), b.OwnerDocument)
	assert.Equal(t, CommentNode, div.ChildNodes[2].NodeType)
	assert.Equal(t, "bold and it", div.TextContent())

	v, ok := div.GetProperty("innerHTML")
	require.True(t, ok)
	assert.Equal(t, `<b class="x">bold</b> and <!--c--><i>it</i>`, v)
}

func TestEventHandlerProperty(t *testing.T) {
	d := NewDocument()
	form := mustElement(t, d, "form")
	button := mustElement(t, d, "button")
	form.Append(button)

	var seen []string
	require.NoError(t, button.SetProperty("onclick", func(e *Event) {
		seen = append(seen, "button:"+e.Target.NodeName)
	}))
	require.NoError(t, form.SetProperty("onclick", EventHandler(func(e *Event) {
		seen = append(seen, "form:"+e.CurrentTarget.NodeName)
		e.PreventDefault()
	})))

	ok := button.DispatchEvent(NewEvent("click", true, true))
	assert.False(t, ok)
	assert.Equal(t, []string{"button:button", "form:form"}, seen)
	assert.False(t, button.HasAttribute("onclick"))

	err := button.SetProperty("onclick", "alert(1)")
	assert.True(t, IsException(err, TypeError))

	require.NoError(t, button.SetProperty("onclick", nil))
	assert.Nil(t, button.Handler("click"))
}

func TestStopPropagation(t *testing.T) {
	d := NewDocument()
	outer, inner := mustElement(t, d, "div"), mustElement(t, d, "div")
	outer.Append(inner)
	outerCalled := false
	require.NoError(t, outer.SetProperty("onclick", func(*Event) { outerCalled = true }))
	require.NoError(t, inner.SetProperty("onclick", func(e *Event) { e.StopPropagation() }))

	assert.True(t, inner.DispatchEvent(NewEvent("click", true, false)))
	assert.False(t, outerCalled)
}

func TestToDOMString(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{3, "3"},
		{1.5, "1.5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToDOMString(tt.in))
	}
}
