package dom

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type propKind uint8

const (
	stringProp propKind = iota
	boolProp
	intProp
	textProp
	htmlProp
	handlerProp
)

// property describes an IDL attribute. Reflected kinds read and write the
// content attribute named attr.
type property struct {
	attr string
	kind propKind
}

// https://html.spec.whatwg.org/#htmlelement
var globalProperties = map[string]property{
	"id":          {"id", stringProp},
	"className":   {"class", stringProp},
	"title":       {"title", stringProp},
	"lang":        {"lang", stringProp},
	"dir":         {"dir", stringProp},
	"slot":        {"slot", stringProp},
	"accessKey":   {"accesskey", stringProp},
	"hidden":      {"hidden", boolProp},
	"tabIndex":    {"tabindex", intProp},
	"textContent": {kind: textProp},
	"innerText":   {kind: textProp},
	"innerHTML":   {kind: htmlProp},
}

var elementProperties = map[string]map[string]property{
	"a": {
		"href":     {"href", stringProp},
		"target":   {"target", stringProp},
		"rel":      {"rel", stringProp},
		"download": {"download", stringProp},
		"hreflang": {"hreflang", stringProp},
		"type":     {"type", stringProp},
	},
	"img": {
		"src":    {"src", stringProp},
		"alt":    {"alt", stringProp},
		"width":  {"width", intProp},
		"height": {"height", intProp},
	},
	"input": {
		"type":        {"type", stringProp},
		"name":        {"name", stringProp},
		"value":       {"value", stringProp},
		"placeholder": {"placeholder", stringProp},
		"min":         {"min", stringProp},
		"max":         {"max", stringProp},
		"step":        {"step", stringProp},
		"maxLength":   {"maxlength", intProp},
		"checked":     {"checked", boolProp},
		"disabled":    {"disabled", boolProp},
		"readOnly":    {"readonly", boolProp},
		"required":    {"required", boolProp},
		"multiple":    {"multiple", boolProp},
	},
	"button": {
		"type":     {"type", stringProp},
		"name":     {"name", stringProp},
		"value":    {"value", stringProp},
		"disabled": {"disabled", boolProp},
	},
	"form": {
		"action":     {"action", stringProp},
		"method":     {"method", stringProp},
		"target":     {"target", stringProp},
		"noValidate": {"novalidate", boolProp},
	},
	"label": {
		"htmlFor": {"for", stringProp},
	},
	"option": {
		"value":    {"value", stringProp},
		"label":    {"label", stringProp},
		"selected": {"selected", boolProp},
		"disabled": {"disabled", boolProp},
	},
	"select": {
		"name":     {"name", stringProp},
		"disabled": {"disabled", boolProp},
		"multiple": {"multiple", boolProp},
		"required": {"required", boolProp},
	},
	"textarea": {
		"name":        {"name", stringProp},
		"placeholder": {"placeholder", stringProp},
		"rows":        {"rows", intProp},
		"cols":        {"cols", intProp},
		"disabled":    {"disabled", boolProp},
		"readOnly":    {"readonly", boolProp},
		"required":    {"required", boolProp},
	},
	"script": {
		"src":   {"src", stringProp},
		"type":  {"type", stringProp},
		"async": {"async", boolProp},
		"defer": {"defer", boolProp},
	},
	"link": {
		"href":  {"href", stringProp},
		"rel":   {"rel", stringProp},
		"type":  {"type", stringProp},
		"media": {"media", stringProp},
	},
	"iframe": {
		"src":    {"src", stringProp},
		"name":   {"name", stringProp},
		"width":  {"width", stringProp},
		"height": {"height", stringProp},
	},
	"meta": {
		"name":      {"name", stringProp},
		"content":   {"content", stringProp},
		"httpEquiv": {"http-equiv", stringProp},
	},
	"td": {
		"colSpan": {"colspan", intProp},
		"rowSpan": {"rowspan", intProp},
	},
	"th": {
		"colSpan": {"colspan", intProp},
		"rowSpan": {"rowspan", intProp},
	},
}

// https://html.spec.whatwg.org/#globaleventhandlers
var eventTypes = []string{
	"blur", "change", "click", "contextmenu", "dblclick", "error", "focus",
	"input", "keydown", "keypress", "keyup", "load", "mousedown", "mouseenter",
	"mouseleave", "mousemove", "mouseout", "mouseover", "mouseup", "reset",
	"scroll", "submit", "wheel",
}

func init() {
	for _, t := range eventTypes {
		globalProperties["on"+t] = property{kind: handlerProp}
	}
}

func (n *Node) lookupProperty(name string) (property, bool) {
	if n.Element == nil {
		return property{}, false
	}
	if p, ok := globalProperties[name]; ok {
		return p, true
	}
	if n.Element.NamespaceURI != Htmlns {
		return property{}, false
	}
	p, ok := elementProperties[n.Element.LocalName][name]
	return p, ok
}

// HasProperty reports whether name is a settable property of the element.
// Property names are case sensitive ("className", "tabIndex", "onclick").
func (n *Node) HasProperty(name string) bool {
	_, ok := n.lookupProperty(name)
	return ok
}

// SetProperty assigns a property the way script assignment does: reflected
// properties write their content attribute, textContent replaces the
// children, innerHTML parses markup and on* properties store a handler.
func (n *Node) SetProperty(name string, value interface{}) error {
	p, ok := n.lookupProperty(name)
	if !ok {
		return newException(TypeError, "%q is not a property of <%s>", name, n.NodeName)
	}
	switch p.kind {
	case stringProp:
		return n.Element.SetAttribute(p.attr, ToDOMString(value))
	case boolProp:
		_, err := n.Element.ToggleAttribute(p.attr, truthy(value))
		return err
	case intProp:
		return n.Element.SetAttribute(p.attr, strconv.Itoa(toInt(value)))
	case textProp:
		n.setTextContent(ToDOMString(value))
		return nil
	case htmlProp:
		return errors.Wrapf(n.setInnerHTML(ToDOMString(value)), "setting innerHTML of <%s>", n.NodeName)
	case handlerProp:
		return n.setHandler(strings.TrimPrefix(name, "on"), value)
	}
	return nil
}

// GetProperty reads a property back. ok is false for unknown names.
func (n *Node) GetProperty(name string) (value interface{}, ok bool) {
	p, ok := n.lookupProperty(name)
	if !ok {
		return nil, false
	}
	switch p.kind {
	case stringProp:
		return n.Element.GetAttribute(p.attr), true
	case boolProp:
		return n.Element.HasAttribute(p.attr), true
	case intProp:
		i, _ := strconv.Atoi(strings.TrimSpace(n.Element.GetAttribute(p.attr)))
		return i, true
	case textProp:
		return n.TextContent(), true
	case htmlProp:
		return n.InnerHTML(), true
	case handlerProp:
		return n.Handler(strings.TrimPrefix(name, "on")), true
	}
	return nil, false
}

func (n *Node) setTextContent(text string) {
	n.removeAllChildren()
	if text != "" {
		n.Append(NewTextNode(n.OwnerDocument, text))
	}
}

// ToDOMString converts a value the way attribute assignment stringifies it.
// nil becomes the empty string where script assignment would write "null".
func ToDOMString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case bool:
		return strconv.FormatBool(s)
	}
	return fmt.Sprint(v)
}

func truthy(v interface{}) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// toInt follows ToNumber then truncation; anything unparsable is 0.
func toInt(v interface{}) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return int(f)
	}
	return 0
}
