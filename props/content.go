package props

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Content is what a tag is built with: either a *Props or a Text.
type Content interface {
	isContent()
}

// Text stands in for the props argument when an element only needs text.
type Text string

func (Text) isContent()   {}
func (*Props) isContent() {}

// TagName is the struct tag Of reads property names from.
const TagName = "prop"

// Of converts v into a bag. v may be nil, a *Props (copied), a
// map[string]interface{}, or a struct (or pointer to one) whose exported
// fields are named by `prop:"name"` tags; "-" skips a field and omitempty
// drops zero values. Struct fields keep their declaration order.
func Of(v interface{}) (*Props, error) {
	switch t := v.(type) {
	case nil:
		return New(), nil
	case *Props:
		return t.Copy(), nil
	case map[string]interface{}:
		return FromMap(t), nil
	}

	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("props: cannot convert %T, want a struct or map", v)
	}

	var m map[string]interface{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: TagName,
		Result:  &m,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := decoder.Decode(rv.Interface()); err != nil {
		return nil, errors.Wrapf(err, "props: decoding %T", v)
	}

	p := New()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag := f.Tag.Get(TagName); tag != "" {
			name = strings.Split(tag, ",")[0]
			if name == "" {
				name = f.Name
			}
		}
		if val, ok := m[name]; ok {
			p.Set(name, val)
		}
	}
	return p, nil
}
