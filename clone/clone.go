// Package clone walks the exported fields, map entries and elements of Go
// values, transforming each one either in place or into a fresh value of the
// same concrete type. Clone builds a deep copy on top of that walk.
package clone

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"unsafe"

	"github.com/pkg/errors"
)

// PropFunc maps a property value to its replacement. key is the field name,
// the map key as printed by fmt, or the element index in decimal. parent is
// the value being walked.
type PropFunc func(value interface{}, key string, parent interface{}) interface{}

func identity(v interface{}, _ string, _ interface{}) interface{} { return v }

// ProcessProps applies fn to every property of target. Values that have no
// properties (nil, bools, numbers, strings, funcs, channels, nil pointers,
// maps and slices) are returned unchanged. The exported fields of an
// unexported embedded struct are walked as the outer struct's own.
//
// With cloneFlag unset, pointers, maps and slices are updated in place and
// returned as is; a struct or array passed by value is copied first, since
// the caller's variable cannot be reached. With cloneFlag set the result is
// a new value of target's type, pointers to scalars and embedded struct
// pointers included; other unexported struct fields are copied shallowly.
//
// A nil fn is the identity. An fn result that does not fit the property's
// type fails the call.
func ProcessProps(target interface{}, fn PropFunc, cloneFlag bool) (interface{}, error) {
	if fn == nil {
		fn = identity
	}
	v := reflect.ValueOf(target)
	if !structured(v) {
		return target, nil
	}
	p := &processor{fn: fn, clone: cloneFlag}
	out, err := p.process(v)
	if err != nil {
		return nil, err
	}
	return out.Interface(), nil
}

// Clone returns a deep copy of target. Pointers, maps and slices reachable
// from target are copied once each, so shared references stay shared and
// cycles are reproduced in the copy.
func Clone[T any](target T) T {
	c := &cloner{seen: make(map[visit]reflect.Value)}
	out := c.clone(target)
	if out == nil {
		var zero T
		return zero
	}
	return out.(T)
}

// CloneWith copies target's first level through fn. fn decides whether to
// recurse, typically by calling Clone.
func CloneWith[T any](target T, fn PropFunc) (T, error) {
	var zero T
	out, err := ProcessProps(target, fn, true)
	if err != nil || out == nil {
		return zero, err
	}
	return out.(T), nil
}

func structured(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct, reflect.Array:
		return true
	case reflect.Map, reflect.Slice:
		return !v.IsNil()
	case reflect.Ptr:
		if v.IsNil() {
			return false
		}
		switch v.Elem().Kind() {
		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return false
		}
		return true
	}
	return false
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

func identify(v reflect.Value) (visit, bool) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map:
		if !v.IsNil() {
			return visit{ptr: v.Pointer(), typ: v.Type()}, true
		}
	case reflect.Slice:
		if !v.IsNil() {
			return visit{ptr: v.Pointer(), typ: v.Type(), len: v.Len()}, true
		}
	}
	return visit{}, false
}

type processor struct {
	fn    PropFunc
	clone bool

	// seen, when set, records every copy made so far by source identity.
	seen map[visit]reflect.Value
}

func (p *processor) register(src, dst reflect.Value) {
	if p.seen == nil {
		return
	}
	if k, ok := identify(src); ok {
		p.seen[k] = dst
	}
}

func (p *processor) process(v reflect.Value) (reflect.Value, error) {
	parent := v.Interface()
	switch v.Kind() {
	case reflect.Ptr:
		src := v.Elem()
		dst := v
		if p.clone {
			dst = reflect.New(src.Type())
			p.register(v, dst)
		}
		if src.Kind() == reflect.Map || src.Kind() == reflect.Slice {
			if src.IsNil() {
				return dst, nil
			}
			inner, err := p.process(src)
			if err != nil {
				return reflect.Value{}, err
			}
			dst.Elem().Set(inner)
			return dst, nil
		}
		if p.clone {
			dst.Elem().Set(src)
		}
		return dst, p.into(dst.Elem(), src, parent)

	case reflect.Struct, reflect.Array:
		dst := reflect.New(v.Type()).Elem()
		dst.Set(v)
		return dst, p.into(dst, v, parent)

	case reflect.Map:
		dst := v
		if p.clone {
			dst = reflect.MakeMapWithSize(v.Type(), v.Len())
			p.register(v, dst)
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			name := fmt.Sprint(k.Interface())
			out, err := fit(p.fn(v.MapIndex(k).Interface(), name, parent), v.Type().Elem(), name)
			if err != nil {
				return reflect.Value{}, err
			}
			dst.SetMapIndex(k, out)
		}
		return dst, nil

	case reflect.Slice:
		dst := v
		if p.clone {
			dst = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
			p.register(v, dst)
		}
		return dst, p.into(dst, v, parent)
	}
	return v, nil
}

// into writes the transformed properties of src into dst, which must be
// settable and of the same type.
func (p *processor) into(dst, src reflect.Value, parent interface{}) error {
	switch src.Kind() {
	case reflect.Struct:
		t := src.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Anonymous && !f.IsExported() {
				if err := p.embedded(dst.Field(i), parent); err != nil {
					return err
				}
				continue
			}
			if !f.IsExported() {
				continue
			}
			if err := p.assign(dst.Field(i), src.Field(i), f.Name, parent); err != nil {
				return err
			}
		}
	case reflect.Array, reflect.Slice:
		for i := 0; i < src.Len(); i++ {
			if err := p.assign(dst.Index(i), src.Index(i), strconv.Itoa(i), parent); err != nil {
				return err
			}
		}
	}
	return nil
}

// embedded walks an unexported embedded struct, or pointer to one, held in
// field. field belongs to the destination, which already holds a copy of the
// source, and must be addressable.
func (p *processor) embedded(field reflect.Value, parent interface{}) error {
	t := field.Type()
	if t.Kind() != reflect.Struct && (t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct) {
		return nil
	}
	view := reflect.NewAt(t, unsafe.Pointer(field.UnsafeAddr())).Elem()
	if t.Kind() == reflect.Struct {
		return p.into(view, view, parent)
	}
	if view.IsNil() {
		return nil
	}
	if !p.clone {
		return p.into(view.Elem(), view.Elem(), parent)
	}
	if k, ok := identify(view); ok {
		if done, ok := p.seen[k]; ok {
			view.Set(done)
			return nil
		}
	}
	dst := reflect.New(t.Elem())
	dst.Elem().Set(view.Elem())
	p.register(view, dst)
	view.Set(dst)
	return p.into(dst.Elem(), dst.Elem(), parent)
}

func (p *processor) assign(slot, value reflect.Value, key string, parent interface{}) error {
	out, err := fit(p.fn(value.Interface(), key, parent), slot.Type(), key)
	if err != nil {
		return err
	}
	slot.Set(out)
	return nil
}

// fit checks that v can be stored in a slot of type t. nil stores the zero value.
func fit(v interface{}, t reflect.Type, key string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, errors.Errorf("property %q: cannot assign %s to %s", key, rv.Type(), t)
	}
	return rv, nil
}

type cloner struct {
	seen map[visit]reflect.Value
}

func (c *cloner) transform(value interface{}, _ string, _ interface{}) interface{} {
	return c.clone(value)
}

func (c *cloner) clone(x interface{}) interface{} {
	v := reflect.ValueOf(x)
	if !structured(v) {
		return x
	}
	if k, ok := identify(v); ok {
		if done, ok := c.seen[k]; ok {
			return done.Interface()
		}
	}
	p := &processor{fn: c.transform, clone: true, seen: c.seen}
	out, err := p.process(v)
	if err != nil {
		// Copies always have the source's type, so this is unreachable.
		panic(errors.Wrap(err, "clone"))
	}
	return out.Interface()
}
