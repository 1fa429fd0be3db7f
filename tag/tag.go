// Package tag builds DOM elements from selector strings:
//
//	tag.Build("a#home.nav.active", props.New().Set("href", "/"), "Home")
//
// yields <a href="/" id="home" class="nav active">Home</a>.
package tag

import (
	"fmt"
	"strings"

	"github.com/heathj/domkit/dom"
	"github.com/heathj/domkit/props"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Text is the content form for an element that only needs text.
type Text = props.Text

// Builder creates elements in one document.
type Builder struct {
	doc *dom.Document
	log logrus.FieldLogger
}

// Option configures a Builder.
type Option func(*Builder)

// WithDocument makes the builder create its nodes in d.
func WithDocument(d *dom.Document) Option {
	return func(b *Builder) { b.doc = d }
}

// WithLogger sets where build steps are logged. The default is the logrus
// standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder returns a builder over a fresh HTML document unless
// WithDocument says otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.doc == nil {
		b.doc = dom.NewDocument()
	}
	if b.log == nil {
		b.log = logrus.StandardLogger()
	}
	return b
}

// Document returns the document nodes are created in.
func (b *Builder) Document() *dom.Document {
	return b.doc
}

// Build creates a detached element from selector.
//
// content is either a *props.Props, applied to the element, or a
// props.Text, used as the text content; nil means no props. A text argument
// sets the text content even when empty; a props.Text content takes its
// place. The parsed id is applied after the caller's props, and the class
// attribute is the caller's className followed by the selector's classes.
// It is always set, so an element without classes gets class="".
//
// Each prop is assigned as a DOM property when the element has one of that
// name (so on* props take handlers) and as a string attribute otherwise.
// content is never modified.
func (b *Builder) Build(selector string, content props.Content, text ...string) (*dom.Node, error) {
	sel := ParseSelector(selector)

	p := props.New()
	var txt *string
	if len(text) > 0 {
		txt = &text[0]
	}
	switch c := content.(type) {
	case props.Text:
		s := string(c)
		txt = &s
	case *props.Props:
		p = c.Copy()
	}

	if txt != nil {
		p.Set("textContent", *txt)
	}
	if sel.HasID {
		p.Set("id", sel.ID)
	}

	var tokens []string
	if cn, ok := p.Get("className"); ok && cn != nil {
		tokens = append(tokens, fmt.Sprint(cn))
	}
	tokens = append(tokens, sel.Classes...)
	p.Set("className", strings.TrimSpace(strings.Join(Trim(tokens), " ")))

	b.log.WithFields(logrus.Fields{
		"selector": selector,
		"kind":     sel.Kind,
		"id":       sel.ID,
		"props":    p.Keys(),
	}).Debug("building element")

	el, err := b.doc.CreateElement(sel.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "tag %q", selector)
	}
	err = p.Each(func(k string, v interface{}) error {
		if el.HasProperty(k) {
			return el.SetProperty(k, v)
		}
		return el.SetAttribute(k, dom.ToDOMString(v))
	})
	if err != nil {
		return nil, errors.Wrapf(err, "tag %q", selector)
	}
	return el, nil
}

var defaultBuilder = NewBuilder()

// Build creates an element with the package's default builder.
func Build(selector string, content props.Content, text ...string) (*dom.Node, error) {
	return defaultBuilder.Build(selector, content, text...)
}

// Must panics if err is not nil. It is meant for selectors known to be valid.
func Must(n *dom.Node, err error) *dom.Node {
	if err != nil {
		panic(err)
	}
	return n
}
