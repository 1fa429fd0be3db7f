package dom

// EventHandler is https://html.spec.whatwg.org/#eventhandler
type EventHandler func(e *Event)

// Event is https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	Bubbles       bool
	Cancelable    bool

	defaultPrevented bool
	stopped          bool
}

func NewEvent(eventType string, bubbles, cancelable bool) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    bubbles,
		Cancelable: cancelable,
	}
}

func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
func (e *Event) StopPropagation()       { e.stopped = true }

// Handler returns the on<eventType> handler of an element, or nil.
func (n *Node) Handler(eventType string) EventHandler {
	if n.Element == nil {
		return nil
	}
	return n.Element.handlers[eventType]
}

func (n *Node) setHandler(eventType string, value interface{}) error {
	var h EventHandler
	switch v := value.(type) {
	case nil:
	case EventHandler:
		h = v
	case func(*Event):
		h = v
	default:
		return newException(TypeError, "on%s must be a function, got %T", eventType, value)
	}
	if h == nil {
		delete(n.Element.handlers, eventType)
		return nil
	}
	if n.Element.handlers == nil {
		n.Element.handlers = make(map[string]EventHandler)
	}
	n.Element.handlers[eventType] = h
	return nil
}

// DispatchEvent runs the event handlers of n and, for bubbling events, of its
// ancestors. It returns false if a handler cancelled the event.
func (n *Node) DispatchEvent(e *Event) bool {
	e.Target = n
	for cur := n; cur != nil; cur = cur.ParentNode {
		if h := cur.Handler(e.Type); h != nil {
			e.CurrentTarget = cur
			h(e)
		}
		if !e.Bubbles || e.stopped {
			break
		}
	}
	e.CurrentTarget = nil
	return !e.defaultPrevented
}
