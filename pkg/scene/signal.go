package scene

import "github.com/google/uuid"

// Conn is a disposable subscription handle returned by the On* methods.
// Disconnect releases the subscription; calling it more than once, or
// after the source node has been destroyed, is a no-op.
type Conn interface {
	Disconnect()
}

// signal is a synchronous event source. Handlers are keyed by a uuid so a
// Conn can release exactly its own registration, and kept in connection
// order so delivery is deterministic.
type signal[T any] struct {
	handlers map[string]func(T)
	order    []string
}

func newSignal[T any]() *signal[T] {
	return &signal[T]{handlers: make(map[string]func(T))}
}

func (s *signal[T]) connect(fn func(T)) Conn {
	id := uuid.NewString()
	s.handlers[id] = fn
	s.order = append(s.order, id)
	return &conn[T]{sig: s, id: id}
}

// emit delivers v to every handler connected at the time of the call.
// Handlers connected or disconnected during delivery take effect on the
// next emit, never on the in-flight one.
func (s *signal[T]) emit(v T) {
	ids := make([]string, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		if fn, ok := s.handlers[id]; ok {
			fn(v)
		}
	}
}

func (s *signal[T]) clear() {
	s.handlers = make(map[string]func(T))
	s.order = nil
}

// conn ties a handler registration back to its signal.
type conn[T any] struct {
	sig *signal[T]
	id  string
}

func (c *conn[T]) Disconnect() {
	if c.sig == nil {
		return
	}
	delete(c.sig.handlers, c.id)
	for i, id := range c.sig.order {
		if id == c.id {
			c.sig.order = append(c.sig.order[:i], c.sig.order[i+1:]...)
			break
		}
	}
	c.sig = nil
}

// noopConn is handed out when subscribing to an already-destroyed node.
type noopConn struct{}

func (noopConn) Disconnect() {}
