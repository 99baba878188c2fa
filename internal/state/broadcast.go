package state

// Subscription is the handle returned by a Subscribe call. Unsubscribe
// releases the callback; calling it more than once is harmless.
type Subscription struct {
	release func()
}

// Unsubscribe stops further deliveries to the subscribed callback.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.release == nil {
		return
	}
	s.release()
	s.release = nil
}

// broadcast is an observer list delivering values synchronously in
// registration order.
type broadcast[T any] struct {
	nextID int
	subs   []*subscriber[T]
}

type subscriber[T any] struct {
	id     int
	fn     func(T)
	active bool
}

func (b *broadcast[T]) subscribe(fn func(T)) *Subscription {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, &subscriber[T]{id: id, fn: fn, active: true})
	return &Subscription{release: func() { b.remove(id) }}
}

func (b *broadcast[T]) remove(id int) {
	kept := make([]*subscriber[T], 0, len(b.subs))
	for _, s := range b.subs {
		if s.id == id {
			s.active = false
			continue
		}
		kept = append(kept, s)
	}
	b.subs = kept
}

// emit calls every subscriber registered at the time of the call, skipping
// any that an earlier callback unsubscribed. value is invoked once per
// subscriber so each receives its own copy.
func (b *broadcast[T]) emit(value func() T) {
	subs := b.subs
	for _, s := range subs {
		if !s.active {
			continue
		}
		s.fn(value())
	}
}

func (b *broadcast[T]) len() int {
	return len(b.subs)
}
