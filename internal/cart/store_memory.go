package cart

import "sync"

// Store is the single authoritative holder of the session cart. Lines are
// keyed by product name, which makes uniqueness free, with a separate slice
// preserving insertion order for rendering and the purchase items string.
//
// Mutations are total functions over the current state: increase/decrease on
// an absent name is a no-op, never an error, because the UI may race a stale
// reference (a double-click on decrease after the line was already removed).
type Store struct {
	mu          sync.RWMutex
	lines       map[string]*Line
	order       []string
	subscribers []func(Summary)
}

func NewStore() *Store {
	return &Store{lines: make(map[string]*Line)}
}

// Subscribe registers fn to run after every effective mutation with the new
// summary. No-op mutations do not notify. Callbacks run outside the store
// lock, on the mutating goroutine.
func (s *Store) Subscribe(fn func(Summary)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add appends qty of the named product, creating the line on first add.
// A later add at a different price does not touch the stored price; the
// first price wins for the line's lifetime. Empty names and non-positive
// quantities are ignored.
func (s *Store) Add(name string, price float64, qty int) {
	if name == "" || qty < 1 {
		return
	}
	if price < 0 {
		price = 0
	}

	s.mu.Lock()
	if line, ok := s.lines[name]; ok {
		line.Quantity += qty
	} else {
		s.lines[name] = &Line{Name: name, Price: price, Quantity: qty}
		s.order = append(s.order, name)
	}
	s.mu.Unlock()

	s.notify()
}

// Increase bumps the named line's quantity by one. Absent name is a no-op.
func (s *Store) Increase(name string) {
	s.mu.Lock()
	line, ok := s.lines[name]
	if ok {
		line.Quantity++
	}
	s.mu.Unlock()

	if ok {
		s.notify()
	}
}

// Decrease lowers the named line's quantity by one, removing the line when it
// reaches zero. Absent name is a no-op.
func (s *Store) Decrease(name string) {
	s.mu.Lock()
	line, ok := s.lines[name]
	if ok {
		line.Quantity--
		if line.Quantity <= 0 {
			s.remove(name)
		}
	}
	s.mu.Unlock()

	if ok {
		s.notify()
	}
}

// Clear empties the cart. Idempotent; clearing an empty cart does not notify.
func (s *Store) Clear() {
	s.mu.Lock()
	changed := len(s.lines) > 0
	s.lines = make(map[string]*Line)
	s.order = nil
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Summary returns the derived view: lines in insertion order, total as
// Σ price×quantity, count as Σ quantity. An empty cart yields zero values
// with an empty (non-nil) lines slice.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summaryLocked()
}

func (s *Store) summaryLocked() Summary {
	sum := Summary{Lines: make([]Line, 0, len(s.order))}
	for _, name := range s.order {
		line := s.lines[name]
		sum.Lines = append(sum.Lines, *line)
		sum.Total += line.Price * float64(line.Quantity)
		sum.Count += line.Quantity
	}
	return sum
}

// remove expects the lock to be held.
func (s *Store) remove(name string) {
	delete(s.lines, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	sum := s.summaryLocked()
	subs := make([]func(Summary), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(sum)
	}
}
