package xattr

import (
	"slices"
	"sync"
)

// Memory is an in-process Attributes implementation. Values are copied on
// the way in and out, so callers cannot alias stored blobs. Failures can be
// injected per operation and attribute name to exercise error paths.
type Memory struct {
	mu       sync.Mutex
	attrs    map[string][]byte
	failures map[string]error
	writes   int
}

// NewMemory returns an empty attribute namespace.
func NewMemory() *Memory {
	return &Memory{
		attrs:    make(map[string][]byte),
		failures: make(map[string]error),
	}
}

// Fail makes every subsequent op ("get", "set" or "remove") on name return
// err. A nil err clears the injected failure.
func (m *Memory) Fail(op, name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.failures, op+" "+name)
		return
	}
	m.failures[op+" "+name] = err
}

func (m *Memory) failure(op, name string) error {
	if err, ok := m.failures[op+" "+name]; ok {
		return &Error{Op: op, Path: "memory", Name: name, Err: err}
	}
	return nil
}

func (m *Memory) Get(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("get", name); err != nil {
		return nil, err
	}
	v, ok := m.attrs[name]
	if !ok {
		return nil, &Error{Op: "get", Path: "memory", Name: name, Err: ErrNotExist}
	}
	return slices.Clone(v), nil
}

func (m *Memory) Set(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("set", name); err != nil {
		return err
	}
	m.attrs[name] = slices.Clone(data)
	m.writes++
	return nil
}

func (m *Memory) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("remove", name); err != nil {
		return err
	}
	if _, ok := m.attrs[name]; !ok {
		return &Error{Op: "remove", Path: "memory", Name: name, Err: ErrNotExist}
	}
	delete(m.attrs, name)
	return nil
}

// Names returns the attribute names currently set, sorted.
func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.attrs))
	for k := range m.attrs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Writes returns how many successful Set calls have been made.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
