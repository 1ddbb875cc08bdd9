package action

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrNoAction is returned when nothing has been registered under a name.
var ErrNoAction = errors.New("no action found")

// Mapper lets a service name the steps it delegates to its domain objects.
// The service looks the step up by name at call time, so the default can be
// swapped for a stub in tests without the service growing a constructor
// argument per collaborator.
type Mapper struct {
	actions map[string]any
}

func (m *Mapper) Add(name string, fn any) *Mapper {
	if m.actions == nil {
		m.actions = make(map[string]any)
	}

	m.actions[name] = fn

	return m
}

func (m *Mapper) Get(name string) (any, error) {
	v, ok := m.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w for: %s", ErrNoAction, name)
	}

	return v, nil
}

// Merge copies every action from o that m doesn't already have.
func (m *Mapper) Merge(o *Mapper) *Mapper {
	if o == nil {
		return m
	}

	for name, fn := range o.actions {
		if _, ok := m.actions[name]; !ok {
			m.Add(name, fn)
		}
	}

	return m
}

func (m *Mapper) All() []string {
	return slices.Collect(maps.Keys(m.actions))
}

// Lookup fetches the action stored under name and asserts it to T.
func Lookup[T any](m *Mapper, name string) (T, error) {
	var zero T

	v, err := m.Get(name)
	if err != nil {
		return zero, err
	}

	fn, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("action %q is a %T, not a %T", name, v, zero)
	}

	return fn, nil
}
