package object

import (
	"fmt"

	"github.com/go-seeds/seeds/pkg/dictutil"
	"github.com/go-seeds/seeds/pkg/errors"
)

// Instance is an object of a Class. Instance attributes live in a Bag;
// attribute reads fall back to class attributes along the linearization.
type Instance struct {
	class *Class
	attrs dictutil.Bag
}

// Class returns the instance's runtime class.
func (i *Instance) Class() *Class {
	return i.class
}

// Call invokes the first definition of name along the runtime class's
// linearization, bound to this instance.
func (i *Instance) Call(name string, args ...any) (any, error) {
	const op = "object.Call"
	chain, err := Linearize(i.class)
	if err != nil {
		return nil, err
	}
	for _, cls := range chain {
		if m, ok := cls.methods[name]; ok {
			return m.Call(i, args...)
		}
	}
	return nil, errors.Newf(op, errors.KindLookup, "%s has no method %q", i.class.name, name)
}

// Get returns the attribute of that name, checking instance attributes
// first and then class attributes along the linearization.
func (i *Instance) Get(name string) (any, bool) {
	if v, ok := i.attrs.Get(name); ok {
		return v, true
	}
	return i.class.Attr(name)
}

// Set stores an instance attribute.
func (i *Instance) Set(name string, value any) {
	i.attrs.Set(name, value)
}

// Delete removes an instance attribute and reports whether it existed.
// Class attributes are never affected.
func (i *Instance) Delete(name string) bool {
	return i.attrs.Delete(name)
}

// Attrs returns the instance's own attribute bag.
func (i *Instance) Attrs() dictutil.Bag {
	return i.attrs
}

// IsA reports whether target appears in the runtime class's linearization.
func (i *Instance) IsA(target *Class) bool {
	return i.class.IsSubclassOf(target)
}

// String uses __repr__ when the hierarchy defines one, falling back to
// "<ClassName instance>".
func (i *Instance) String() string {
	if i == nil || i.class == nil {
		return "<nil instance>"
	}
	chain, err := Linearize(i.class)
	if err == nil {
		for _, cls := range chain {
			if m, ok := cls.methods["__repr__"]; ok {
				if out, err := m.Call(i); err == nil {
					if s, ok := out.(string); ok {
						return s
					}
				}
				break
			}
		}
	}
	return fmt.Sprintf("<%s instance>", i.class.name)
}
