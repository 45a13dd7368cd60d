package object

import "github.com/go-seeds/seeds/pkg/errors"

// Method is a class member: a method body plus its super-call mode and,
// once attached to a class, its name and owning class. Mode and owner
// never change after binding; only the resolved ancestor target is
// recomputed, once per call, against the receiver's runtime class.
type Method struct {
	fn    Func
	mode  Mode
	name  string
	owner *Class
	auto  bool
}

// Before wraps fn so the next ancestor implementation of the same name
// runs before fn's body. Panics on a nil function.
func Before(fn Func) *Method {
	if fn == nil {
		panic(errors.Newf("object.Before", errors.KindDecorate, "nil method func"))
	}
	return &Method{fn: fn, mode: ModeBefore}
}

// After wraps fn so the next ancestor implementation of the same name
// runs after fn's body. Panics on a nil function.
func After(fn Func) *Method {
	if fn == nil {
		panic(errors.Newf("object.After", errors.KindDecorate, "nil method func"))
	}
	return &Method{fn: fn, mode: ModeAfter}
}

// Mode returns the method's super-call mode.
func (m *Method) Mode() Mode {
	return m.mode
}

// Name returns the member name, or "" before the method is attached to a
// class.
func (m *Method) Name() string {
	return m.name
}

// Owner returns the owning class, or nil before attachment.
func (m *Method) Owner() *Class {
	return m.owner
}

// Auto reports whether the wrapper was produced by the class
// auto-decoration pass rather than an explicit Before or After.
func (m *Method) Auto() bool {
	return m.auto
}

// Call invokes the method bound to self.
//
// In before mode the next ancestor implementation, if any, runs first
// with the same arguments and its result is discarded; in after mode it
// runs after the body. The return value is always the body's own result.
// A missing ancestor implementation is skipped silently; an ancestor
// error propagates unchanged.
func (m *Method) Call(self *Instance, args ...any) (any, error) {
	const op = "object.Method.Call"
	if m == nil || m.fn == nil {
		return nil, errors.Newf(op, errors.KindCall, "nil method")
	}
	if self == nil {
		return nil, errors.Newf(op, errors.KindCall, "nil receiver for %q", m.name)
	}
	if m.mode == ModeNone {
		return m.fn(self, args...)
	}

	next, err := m.nextAncestor(self.class)
	if err != nil {
		return nil, err
	}

	if m.mode == ModeBefore {
		if next != nil {
			if _, err := next.Call(self, args...); err != nil {
				return nil, err
			}
		}
		return m.fn(self, args...)
	}

	result, err := m.fn(self, args...)
	if err != nil {
		return nil, err
	}
	if next != nil {
		if _, err := next.Call(self, args...); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// nextAncestor finds the first definition of m's name strictly after m's
// owner in the runtime class's linearization. A nil result with nil error
// means no ancestor defines the name, which is not an error.
func (m *Method) nextAncestor(runtime *Class) (*Method, error) {
	const op = "object.Method.Call"
	chain, err := Linearize(runtime)
	if err != nil {
		return nil, err
	}

	start := -1
	if m.owner != nil {
		for i, cls := range chain {
			if cls == m.owner {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, errors.Newf(op, errors.KindCall,
				"receiver class %s does not descend from %s", runtime.name, m.owner.name)
		}
	} else {
		// Unbound wrapper: infer the owner as the class whose own table
		// holds this exact wrapper.
		for i, cls := range chain {
			if cls.methods[m.name] == m {
				start = i
				break
			}
		}
		if start < 0 {
			return nil, errors.Newf(op, errors.KindCall,
				"method %q is not attached to any class in %s's hierarchy", m.name, runtime.name)
		}
	}

	for _, cls := range chain[start+1:] {
		if next, ok := cls.methods[m.name]; ok {
			return next, nil
		}
	}
	return nil, nil
}
