package object

import (
	"github.com/go-seeds/seeds/pkg/dictutil"
	"github.com/go-seeds/seeds/pkg/errors"
)

// Func is a method body. The receiver is passed explicitly; args carry the
// call's positional arguments.
type Func func(self *Instance, args ...any) (any, error)

// StaticFunc is a class-scoped function with no receiver.
type StaticFunc func(args ...any) (any, error)

// Methods declares a class's own methods. Values may be a Func (or a bare
// function literal of the same signature) for a plain method, or a *Method
// produced by Before or After.
type Methods map[string]any

// ClassDef declares a class. Bases are searched in C3 order.
type ClassDef struct {
	Name    string
	Bases   []*Class
	Methods Methods
	Statics map[string]StaticFunc
	Attrs   map[string]any
}

// Class is a runtime class value. Classes are built once via Define and
// mutated only by decoration; all per-call state lives on instances.
type Class struct {
	name    string
	bases   []*Class
	methods map[string]*Method
	statics map[string]StaticFunc
	attrs   map[string]any
}

// Define builds a class from def. It fails fast on an empty name, nil or
// non-linearizable bases, and members that are neither method functions
// nor wrapped methods.
func Define(def ClassDef) (*Class, error) {
	const op = "object.Define"
	if def.Name == "" {
		return nil, errors.Newf(op, errors.KindDefine, "class name must not be empty")
	}
	for _, b := range def.Bases {
		if b == nil {
			return nil, errors.Newf(op, errors.KindDefine, "%s: base class is nil", def.Name)
		}
	}

	cls := &Class{
		name:    def.Name,
		bases:   append([]*Class(nil), def.Bases...),
		methods: make(map[string]*Method, len(def.Methods)),
		statics: make(map[string]StaticFunc, len(def.Statics)),
		attrs:   make(map[string]any, len(def.Attrs)),
	}

	// The hierarchy must linearize; an inconsistent diamond is a
	// definition error, not a call-time surprise.
	if _, err := Linearize(cls); err != nil {
		return nil, err
	}

	for name, member := range def.Methods {
		m, err := cls.adoptMember(op, name, member)
		if err != nil {
			return nil, err
		}
		cls.methods[name] = m
	}
	for name, fn := range def.Statics {
		if fn == nil {
			return nil, errors.Newf(op, errors.KindDefine, "%s.%s: static function is nil", def.Name, name)
		}
		cls.statics[name] = fn
	}
	for name, v := range def.Attrs {
		cls.attrs[name] = v
	}
	return cls, nil
}

// MustDefine is like Define but panics on error. It is intended for
// class definitions at package init time.
func MustDefine(def ClassDef) *Class {
	cls, err := Define(def)
	if err != nil {
		panic(err)
	}
	return cls
}

// adoptMember normalizes a declared member into a *Method owned by cls.
func (c *Class) adoptMember(op, name string, member any) (*Method, error) {
	switch v := member.(type) {
	case *Method:
		if v == nil || v.fn == nil {
			return nil, errors.Newf(op, errors.KindDefine, "%s.%s: nil method", c.name, name)
		}
		if v.owner != nil && v.owner != c {
			return nil, errors.Newf(op, errors.KindDefine,
				"%s.%s: method already bound to %s", c.name, name, v.owner.name)
		}
		v.owner = c
		v.name = name
		return v, nil
	case Func:
		if v == nil {
			return nil, errors.Newf(op, errors.KindDefine, "%s.%s: nil method", c.name, name)
		}
		return &Method{fn: v, mode: ModeNone, name: name, owner: c}, nil
	case func(*Instance, ...any) (any, error):
		if v == nil {
			return nil, errors.Newf(op, errors.KindDefine, "%s.%s: nil method", c.name, name)
		}
		return &Method{fn: v, mode: ModeNone, name: name, owner: c}, nil
	default:
		return nil, errors.Newf(op, errors.KindDefine,
			"%s.%s: unsupported member type %T, want a method func or wrapped method", c.name, name, member)
	}
}

// SetMethod attaches a member after definition, with the same validation
// and owner binding Define performs. It replaces any existing member of
// the same name.
func (c *Class) SetMethod(name string, member any) error {
	m, err := c.adoptMember("object.SetMethod", name, member)
	if err != nil {
		return err
	}
	c.methods[name] = m
	return nil
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Bases returns the direct base classes in declaration order.
func (c *Class) Bases() []*Class {
	return append([]*Class(nil), c.bases...)
}

// Method returns the class's own (non-inherited) member of that name.
func (c *Class) Method(name string) (*Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// MethodNames returns the names of the class's own members.
func (c *Class) MethodNames() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	return names
}

// Attr returns the class attribute of that name, searching the ancestor
// chain in linearization order.
func (c *Class) Attr(name string) (any, bool) {
	chain, err := Linearize(c)
	if err != nil {
		return nil, false
	}
	for _, cls := range chain {
		if v, ok := cls.attrs[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// CallStatic invokes the first static function of that name found along
// the ancestor chain.
func (c *Class) CallStatic(name string, args ...any) (any, error) {
	const op = "object.CallStatic"
	chain, err := Linearize(c)
	if err != nil {
		return nil, err
	}
	for _, cls := range chain {
		if fn, ok := cls.statics[name]; ok {
			return fn(args...)
		}
	}
	return nil, errors.Newf(op, errors.KindLookup, "%s has no static function %q", c.name, name)
}

// New creates an instance of the class, dispatching __init__ through the
// normal method lookup when any class in the chain defines it.
func (c *Class) New(args ...any) (*Instance, error) {
	const op = "object.New"
	inst := &Instance{class: c, attrs: dictutil.Bag{}}
	chain, err := Linearize(c)
	if err != nil {
		return nil, err
	}
	for _, cls := range chain {
		if _, ok := cls.methods[initName]; ok {
			if _, err := inst.Call(initName, args...); err != nil {
				return nil, err
			}
			return inst, nil
		}
	}
	if len(args) > 0 {
		return nil, errors.Newf(op, errors.KindCall, "%s defines no __init__ but got %d arguments", c.name, len(args))
	}
	return inst, nil
}

// MustNew is like New but panics on error.
func (c *Class) MustNew(args ...any) *Instance {
	inst, err := c.New(args...)
	if err != nil {
		panic(err)
	}
	return inst
}

const initName = "__init__"
