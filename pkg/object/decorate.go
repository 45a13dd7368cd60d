package object

import (
	"strings"

	"github.com/go-seeds/seeds/pkg/errors"
)

// DecorateClass applies before-mode wrapping to every plain member of cls
// that overrides an ancestor definition of the same name.
//
// Skipped: protocol names (leading and trailing double underscore),
// members already carrying an explicit before/after mode, statics, and
// members with no ancestor counterpart. The class itself is returned;
// identity is preserved.
func DecorateClass(cls *Class) *Class {
	if cls == nil {
		panic(errors.Newf("object.DecorateClass", errors.KindDecorate, "nil class"))
	}
	for name, m := range cls.methods {
		if isProtocolName(name) {
			continue
		}
		if m.mode != ModeNone {
			// Explicit decoration always wins over the automatic pass.
			continue
		}
		if !hasAncestorDefinition(cls, name) {
			continue
		}
		cls.methods[name] = &Method{
			fn:    m.fn,
			mode:  ModeBefore,
			name:  name,
			owner: cls,
			auto:  true,
		}
	}
	return cls
}

// Super is the combined decoration entry point: applied to a *Class it
// runs DecorateClass, applied to a method func it wraps the func in
// before mode. Any other target panics at decoration time.
func Super(target any) any {
	switch v := target.(type) {
	case *Class:
		return DecorateClass(v)
	case Func:
		return Before(v)
	case func(*Instance, ...any) (any, error):
		return Before(v)
	case *Method:
		panic(errors.Newf("object.Super", errors.KindDecorate,
			"method %q is already wrapped in %s mode", v.name, v.mode))
	default:
		panic(errors.Newf("object.Super", errors.KindDecorate,
			"cannot decorate %T, want *Class or a method func", target))
	}
}

// hasAncestorDefinition reports whether any ancestor of cls defines name
// as a method.
func hasAncestorDefinition(cls *Class, name string) bool {
	ancestors, err := cls.Ancestors()
	if err != nil {
		return false
	}
	for _, anc := range ancestors {
		if _, ok := anc.methods[name]; ok {
			return true
		}
	}
	return false
}

// isProtocolName reports whether name follows the __dunder__ convention
// reserved for protocol methods.
func isProtocolName(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}
