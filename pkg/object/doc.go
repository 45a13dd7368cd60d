// Package object implements a small dynamic class model with automatic
// super-call hooks.
//
// Go has no inheritance, so ancestry is explicit registry data: a Class
// holds named method functions and a list of base classes, and instances
// dispatch through the linearized ancestor order of their runtime class
// (C3, the same order Python and CLOS use). On top of that sits the point
// of the package: a method can be wrapped so that the next ancestor
// definition of the same name runs automatically before or after its own
// body, removing "call the parent first" boilerplate.
//
// # Defining classes
//
//	base := object.MustDefine(object.ClassDef{
//	    Name: "Base",
//	    Methods: object.Methods{
//	        "setup": func(self *object.Instance, args ...any) (any, error) {
//	            fmt.Println("Base setup")
//	            return nil, nil
//	        },
//	    },
//	})
//
//	derived := object.MustDefine(object.ClassDef{
//	    Name:  "Derived",
//	    Bases: []*object.Class{base},
//	    Methods: object.Methods{
//	        "setup": object.Before(func(self *object.Instance, args ...any) (any, error) {
//	            fmt.Println("Derived setup")
//	            return nil, nil
//	        }),
//	    },
//	})
//
//	inst := derived.MustNew()
//	inst.Call("setup")
//	// Base setup
//	// Derived setup
//
// # Hooks
//
// Before wraps a method so the ancestor implementation runs first; After
// runs it afterwards. In both modes the ancestor's return value is
// discarded and the wrapped function's own result is returned. A missing
// ancestor implementation is silently skipped; an ancestor error
// propagates unchanged.
//
// The ancestor is resolved per call against the receiver's runtime class,
// not the class the hook was attached to, so subclasses defined later
// slot into the chain correctly.
//
// # Class-level decoration
//
// DecorateClass walks a class's own members and wraps every plain method
// that overrides an ancestor definition in before mode. Members already
// wrapped explicitly keep their mode, and protocol names (__init__ and
// friends) are never wrapped automatically. Super is the combined entry
// point: applied to a class it decorates the class, applied to a method
// function it wraps it in before mode.
package object
