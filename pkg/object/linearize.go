package object

import "github.com/go-seeds/seeds/pkg/errors"

// Linearize returns the C3 linearization of c: c itself first, then its
// ancestors in deterministic resolution order. The result is recomputed on
// every call so classes defined after their ancestors were decorated
// resolve correctly; nothing is cached.
func Linearize(c *Class) ([]*Class, error) {
	const op = "object.Linearize"
	if c == nil {
		return nil, errors.Newf(op, errors.KindLookup, "nil class")
	}
	sequences := make([][]*Class, 0, len(c.bases)+1)
	for _, base := range c.bases {
		lin, err := Linearize(base)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, lin)
	}
	sequences = append(sequences, append([]*Class(nil), c.bases...))

	merged, err := mergeC3(sequences)
	if err != nil {
		return nil, errors.Newf(op, errors.KindDefine,
			"inconsistent hierarchy for %s: no valid linearization", c.name)
	}
	return append([]*Class{c}, merged...), nil
}

// Ancestors returns the class's linearized ancestor chain, excluding the
// class itself.
func (c *Class) Ancestors() ([]*Class, error) {
	lin, err := Linearize(c)
	if err != nil {
		return nil, err
	}
	return lin[1:], nil
}

// IsSubclassOf reports whether target appears in c's linearization.
func (c *Class) IsSubclassOf(target *Class) bool {
	lin, err := Linearize(c)
	if err != nil {
		return false
	}
	for _, cls := range lin {
		if cls == target {
			return true
		}
	}
	return false
}

// mergeC3 is the C3 merge step: repeatedly take the head of some sequence
// that appears in no other sequence's tail, until all sequences are
// consumed. Failure to find such a head means the hierarchy is
// inconsistent.
func mergeC3(sequences [][]*Class) ([]*Class, error) {
	var result []*Class
	for {
		sequences = dropEmpty(sequences)
		if len(sequences) == 0 {
			return result, nil
		}
		head := pickHead(sequences)
		if head == nil {
			return nil, errInconsistent
		}
		result = append(result, head)
		for i, seq := range sequences {
			sequences[i] = removeClass(seq, head)
		}
	}
}

var errInconsistent = errors.Newf("object.Linearize", errors.KindDefine, "inconsistent hierarchy")

func pickHead(sequences [][]*Class) *Class {
	for _, seq := range sequences {
		candidate := seq[0]
		if !inAnyTail(candidate, sequences) {
			return candidate
		}
	}
	return nil
}

func inAnyTail(c *Class, sequences [][]*Class) bool {
	for _, seq := range sequences {
		for _, other := range seq[1:] {
			if other == c {
				return true
			}
		}
	}
	return false
}

func dropEmpty(sequences [][]*Class) [][]*Class {
	kept := sequences[:0]
	for _, seq := range sequences {
		if len(seq) > 0 {
			kept = append(kept, seq)
		}
	}
	return kept
}

func removeClass(seq []*Class, c *Class) []*Class {
	kept := seq[:0]
	for _, other := range seq {
		if other != c {
			kept = append(kept, other)
		}
	}
	return kept
}
