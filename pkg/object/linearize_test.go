package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-seeds/seeds/pkg/errors"
)

func names(chain []*Class) []string {
	out := make([]string, len(chain))
	for i, c := range chain {
		out[i] = c.name
	}
	return out
}

func TestLinearizeSingleChain(t *testing.T) {
	a := MustDefine(ClassDef{Name: "A"})
	b := MustDefine(ClassDef{Name: "B", Bases: []*Class{a}})
	c := MustDefine(ClassDef{Name: "C", Bases: []*Class{b}})

	lin, err := Linearize(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, names(lin))
}

func TestLinearizeDiamond(t *testing.T) {
	root := MustDefine(ClassDef{Name: "Root"})
	left := MustDefine(ClassDef{Name: "Left", Bases: []*Class{root}})
	right := MustDefine(ClassDef{Name: "Right", Bases: []*Class{root}})
	leaf := MustDefine(ClassDef{Name: "Leaf", Bases: []*Class{left, right}})

	lin, err := Linearize(leaf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Leaf", "Left", "Right", "Root"}, names(lin))
}

func TestLinearizeRespectsBaseOrder(t *testing.T) {
	a := MustDefine(ClassDef{Name: "A"})
	b := MustDefine(ClassDef{Name: "B"})
	c := MustDefine(ClassDef{Name: "C", Bases: []*Class{b, a}})

	lin, err := Linearize(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, names(lin))
}

func TestDefineRejectsInconsistentHierarchy(t *testing.T) {
	a := MustDefine(ClassDef{Name: "A"})
	b := MustDefine(ClassDef{Name: "B", Bases: []*Class{a}})

	// A before B contradicts B's own linearization (B before A).
	_, err := Define(ClassDef{Name: "C", Bases: []*Class{a, b}})
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindDefine))
}

func TestAncestorsExcludesSelf(t *testing.T) {
	a := MustDefine(ClassDef{Name: "A"})
	b := MustDefine(ClassDef{Name: "B", Bases: []*Class{a}})

	anc, err := b.Ancestors()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, names(anc))
}

func TestLinearizeNilClass(t *testing.T) {
	_, err := Linearize(nil)
	assert.Error(t, err)
}

func TestDiamondDispatchVisitsEachClassOnce(t *testing.T) {
	var calls []string
	root := MustDefine(ClassDef{
		Name:    "Root",
		Methods: Methods{"m": record(&calls, "Root")},
	})
	left := MustDefine(ClassDef{
		Name:    "Left",
		Bases:   []*Class{root},
		Methods: Methods{"m": Before(record(&calls, "Left"))},
	})
	right := MustDefine(ClassDef{
		Name:    "Right",
		Bases:   []*Class{root},
		Methods: Methods{"m": Before(record(&calls, "Right"))},
	})
	leaf := MustDefine(ClassDef{
		Name:    "Leaf",
		Bases:   []*Class{left, right},
		Methods: Methods{"m": Before(record(&calls, "Leaf"))},
	})

	_, err := leaf.MustNew().Call("m")
	require.NoError(t, err)

	// Resolution follows the leaf's linearization (Leaf, Left, Right,
	// Root), so Left's hook finds Right, not Root.
	assert.Equal(t, []string{"Root", "Right", "Left", "Leaf"}, calls)
}
