package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedErrorString(t *testing.T) {
	err := New("object.Define", KindDefine, stderrors.New("empty class name"))
	assert.Equal(t, `object.Define [define]: empty class name`, err.Error())
}

func TestSeedErrorUnwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := New("object.Call", KindCall, inner)
	assert.True(t, stderrors.Is(err, inner))
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDefine, "define"},
		{KindDecorate, "decorate"},
		{KindLookup, "lookup"},
		{KindCall, "call"},
		{KindParse, "parse"},
		{KindRender, "render"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestIsKind(t *testing.T) {
	err := Newf("table.Load", KindParse, "row %d is ragged", 3)
	assert.True(t, IsKind(err, KindParse))
	assert.False(t, IsKind(err, KindCall))

	wrapped := fmt.Errorf("loading definition: %w", err)
	assert.True(t, IsKind(wrapped, KindParse))

	assert.False(t, IsKind(stderrors.New("plain"), KindParse))
	assert.False(t, IsKind(nil, KindParse))
}
