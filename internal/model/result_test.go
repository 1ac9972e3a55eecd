package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsWin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos  Position
		want bool
	}{
		{"1", true},
		{"1 ", false},
		{" 1", false},
		{"01", false},
		{"1.0", false},
		{"10", false},
		{"R", false},
		{`\N`, false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pos.IsWin(), "position %q", tt.pos)
	}
}

func TestPosition_Numeric(t *testing.T) {
	t.Parallel()

	t.Run("numeric values parse", func(t *testing.T) {
		t.Parallel()
		v, ok := Position("3").Numeric()
		assert.True(t, ok)
		assert.InDelta(t, 3.0, v, 1e-9)

		v, ok = Position("1.0").Numeric()
		assert.True(t, ok)
		assert.InDelta(t, 1.0, v, 1e-9)
	})

	t.Run("markers are missing", func(t *testing.T) {
		t.Parallel()
		for _, p := range []Position{"R", "D", "NC", "W", `\N`, "", "NaN", "Inf"} {
			_, ok := p.Numeric()
			assert.False(t, ok, "position %q", p)
		}
	})
}

func TestDriver_WithFullName(t *testing.T) {
	t.Parallel()

	d := Driver{ID: 1, Forename: "Kimi", Surname: "Räikkönen"}.WithFullName()
	assert.Equal(t, "Kimi Räikkönen", d.FullName)

	// No trimming or case folding.
	d = Driver{Forename: "  lewis", Surname: "HAMILTON"}.WithFullName()
	assert.Equal(t, "  lewis HAMILTON", d.FullName)
}
