package mouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	tests := []struct {
		name   string
		x, y   int
		expect bool
	}{
		{"inside", 15, 30, true},
		{"top-left corner", 10, 20, true},
		{"right edge exclusive", 40, 30, false},
		{"bottom edge exclusive", 15, 60, false},
		{"just inside right", 39, 30, true},
		{"just inside bottom", 15, 59, true},
		{"left of rect", 9, 30, false},
		{"above rect", 15, 19, false},
		{"far outside", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRect_Contains_ZeroSize(t *testing.T) {
	assert.False(t, Rect{X: 5, Y: 5, W: 0, H: 10}.Contains(5, 5))
	assert.False(t, Rect{X: 5, Y: 5, W: 10, H: 0}.Contains(5, 5))
	assert.True(t, Rect{}.IsZero())
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	assert.Equal(t, 6, r.Right())
	assert.Equal(t, 8, r.Bottom())
}

func TestHitMap_OverlappingRegions(t *testing.T) {
	hm := NewHitMap()
	hm.Add("bottom", Rect{X: 0, Y: 0, W: 20, H: 20}, "bottom-data")
	hm.AddRect("top", 5, 5, 10, 10, "top-data")

	r := hm.Test(7, 7)
	require.NotNil(t, r)
	assert.Equal(t, "top", r.ID)
	assert.Equal(t, "top-data", r.Data)

	r = hm.Test(2, 2)
	require.NotNil(t, r)
	assert.Equal(t, "bottom", r.ID)

	assert.Nil(t, hm.Test(50, 50))
}

func TestHitMap_Clear(t *testing.T) {
	hm := NewHitMap()
	hm.Add("a", Rect{X: 0, Y: 0, W: 10, H: 10}, nil)
	require.NotNil(t, hm.Test(5, 5))
	assert.Equal(t, 1, hm.Len())

	hm.Clear()

	assert.Nil(t, hm.Test(5, 5))
	assert.Equal(t, 0, hm.Len())
}
