package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	t.Parallel()

	desktop := Size{Width: 1280, Height: 800}

	tests := []struct {
		name   string
		anchor Point
		view   Size
		height float64
		want   Rect
	}{
		{
			name:   "centered above",
			anchor: Point{X: 640, Y: 500},
			view:   desktop,
			height: 200,
			want:   Rect{Left: 450, Top: 288, Width: 380, Height: 200},
		},
		{
			name:   "clamped to left padding",
			anchor: Point{X: 50, Y: 500},
			view:   desktop,
			height: 200,
			want:   Rect{Left: 20, Top: 288, Width: 380, Height: 200},
		},
		{
			name:   "clamped to right padding",
			anchor: Point{X: 1250, Y: 500},
			view:   desktop,
			height: 200,
			want:   Rect{Left: 880, Top: 288, Width: 380, Height: 200},
		},
		{
			name:   "flipped below near the top",
			anchor: Point{X: 640, Y: 100},
			view:   desktop,
			height: 200,
			want:   Rect{Left: 450, Top: 125, Width: 380, Height: 200},
		},
		{
			name:   "unknown height uses default",
			anchor: Point{X: 640, Y: 500},
			view:   desktop,
			want:   Rect{Left: 450, Top: 188, Width: 380, Height: 300},
		},
		{
			name:   "narrow viewport docks at the bottom",
			anchor: Point{X: 100, Y: 100},
			view:   Size{Width: 390, Height: 844},
			height: 300,
			want:   Rect{Left: 0, Top: 544, Width: 390, Height: 300},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Place(tc.anchor, tc.view, tc.height))
		})
	}
}

func TestPopover_Rect(t *testing.T) {
	t.Parallel()

	v := NewView()
	_, err := v.Open("ran", "He ran fast.", Point{X: 640, Y: 500})
	assert.NoError(t, err)

	assert.Equal(t, Place(Point{X: 640, Y: 500}, Size{Width: 1280, Height: 800}, 200),
		v.Snapshot().Rect(Size{Width: 1280, Height: 800}, 200))
}
