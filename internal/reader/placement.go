package reader

// Popover geometry, in CSS pixels.
const (
	PopoverWidth         = 380.0
	DefaultPopoverHeight = 300.0
	viewportPadding      = 20.0
	gapAbove             = 12.0
	gapBelow             = 25.0
	compactBreakpoint    = 768.0
)

// Size is a viewport or element size.
type Size struct {
	Width, Height float64
}

// Rect is a placed popover box.
type Rect struct {
	Left, Top, Width, Height float64
}

// Place positions a popover of the given height for a click at anchor.
// The box is centered above the anchor, clamped horizontally to the
// viewport padding and flipped below when it would overflow the top.
// Narrow viewports get a full-width sheet docked at the bottom.
func Place(anchor Point, viewport Size, height float64) Rect {
	if height <= 0 {
		height = DefaultPopoverHeight
	}

	if viewport.Width < compactBreakpoint {
		return Rect{Left: 0, Top: viewport.Height - height, Width: viewport.Width, Height: height}
	}

	left := anchor.X - PopoverWidth/2
	switch {
	case left < viewportPadding:
		left = viewportPadding
	case anchor.X+PopoverWidth/2 > viewport.Width-viewportPadding:
		left = viewport.Width - viewportPadding - PopoverWidth
	}

	bottom := anchor.Y - gapAbove
	top := bottom - height
	if top < viewportPadding {
		top = anchor.Y + gapBelow
	}

	return Rect{Left: left, Top: top, Width: PopoverWidth, Height: height}
}

// Rect places the popover in viewport.
func (p Popover) Rect(viewport Size, height float64) Rect {
	return Place(p.Anchor, viewport, height)
}
