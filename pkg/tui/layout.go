package tui

import "math"

const (
	// scrollbarAllowance is the width reserved when a vertical scrollbar
	// is present.
	scrollbarAllowance = 1
	// maxContentWidth caps the editing column so long lines stay readable
	// on wide terminals.
	maxContentWidth = 120
	// averageCharWidth converts content width units into characters.
	// Terminal cells are fixed-width.
	averageCharWidth = 1.0

	layoutHorizontalPadding = 2
	layoutVerticalPadding   = 1
)

// ContainerSize is the observed size of the editor container, including
// the extent of its scrollable content.
type ContainerSize struct {
	Width        int
	Height       int
	ScrollWidth  int
	ScrollHeight int
}

// Metrics are the derived layout measurements fed to the editor surface.
type Metrics struct {
	ViewportWidth          int
	ViewportHeight         int
	AvailableWidth         int
	AvailableHeight        int
	ContentWidth           int
	HorizontalPadding      int
	VerticalPadding        int
	HasVerticalScrollbar   bool
	HasHorizontalScrollbar bool
	OptimalLineLength      int
}

// LayoutEngine derives Metrics from container sizes. It remembers the
// last emission so unchanged measurements are not re-emitted downstream.
type LayoutEngine struct {
	last     Metrics
	measured bool
}

// Measure computes metrics for the given container. The second return is
// false when the container is absent (zero size) or the metrics are
// identical to the previous emission.
func (e *LayoutEngine) Measure(c ContainerSize) (Metrics, bool) {
	if c.Width <= 0 || c.Height <= 0 {
		return e.last, false
	}

	m := computeMetrics(c)
	if e.measured && m == e.last {
		return e.last, false
	}
	e.last = m
	e.measured = true
	return m, true
}

// Current returns the most recently emitted metrics.
func (e *LayoutEngine) Current() Metrics {
	return e.last
}

func computeMetrics(c ContainerSize) Metrics {
	m := Metrics{
		ViewportWidth:     c.Width,
		ViewportHeight:    c.Height,
		HorizontalPadding: layoutHorizontalPadding,
		VerticalPadding:   layoutVerticalPadding,
	}

	m.HasVerticalScrollbar = c.ScrollHeight > c.Height
	m.HasHorizontalScrollbar = c.ScrollWidth > c.Width

	availableWidth := c.Width - 2*m.HorizontalPadding
	if m.HasVerticalScrollbar {
		availableWidth -= scrollbarAllowance
	}
	if availableWidth < 0 {
		availableWidth = 0
	}
	m.AvailableWidth = availableWidth

	availableHeight := c.Height - 2*m.VerticalPadding
	if m.HasHorizontalScrollbar {
		availableHeight -= scrollbarAllowance
	}
	if availableHeight < 0 {
		availableHeight = 0
	}
	m.AvailableHeight = availableHeight

	m.ContentWidth = availableWidth
	if m.ContentWidth > maxContentWidth {
		m.ContentWidth = maxContentWidth
	}

	m.OptimalLineLength = int(math.Round(float64(m.ContentWidth) / averageCharWidth))

	return m
}
