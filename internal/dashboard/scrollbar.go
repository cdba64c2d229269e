package dashboard

import "math"

// ScrollbarViewportLength is the nominal viewport length used to size the
// market data scrollbar thumb.
const ScrollbarViewportLength = 5

// Scrollbar glyphs.
const (
	scrollbarBegin = "↑"
	scrollbarEnd   = "↓"
	scrollbarTrack = "║"
	scrollbarThumb = "█"
)

// ScrollbarState describes a scrollbar for one frame. It is derived from the
// current scroll offset on every render and never stored.
type ScrollbarState struct {
	ContentLength         int
	Position              int
	ViewportContentLength int
}

// NewScrollbarState returns the scrollbar state for a list of contentLength
// items scrolled to position.
func NewScrollbarState(contentLength, position int) ScrollbarState {
	return ScrollbarState{
		ContentLength:         contentLength,
		Position:              position,
		ViewportContentLength: ScrollbarViewportLength,
	}
}

// thumb returns the thumb offset and length within a track of trackLen
// cells. trackLen must be positive.
func (s ScrollbarState) thumb(trackLen int) (start, length int) {
	track := float64(trackLen)
	viewport := float64(s.ViewportContentLength)
	if s.ViewportContentLength <= 0 {
		viewport = track
	}
	maxPos := float64(max(s.ContentLength-1, 0))
	pos := math.Min(math.Max(float64(s.Position), 0), maxPos)
	maxViewportPos := maxPos + viewport

	startF := math.Round(pos * track / maxViewportPos)
	endF := math.Round((pos + viewport) * track / maxViewportPos)
	start = int(math.Min(math.Max(startF, 0), track-1))
	end := int(math.Min(math.Max(endF, 0), track))
	return start, max(end-start, 1)
}

// Glyphs renders a vertical scrollbar of height cells, top to bottom: a
// begin arrow, the track with its thumb, and an end arrow. It returns nil
// when there is nothing to draw: no content, or no room for a track.
func (s ScrollbarState) Glyphs(height int) []string {
	trackLen := height - 2
	if s.ContentLength <= 0 || trackLen <= 0 {
		return nil
	}

	start, length := s.thumb(trackLen)
	glyphs := make([]string, 0, height)
	glyphs = append(glyphs, scrollbarBegin)
	for i := range trackLen {
		if i >= start && i < start+length {
			glyphs = append(glyphs, scrollbarThumb)
		} else {
			glyphs = append(glyphs, scrollbarTrack)
		}
	}
	return append(glyphs, scrollbarEnd)
}
