package raster2d

import (
	"sort"

	"github.com/inkpath/raster2d/internal/basics"
)

// Rect is an axis-aligned rectangle in local or device space, reusing the
// teacher's generic Rect[T] instantiated at float64.
type Rect = basics.Rect[float64]

// ClipOp selects how a new clip shape combines with the existing clip,
// per spec.md §4.3.
type ClipOp int

const (
	ClipIntersect ClipOp = iota
	ClipDifference
)

// Clip is a vector of Span records plus a combining op, the pixel-exact
// representation spec.md §4.3 describes. An empty, bounds-less Clip means
// "no clip" (infinite). A Clip additionally fast-paths the common
// axis-aligned-intersect-rect case into plain integer bounds so most draws
// never touch the span vector at all.
type Clip struct {
	spans []Span
	op    ClipOp

	hasRect bool
	rectX0  int
	rectY0  int
	rectX1  int
	rectY1  int
}

// NewClip returns the identity clip: no restriction.
func NewClip() *Clip { return &Clip{} }

// Empty reports whether this clip imposes no restriction at all.
func (c *Clip) Empty() bool { return c == nil || (!c.hasRect && len(c.spans) == 0) }

// Clone returns an independent copy, used by Canvas.Save so a child state
// can mutate its clip without affecting the parent's.
func (c *Clip) Clone() *Clip {
	if c == nil {
		return NewClip()
	}
	cp := &Clip{op: c.op, hasRect: c.hasRect, rectX0: c.rectX0, rectY0: c.rectY0, rectX1: c.rectX1, rectY1: c.rectY1}
	if c.spans != nil {
		cp.spans = append([]Span(nil), c.spans...)
	}
	return cp
}

// ClipRect applies an axis-aligned rectangle, in device pixel coordinates
// (already transformed by the caller's CTM). Only the intersect op on a
// clip that is currently either empty or itself a plain rect bound is
// short-circuited into updated integer bounds; any other combination
// (difference, or a clip that already holds general spans) falls through
// to clipSpansFromRect + combine, per spec.md §4.3.
func (c *Clip) ClipRect(rect Rect, op ClipOp) {
	x0, y0, x1, y1 := rectToPixelBounds(rect)
	if op == ClipIntersect && (c.Empty() || (c.hasRect && len(c.spans) == 0)) {
		if c.hasRect {
			if x0 < c.rectX0 {
				x0 = c.rectX0
			}
			if y0 < c.rectY0 {
				y0 = c.rectY0
			}
			if x1 > c.rectX1 {
				x1 = c.rectX1
			}
			if y1 > c.rectY1 {
				y1 = c.rectY1
			}
		}
		c.hasRect = true
		c.rectX0, c.rectY0, c.rectX1, c.rectY1 = x0, y0, x1, y1
		c.op = ClipIntersect
		return
	}
	c.ClipSpans(rectSpans(x0, y0, x1, y1), op)
}

// ClipSpans combines an already-rasterized span list (e.g. the output of
// rasterizing a Path against the current CTM) into the clip using the
// op-combination rules of spec.md §4.3.
func (c *Clip) ClipSpans(spans []Span, op ClipOp) {
	if c.Empty() {
		c.spans = spans
		c.op = op
		c.hasRect = false
		return
	}
	cur := c.materializeSpans()
	switch {
	case c.op == ClipIntersect && op == ClipIntersect:
		c.spans = intersectSpans(cur, spans)
		c.op = ClipIntersect
	case c.op == ClipDifference && op == ClipDifference:
		c.spans = mergeSpans(cur, spans)
		c.op = ClipDifference
	case c.op == ClipDifference && op == ClipIntersect:
		// subtract the existing difference spans from the new intersect
		// spans; result becomes intersect.
		c.spans = subtractSpans(spans, cur)
		c.op = ClipIntersect
	default: // c.op == ClipIntersect && op == ClipDifference
		c.spans = subtractSpans(cur, spans)
		c.op = ClipIntersect
	}
	c.hasRect = false
}

// materializeSpans returns c's current restriction as a span list, lowering
// a fast-path rect bound to full-cover spans on demand.
func (c *Clip) materializeSpans() []Span {
	if c.hasRect {
		return rectSpans(c.rectX0, c.rectY0, c.rectX1, c.rectY1)
	}
	return c.spans
}

func rectToPixelBounds(r Rect) (x0, y0, x1, y1 int) {
	r.Normalize()
	return int(r.X1), int(r.Y1), int(r.X2 + 0.5), int(r.Y2 + 0.5)
}

func rectSpans(x0, y0, x1, y1 int) []Span {
	if x1 <= x0 || y1 <= y0 {
		return nil
	}
	spans := make([]Span, 0, y1-y0)
	for y := y0; y < y1; y++ {
		spans = append(spans, Span{X: x0, Y: y, Len: x1 - x0, Cover: 255})
	}
	return spans
}

// performClip filters a rasterizer-produced span list through the clip,
// combining coverage as min(spanCover, clipCover) per spec.md §4.3, and
// splitting spans at clip-span boundaries as needed. An empty clip is the
// identity: the input is returned unchanged.
func (c *Clip) performClip(spans []Span) []Span {
	if c.Empty() {
		return spans
	}
	if c.hasRect {
		out := make([]Span, 0, len(spans))
		for _, s := range spans {
			if s.Y < c.rectY0 || s.Y >= c.rectY1 {
				continue
			}
			x0, x1 := s.X, s.X+s.Len
			if x0 < c.rectX0 {
				x0 = c.rectX0
			}
			if x1 > c.rectX1 {
				x1 = c.rectX1
			}
			if x1 <= x0 {
				continue
			}
			out = append(out, Span{X: x0, Y: s.Y, Len: x1 - x0, Cover: s.Cover})
		}
		return out
	}
	if c.op == ClipDifference {
		return subtractSpans(spans, c.spans)
	}
	return intersectSpans(spans, c.spans)
}

// intersectSpans computes the pixelwise-min-cover intersection of two span
// lists restricted to their overlapping x ranges, per row.
func intersectSpans(a, b []Span) []Span {
	byRowB := groupByRow(b)
	out := make([]Span, 0, len(a))
	for _, sa := range a {
		row := byRowB[sa.Y]
		for _, sb := range row {
			x0 := maxInt(sa.X, sb.X)
			x1 := minInt(sa.X+sa.Len, sb.X+sb.Len)
			if x1 <= x0 {
				continue
			}
			cover := sa.Cover
			if sb.Cover < cover {
				cover = sb.Cover
			}
			out = append(out, Span{X: x0, Y: sa.Y, Len: x1 - x0, Cover: cover})
		}
	}
	return out
}

// subtractSpans removes the coverage of b from a: for any overlap the
// resulting cover is a's cover scaled down by (255-b.cover)/255, following
// the same min/max-modulation convention as intersectSpans rather than a
// hard cut, so soft (antialiased) difference edges stay soft.
func subtractSpans(a, b []Span) []Span {
	byRowB := groupByRow(b)
	out := make([]Span, 0, len(a))
	for _, sa := range a {
		segments := []Span{sa}
		for _, sb := range byRowB[sa.Y] {
			var next []Span
			for _, seg := range segments {
				next = append(next, subtractOne(seg, sb)...)
			}
			segments = next
		}
		out = append(out, segments...)
	}
	return out
}

// subtractOne removes sb's coverage from seg, producing up to three
// pieces: the untouched left part, the modulated overlap, and the
// untouched right part.
func subtractOne(seg, sb Span) []Span {
	segX1 := seg.X + seg.Len
	sbX1 := sb.X + sb.Len
	if sb.X >= segX1 || sbX1 <= seg.X {
		return []Span{seg}
	}
	var out []Span
	if seg.X < sb.X {
		out = append(out, Span{X: seg.X, Y: seg.Y, Len: sb.X - seg.X, Cover: seg.Cover})
	}
	ox0 := maxInt(seg.X, sb.X)
	ox1 := minInt(segX1, sbX1)
	if ox1 > ox0 {
		cover := mulDiv255Round(seg.Cover, 255-sb.Cover)
		if cover > 0 {
			out = append(out, Span{X: ox0, Y: seg.Y, Len: ox1 - ox0, Cover: cover})
		}
	}
	if segX1 > sbX1 {
		out = append(out, Span{X: sbX1, Y: seg.Y, Len: segX1 - sbX1, Cover: seg.Cover})
	}
	return out
}

// mergeSpans sorts the union of two difference-op span vectors by (y, x);
// duplicate coverage over the same pixel run is kept as separate spans of
// decreasing cover, per spec.md §4.3's merge rule for difference∪difference.
func mergeSpans(a, b []Span) []Span {
	out := make([]Span, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Cover > out[j].Cover
	})
	return out
}

func groupByRow(spans []Span) map[int][]Span {
	m := make(map[int][]Span, len(spans))
	for _, s := range spans {
		m[s.Y] = append(m[s.Y], s)
	}
	return m
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
