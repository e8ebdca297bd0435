package jolly

import "github.com/vovakirdan/jollyjumper/internal/core"

// hits tests the ball against one unbroken obstacle.
//
// Rectangles and triangles use the bounding-box center-distance test; the
// triangle's slanted edges are deliberately ignored. Circles use a true
// circle-circle test with radius width/2.
func hits(b Ball, o *Obstacle) bool {
	if o.Broken {
		return false
	}

	ball := b.Circle()
	switch o.Shape {
	case ShapeCircle:
		cx, cy := o.Box().Center()
		return ball.Overlaps(core.Circle{X: cx, Y: cy, R: o.Width / 2})
	default:
		return ball.OverlapsBoxExtents(o.Box())
	}
}

// firstHit returns the index of the oldest obstacle the ball touches, or -1.
func firstHit(b Ball, q *obstacleQueue) int {
	for i := 0; i < q.Len(); i++ {
		if hits(b, q.At(i)) {
			return i
		}
	}
	return -1
}
