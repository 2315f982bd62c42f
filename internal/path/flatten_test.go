package path

import (
	"math"
	"testing"
)

func TestFlattenLines(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 10}},
		Close{},
	}

	points := Flatten(elements)
	if len(points) != 4 {
		t.Fatalf("point count: got %d, want 4", len(points))
	}
	if points[3] != (Point{X: 0, Y: 0}) {
		t.Errorf("close point: got %+v, want subpath start", points[3])
	}
}

func TestFlattenQuadEndpoints(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		QuadTo{Control: Point{X: 50, Y: 100}, Point: Point{X: 100, Y: 0}},
	}

	points := Flatten(elements)
	if len(points) < 3 {
		t.Fatalf("curve was not subdivided: %d points", len(points))
	}
	last := points[len(points)-1]
	if last != (Point{X: 100, Y: 0}) {
		t.Errorf("final point: got %+v, want (100, 0)", last)
	}
}

// TestFlattenQuadTolerance verifies every flattened point lies close to the
// true curve.
func TestFlattenQuadTolerance(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 0, Y: 40}
	p2 := Point{X: 40, Y: 40}

	elements := []PathElement{
		MoveTo{Point: p0},
		QuadTo{Control: p1, Point: p2},
	}
	points := Flatten(elements)

	for _, pt := range points {
		// Distance to the nearest curve sample.
		best := math.MaxFloat64
		for i := 0; i <= 100; i++ {
			tt := float64(i) / 100
			q := p0.Lerp(p1, tt).Lerp(p1.Lerp(p2, tt), tt)
			if d := pt.Distance(q); d < best {
				best = d
			}
		}
		if best > Tolerance*2 {
			t.Errorf("point %+v deviates %v from curve", pt, best)
		}
	}
}

func TestFlattenMultipleSubpaths(t *testing.T) {
	elements := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 10, Y: 0}},
		Close{},
		MoveTo{Point: Point{X: 20, Y: 20}},
		LineTo{Point: Point{X: 30, Y: 20}},
		Close{},
	}

	points := Flatten(elements)
	// Each Close must return to its own subpath start.
	if points[2] != (Point{X: 0, Y: 0}) {
		t.Errorf("first close: got %+v, want (0, 0)", points[2])
	}
	if points[len(points)-1] != (Point{X: 20, Y: 20}) {
		t.Errorf("second close: got %+v, want (20, 20)", points[len(points)-1])
	}
}
