package raster

import "testing"

func TestNewEdgeDirection(t *testing.T) {
	down := NewEdge(Point{X: 0, Y: 0}, Point{X: 0, Y: 10})
	if down.dir != 1 {
		t.Errorf("downward edge dir: got %d, want 1", down.dir)
	}

	up := NewEdge(Point{X: 0, Y: 10}, Point{X: 0, Y: 0})
	if up.dir != -1 {
		t.Errorf("upward edge dir: got %d, want -1", up.dir)
	}

	// Endpoints are normalized so y0 < y1 regardless of input order.
	if up.y0 != 0 || up.y1 != 10 {
		t.Errorf("normalized y: got (%v, %v), want (0, 10)", up.y0, up.y1)
	}
}

func TestEdgeXAtY(t *testing.T) {
	e := NewEdge(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if got := e.XAtY(5); got != 5 {
		t.Errorf("XAtY(5): got %v, want 5", got)
	}
	if got := e.XAtY(0); got != 0 {
		t.Errorf("XAtY(0): got %v, want 0", got)
	}
}

func TestActiveEdgeTableSort(t *testing.T) {
	aet := NewActiveEdgeTable()
	aet.Add(NewEdge(Point{X: 30, Y: 0}, Point{X: 30, Y: 10}))
	aet.Add(NewEdge(Point{X: 10, Y: 0}, Point{X: 10, Y: 10}))
	aet.Add(NewEdge(Point{X: 20, Y: 0}, Point{X: 20, Y: 10}))

	aet.Sort()

	edges := aet.Edges()
	for i := 1; i < len(edges); i++ {
		if edges[i-1].x > edges[i].x {
			t.Fatalf("edges not sorted by x: %v before %v", edges[i-1].x, edges[i].x)
		}
	}

	aet.Clear()
	if len(aet.Edges()) != 0 {
		t.Errorf("clear left %d edges", len(aet.Edges()))
	}
}
