package runner

import "github.com/vovakirdan/endless-runner/internal/core"

// Integrate applies one tick of gravity: velocity first, then position.
func Integrate(y, velY, gravity float64) (float64, float64) {
	velY += gravity
	y += velY
	return y, velY
}

// bounded is anything with a collision rectangle.
type bounded interface {
	Bounds() core.Rect
}

// Intersects is the strict AABB overlap test between two world objects.
func Intersects(a, b bounded) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// FirstIntersecting returns the index of the first item, in insertion order,
// whose bounds overlap r, or -1 if none do.
func FirstIntersecting[T bounded](items []T, r core.Rect) int {
	for i := range items {
		if items[i].Bounds().Intersects(r) {
			return i
		}
	}
	return -1
}
