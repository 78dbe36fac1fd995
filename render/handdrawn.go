package render

import (
	"math"
	"math/rand"
	"sort"

	"vex/geometry"
)

// Hand-drawn style tuning.
const (
	// hachureAngle is the slope of hachure fill lines in degrees.
	hachureAngle = 45.0
	// hachureSpacing is the distance between fill lines in diagram units.
	hachureSpacing = 6.0
	// roughness is the maximum vertex displacement of a jittered stroke.
	roughness = 1.5
	// jitterPasses is how many displaced copies of an outline the
	// hand-drawn stroke overlay draws.
	jitterPasses = 2
)

// seededRand derives a deterministic random source from an entity id by
// summing its character codes. Re-rendering an unchanged entity reproduces
// the same jitter, so the sketchy look is stable between passes.
func seededRand(id string) *rand.Rand {
	var seed int64
	for _, r := range id {
		seed += int64(r)
	}
	return rand.New(rand.NewSource(seed))
}

// jitterPath returns displaced copies of a path, one per pass. Vertices
// move by at most the roughness in each axis, and long segments get a
// displaced midpoint so they bow like a pen stroke.
func jitterPath(p Path, rng *rand.Rand) []Path {
	out := make([]Path, 0, jitterPasses)
	for pass := 0; pass < jitterPasses; pass++ {
		pts := make([]geometry.Point, 0, len(p.Points)*2)
		src := p.Points
		n := len(src)
		for i := 0; i < n; i++ {
			pts = append(pts, displace(src[i], rng))
			next := (i + 1) % n
			if !p.Closed && next == 0 {
				break
			}
			if geometry.Distance(src[i], src[next]) > hachureSpacing*3 {
				mid := geometry.PointOnSegment(src[i], src[next], 0.5)
				pts = append(pts, displace(mid, rng))
			}
		}
		out = append(out, Path{Points: pts, Closed: p.Closed})
	}
	return out
}

func displace(p geometry.Point, rng *rand.Rand) geometry.Point {
	return geometry.Point{
		X: p.X + (rng.Float64()*2-1)*roughness,
		Y: p.Y + (rng.Float64()*2-1)*roughness,
	}
}

// hachureLines fills a closed outline with parallel lines at the given
// angle. The outline is rotated so the lines become horizontal scanlines,
// each scanline is intersected with the outline edges, crossings are paired
// into interior spans, and the spans are rotated back. Endpoints get a
// small displacement so a hatched fill reads as hand-drawn.
func hachureLines(outline []geometry.Point, angleDeg, spacing float64, rng *rand.Rand) []Path {
	if len(outline) < 3 {
		return nil
	}
	sin, cos := math.Sincos(-angleDeg * math.Pi / 180)
	rotate := func(p geometry.Point) geometry.Point {
		return geometry.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
	}
	unrotate := func(p geometry.Point) geometry.Point {
		return geometry.Point{X: p.X*cos + p.Y*sin, Y: -p.X*sin + p.Y*cos}
	}

	rotated := make([]geometry.Point, len(outline))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range outline {
		rotated[i] = rotate(p)
		minY = math.Min(minY, rotated[i].Y)
		maxY = math.Max(maxY, rotated[i].Y)
	}

	var lines []Path
	for y := minY + spacing/2; y < maxY; y += spacing {
		var xs []float64
		for i := range rotated {
			a := rotated[i]
			b := rotated[(i+1)%len(rotated)]
			if (a.Y <= y) == (b.Y <= y) {
				continue
			}
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := unrotate(geometry.Point{X: xs[i], Y: y})
			end := unrotate(geometry.Point{X: xs[i+1], Y: y})
			lines = append(lines, Path{Points: []geometry.Point{
				displace(start, rng),
				displace(end, rng),
			}})
		}
	}
	return lines
}
