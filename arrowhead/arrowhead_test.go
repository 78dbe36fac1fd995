package arrowhead

import (
	"math"
	"testing"
)

func TestLookupKnownKinds(t *testing.T) {
	for _, kind := range []Kind{Arrow, Triangle, UnfilledTriangle, Diamond, FilledDiamond, Circle, FilledCircle, Line} {
		t.Run(string(kind), func(t *testing.T) {
			def, ok := Lookup(kind)
			if !ok {
				t.Fatalf("Lookup(%v) not found", kind)
			}
			if def.Kind != kind {
				t.Errorf("definition kind = %v", def.Kind)
			}
			if def.Width <= 0 || def.Height <= 0 {
				t.Errorf("degenerate marker box %vx%v", def.Width, def.Height)
			}
			if len(def.Outline) < 2 {
				t.Errorf("outline has %d points", len(def.Outline))
			}
		})
	}
}

func TestLookupNone(t *testing.T) {
	if _, ok := Lookup(None); ok {
		t.Error("None must not resolve to a marker definition")
	}
	if _, ok := Lookup(Kind("bogus")); ok {
		t.Error("unknown kinds must not resolve")
	}
}

func TestRefPointAtTip(t *testing.T) {
	// The reference point must equal the marker width so that after the
	// connector shortens its stroke by Length(), the tip lands exactly on
	// the pre-shortening anchor.
	for _, kind := range []Kind{Arrow, Triangle, UnfilledTriangle, Diamond, FilledDiamond, Circle, FilledCircle, Line} {
		def, _ := Lookup(kind)
		if def.RefX != def.Width {
			t.Errorf("%v: RefX = %v, want width %v", kind, def.RefX, def.Width)
		}
		if def.RefY != def.Height/2 {
			t.Errorf("%v: RefY = %v, want %v", kind, def.RefY, def.Height/2)
		}
		if def.Length() != def.Width {
			t.Errorf("%v: Length = %v, want %v", kind, def.Length(), def.Width)
		}
	}
}

func TestOutlineInsideBox(t *testing.T) {
	for _, kind := range Kinds() {
		def, ok := Lookup(kind)
		if !ok {
			continue
		}
		for _, p := range def.Outline {
			if p.X < -1e-9 || p.X > def.Width+1e-9 || p.Y < -1e-9 || p.Y > def.Height+1e-9 {
				t.Errorf("%v: outline point %v outside %vx%v box", kind, p, def.Width, def.Height)
			}
		}
	}
}

func TestFillModes(t *testing.T) {
	if def, _ := Lookup(Arrow); def.Fill != "" {
		t.Errorf("Arrow fill = %q, want outline only", def.Fill)
	}
	if def, _ := Lookup(Triangle); def.Fill != FillStroke {
		t.Errorf("Triangle fill = %q, want stroke sentinel", def.Fill)
	}
	if def, _ := Lookup(Diamond); def.Fill == "" || def.Fill == FillStroke {
		t.Errorf("Diamond fill = %q, want explicit occluding color", def.Fill)
	}
}

func TestCircleOutlineRadius(t *testing.T) {
	def, _ := Lookup(Circle)
	for _, p := range def.Outline {
		r := math.Hypot(p.X-4, p.Y-4)
		if math.Abs(r-4) > 1e-9 {
			t.Errorf("circle point %v at radius %v, want 4", p, r)
		}
	}
}
