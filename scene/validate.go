package scene

import (
	"fmt"
)

// ValidationError describes one structural problem in a scene, tagged
// with the offending entity.
type ValidationError struct {
	EntityID string
	Message  string
}

func (e ValidationError) Error() string {
	if e.EntityID == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.EntityID, e.Message)
}

// Validate checks the scene for structural problems: duplicate ids,
// connector bindings that point at missing shapes, and degenerate
// layouts. A non-empty result does not make the scene unusable; ghost
// bindings in particular are tolerated everywhere and render as if
// unbound.
func (s *Scene) Validate() []ValidationError {
	var errs []ValidationError

	seen := make(map[string]bool, len(s.Shapes)+len(s.Connectors))
	check := func(id, kind string) {
		if id == "" {
			errs = append(errs, ValidationError{Message: kind + " has no id"})
			return
		}
		if seen[id] {
			errs = append(errs, ValidationError{EntityID: id, Message: "duplicate id"})
		}
		seen[id] = true
	}

	for _, sh := range s.Shapes {
		check(sh.ID, "shape")
		if sh.Layout.Width <= 0 || sh.Layout.Height <= 0 {
			errs = append(errs, ValidationError{
				EntityID: sh.ID,
				Message:  fmt.Sprintf("degenerate layout %gx%g", sh.Layout.Width, sh.Layout.Height),
			})
		}
		switch sh.Kind {
		case KindRectangle, KindEllipse, KindPolygon,
			KindTriangle, KindTriangleDown, KindTriangleLeft, KindTriangleRight:
		default:
			errs = append(errs, ValidationError{
				EntityID: sh.ID,
				Message:  fmt.Sprintf("unknown shape kind %q", sh.Kind),
			})
		}
		if sh.Kind == KindPolygon && sh.Sides != 0 && sh.Sides < 3 {
			errs = append(errs, ValidationError{
				EntityID: sh.ID,
				Message:  fmt.Sprintf("polygon with %d sides", sh.Sides),
			})
		}
	}

	for _, c := range s.Connectors {
		check(c.ID, "connector")
		switch c.Kind {
		case KindStraight, KindBent, KindCurved:
		default:
			errs = append(errs, ValidationError{
				EntityID: c.ID,
				Message:  fmt.Sprintf("unknown connector kind %q", c.Kind),
			})
		}
		if c.StartShapeID != "" && s.ShapeByID(c.StartShapeID) == nil {
			errs = append(errs, ValidationError{
				EntityID: c.ID,
				Message:  fmt.Sprintf("start bound to missing shape %s", c.StartShapeID),
			})
		}
		if c.EndShapeID != "" && s.ShapeByID(c.EndShapeID) == nil {
			errs = append(errs, ValidationError{
				EntityID: c.ID,
				Message:  fmt.Sprintf("end bound to missing shape %s", c.EndShapeID),
			})
		}
	}

	return errs
}
