package filterer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/soypat/geometry/ms2"
)

// Control describes a parameter of a filter.
//
// Filters in this module fix their parameters at construction, so the controls
// they return carry no OnChange hook and reject [Control.ChangeValue] with
// [ErrReadOnlyControl]. Applications that want live editing build a new filter
// from the desired value instead.
type Control interface {
	// Display/human readable name and description.
	Describe() (name, description string)
	// ActualValue returns the current value of the control.
	ActualValue() any
	// ChangeValue attempts to update the ActualValue to newValue.
	ChangeValue(newValue any) error
}

type ControlOrdered[T cmp.Ordered] struct {
	Name        string
	Description string
	Value       T
	Min         T
	Max         T
	Step        T
	OnChange    func(T) error
}

func (co *ControlOrdered[T]) Describe() (name, description string) {
	return co.Name, co.Description
}
func (co *ControlOrdered[T]) ActualValue() any { return co.Value }
func (co *ControlOrdered[T]) ChangeValue(newValue any) error {
	if co.OnChange == nil {
		return ErrReadOnlyControl
	}
	v, ok := newValue.(T)
	if !ok {
		return fmt.Errorf("new value %T not of type %T", newValue, co.Value)
	}
	if v < co.Min || v > co.Max {
		return fmt.Errorf("new value %v exceeds limits %v..%v", v, co.Min, co.Max)
	}
	err := co.OnChange(v)
	if err == nil {
		co.Value = v
	}
	return err
}

type integer interface {
	~int | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

type enum interface {
	integer
	fmt.Stringer
}

// ControlEnum maps to dropdown kind of list.
type ControlEnum[T enum] struct {
	Name        string
	Description string
	Value       T
	ValidValues []T
	OnChange    func(T) error
}

func (ce *ControlEnum[T]) Describe() (name, description string) {
	return ce.Name, ce.Description
}
func (ce *ControlEnum[T]) ActualValue() any {
	return ce.Value
}
func (ce *ControlEnum[T]) ChangeValue(newValue any) error {
	if ce.OnChange == nil {
		return ErrReadOnlyControl
	}
	v, ok := newValue.(T)
	if !ok {
		return fmt.Errorf("new value %T not of type %T", newValue, ce.Value)
	}
	if !slices.Contains(ce.ValidValues, v) {
		return fmt.Errorf("value %v of %T not valid", v, v)
	}
	err := ce.OnChange(v)
	if err == nil {
		ce.Value = v
	}
	return err
}

// CurvePoint is a control point for curve-type controls.
// X represents input (0-1), Y represents output.
type CurvePoint = ms2.Vec

// ControlCurve is a piecewise linear curve control with editable control points.
type ControlCurve struct {
	Name        string
	Description string
	Points      []CurvePoint // Control points sorted by X, X in 0-1 range.
	OnChange    func([]CurvePoint) error
}

func (cc *ControlCurve) Describe() (name, description string) {
	return cc.Name, cc.Description
}

func (cc *ControlCurve) ActualValue() any {
	return cc.Points
}

func (cc *ControlCurve) ChangeValue(newValue any) error {
	if cc.OnChange == nil {
		return ErrReadOnlyControl
	}
	pts, ok := newValue.([]CurvePoint)
	if !ok {
		return fmt.Errorf("new value %T not of type []CurvePoint", newValue)
	}
	err := cc.OnChange(pts)
	if err == nil {
		cc.Points = pts
	}
	return err
}

// EvalCurve linearly interpolates pts at x. Points must be sorted by X.
// Interpolation is done in float64. x outside the curve's range evaluates to
// the nearest end point and an empty curve evaluates to 0.
func EvalCurve(pts []CurvePoint, x float64) float64 {
	switch {
	case len(pts) == 0:
		return 0
	case x <= float64(pts[0].X):
		return float64(pts[0].Y)
	case x >= float64(pts[len(pts)-1].X):
		return float64(pts[len(pts)-1].Y)
	}
	for i := 1; i < len(pts); i++ {
		ax, ay := float64(pts[i-1].X), float64(pts[i-1].Y)
		bx, by := float64(pts[i].X), float64(pts[i].Y)
		if x > bx {
			continue
		}
		dx := bx - ax
		if dx <= 0 {
			return by
		}
		t := (x - ax) / dx
		return ay + t*(by-ay)
	}
	return float64(pts[len(pts)-1].Y)
}
