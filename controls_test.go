package filterer

import (
	"errors"
	"testing"
)

func TestControlsReadOnly(t *testing.T) {
	ctrls := []Control{
		&ControlOrdered[float32]{Name: "Brightness", Value: 1.5, Max: 10},
		&ControlEnum[Channel]{Name: "Channel", Value: Red, ValidValues: []Channel{Red, Green}},
		&ControlCurve{Name: "Gain", Points: []CurvePoint{{X: 0, Y: 1}}},
	}
	for _, c := range ctrls {
		name, _ := c.Describe()
		before := c.ActualValue()
		if err := c.ChangeValue(before); !errors.Is(err, ErrReadOnlyControl) {
			t.Errorf("%s: got %v, want ErrReadOnlyControl", name, err)
		}
	}
}

func TestControlOrdered(t *testing.T) {
	var got int
	c := &ControlOrdered[int]{
		Name: "Boost", Value: 5, Min: 0, Max: 10,
		OnChange: func(v int) error { got = v; return nil },
	}
	if err := c.ChangeValue(7); err != nil {
		t.Fatal(err)
	}
	if got != 7 || c.ActualValue() != 7 {
		t.Errorf("got OnChange=%d ActualValue=%v, want 7", got, c.ActualValue())
	}
	if err := c.ChangeValue(11); err == nil {
		t.Error("expected out of range error")
	}
	if err := c.ChangeValue("7"); err == nil {
		t.Error("expected type error")
	}
	if c.Value != 7 {
		t.Errorf("failed change modified value to %d", c.Value)
	}
}

func TestControlEnum(t *testing.T) {
	c := &ControlEnum[Channel]{
		Value: Red, ValidValues: []Channel{Red, Blue},
		OnChange: func(Channel) error { return nil },
	}
	if err := c.ChangeValue(Green); err == nil {
		t.Error("expected invalid value error")
	}
	if err := c.ChangeValue(Blue); err != nil || c.Value != Blue {
		t.Errorf("got err=%v value=%v", err, c.Value)
	}
}

func TestEvalCurve(t *testing.T) {
	pts := []CurvePoint{{X: 0, Y: 1}, {X: 0.5, Y: 2}, {X: 1, Y: 5}}
	tests := []struct {
		x, want float64
	}{
		{-1, 1},
		{0, 1},
		{0.25, 1.5},
		{0.5, 2},
		{0.75, 3.5},
		{1, 5},
		{2, 5},
	}
	for _, tt := range tests {
		if got := EvalCurve(pts, tt.x); got != tt.want {
			t.Errorf("EvalCurve(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := EvalCurve(nil, 0.5); got != 0 {
		t.Errorf("empty curve got %v", got)
	}
}
