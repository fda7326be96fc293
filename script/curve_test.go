package script

import (
	"math"
	"testing"
)

func TestCurveEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		in   float64
		want float64
	}{
		{"quadratic", `ease := func(t) { return t * t }`, 0.5, 0.25},
		{"math_module", "math := import(\"math\")\nease := func(t) { return math.sin(t * math.pi / 2) }", 1, 1},
		{"integer_result", `ease := func(t) { return 1 }`, 0.3, 1},
		{"overshoot", `ease := func(t) { return t * 1.2 }`, 1, 1.2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			curve, err := CompileCurve(c.name, []byte(c.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := curve.Eval(c.in)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("ease(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestCompileCurveErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing_ease", `x := 1`},
		{"syntax", `ease := func(t) { return t * }`},
		{"non_numeric", `ease := func(t) { return "fast" }`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := CompileCurve(c.name, []byte(c.src)); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestCurveEaseFuncFallsBackToLinear(t *testing.T) {
	src := `
ease := func(t) {
	if t > 0.5 {
		return "bad"
	}
	return t
}`
	curve, err := CompileCurve("fallback", []byte(src))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	f := curve.EaseFunc()
	if got := f(0.25); got != 0.25 {
		t.Fatalf("f(0.25) = %v", got)
	}
	if got := f(0.75); got != 0.75 {
		t.Fatalf("fallback f(0.75) = %v, want 0.75", got)
	}
}
