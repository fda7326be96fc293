package transition

import (
	"math"
	"sort"
)

// EaseFunc maps linear progress to eased progress. Inputs are normally in
// [0, 1]; curves may overshoot.
type EaseFunc func(t float64) float64

func Linear(t float64) float64 { return t }

func EaseInQuad(t float64) float64 { return t * t }

func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func EaseOutCubic(t float64) float64 { return 1 - math.Pow(1-t, 3) }

func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// SmoothStep is the Hermite curve 3t^2 - 2t^3.
func SmoothStep(t float64) float64 { return t * t * (3 - 2*t) }

var builtin = map[string]EaseFunc{
	"linear":            Linear,
	"ease_in_quad":      EaseInQuad,
	"ease_out_quad":     EaseOutQuad,
	"ease_in_out_quad":  EaseInOutQuad,
	"ease_out_cubic":    EaseOutCubic,
	"ease_in_out_cubic": EaseInOutCubic,
	"smoothstep":        SmoothStep,
}

// Lookup returns the built-in curve with the given name.
func Lookup(name string) (EaseFunc, bool) {
	f, ok := builtin[name]
	return f, ok
}

// Names lists the built-in curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
