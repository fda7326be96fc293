// Package script evaluates easing curves written in tengo.
//
// A curve script defines `ease := func(t) { ... }` returning a number. The
// math stdlib module is importable.
package script

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/camerarig/transition"
)

const curveDispatchScript = `
__out := ease(__t)
`

// Curve is a compiled easing script. A Curve is not safe for concurrent use.
type Curve struct {
	name     string
	compiled *tengo.Compiled
	failed   bool
}

// CompileCurve compiles src. name is used in errors and logs.
func CompileCurve(name string, src []byte) (*Curve, error) {
	full := string(src) + "\n" + curveDispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__t", 0.0)
	s.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	c := &Curve{name: name, compiled: compiled}
	if _, err := c.Eval(0); err != nil {
		return nil, err
	}
	return c, nil
}

// Eval runs the curve at t.
func (c *Curve) Eval(t float64) (float64, error) {
	if err := c.compiled.Set("__t", t); err != nil {
		return 0, fmt.Errorf("script: %s: set t: %w", c.name, err)
	}
	if err := c.compiled.Run(); err != nil {
		return 0, fmt.Errorf("script: %s: run: %w", c.name, err)
	}
	out := c.compiled.Get("__out")
	switch out.ValueType() {
	case "float", "int":
		return out.Float(), nil
	default:
		return 0, fmt.Errorf("script: %s: ease returned %s, want a number", c.name, strings.TrimSpace(out.ValueType()))
	}
}

// EaseFunc adapts the curve for a transition.Driver. A failing evaluation
// falls back to linear progress and is logged once.
func (c *Curve) EaseFunc() transition.EaseFunc {
	return func(t float64) float64 {
		v, err := c.Eval(t)
		if err != nil {
			if !c.failed {
				log.Printf("script: curve %s failed, using linear: %v", c.name, err)
				c.failed = true
			}
			return t
		}
		return v
	}
}
