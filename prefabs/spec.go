package prefabs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camerarig/rig"
	"github.com/milk9111/camerarig/script"
	"github.com/milk9111/camerarig/transition"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CAMRIG_"

const (
	StrategySmooth = "smooth"
	StrategyOffset = "offset"
)

var strategyKinds = []string{StrategyOffset, StrategySmooth}

// LoadSpecInto decodes filename on top of into, so fields the file leaves
// out keep their current values.
func LoadSpecInto[T any](filename string, into *T) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return nil
}

type OffsetSpec struct {
	X float64 `yaml:"x" env:"X"`
	Y float64 `yaml:"y" env:"Y"`
	Z float64 `yaml:"z" env:"Z"`
	// Angles in degrees.
	Yaw   float64 `yaml:"yaw" env:"YAW"`
	Pitch float64 `yaml:"pitch" env:"PITCH"`
	Roll  float64 `yaml:"roll" env:"ROLL"`
}

type StrategySpec struct {
	Kind             string     `yaml:"kind" env:"KIND"`
	PositionRate     float64    `yaml:"position_rate" env:"POSITION_RATE"`
	RotationRate     float64    `yaml:"rotation_rate" env:"ROTATION_RATE"`
	ControlsRotation bool       `yaml:"controls_rotation" env:"CONTROLS_ROTATION"`
	Offset           OffsetSpec `yaml:"offset" envPrefix:"OFFSET_"`
}

type TransitionSpec struct {
	PositionDuration float64 `yaml:"position_duration" env:"POSITION_DURATION"`
	RotationDuration float64 `yaml:"rotation_duration" env:"ROTATION_DURATION"`
	Ease             string  `yaml:"ease" env:"EASE"`
	// Script names a tengo curve under prefabs/scripts. It wins over Ease.
	Script string `yaml:"script" env:"SCRIPT"`
}

type LensSpec struct {
	Orthographic        bool    `yaml:"orthographic" env:"ORTHOGRAPHIC"`
	FieldOfView         float64 `yaml:"field_of_view" env:"FIELD_OF_VIEW"`
	OrthographicSize    float64 `yaml:"orthographic_size" env:"ORTHOGRAPHIC_SIZE"`
	RetargetFieldOfView float64 `yaml:"retarget_field_of_view" env:"RETARGET_FIELD_OF_VIEW"`
}

// RigSpec is the tuning for one camera rig.
type RigSpec struct {
	Strategy   StrategySpec   `yaml:"strategy" envPrefix:"STRATEGY_"`
	Transition TransitionSpec `yaml:"transition" envPrefix:"TRANSITION_"`
	Lens       LensSpec       `yaml:"lens" envPrefix:"LENS_"`
}

// DefaultRigSpec returns the values used for fields a file leaves out.
func DefaultRigSpec() RigSpec {
	return RigSpec{
		Strategy: StrategySpec{
			Kind:         StrategySmooth,
			PositionRate: 5,
			RotationRate: 5,
		},
		Transition: TransitionSpec{
			PositionDuration: 1,
			RotationDuration: 1,
			Ease:             "linear",
		},
		Lens: LensSpec{
			FieldOfView:         60,
			OrthographicSize:    5,
			RetargetFieldOfView: 60,
		},
	}
}

// ParseRigSpec decodes data on top of DefaultRigSpec.
func ParseRigSpec(data []byte) (RigSpec, error) {
	spec := DefaultRigSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return RigSpec{}, err
	}
	return spec, nil
}

// LoadRigSpec loads name, applies CAMRIG_* overrides from the process
// environment and validates the result.
func LoadRigSpec(name string) (RigSpec, error) {
	spec := DefaultRigSpec()
	if err := LoadSpecInto(name, &spec); err != nil {
		return RigSpec{}, err
	}
	if err := ApplyEnv(&spec, nil); err != nil {
		return RigSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return RigSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}

// ApplyEnv overrides spec fields from CAMRIG_* variables. A nil environment
// reads the process environment.
func ApplyEnv(spec *RigSpec, environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(spec, opts); err != nil {
		return fmt.Errorf("prefabs: env overrides: %w", err)
	}
	return nil
}

// Validate reports every invalid field.
func (s RigSpec) Validate() error {
	var errs []error

	if !contains(strategyKinds, s.Strategy.Kind) {
		errs = append(errs, unknownName("strategy kind", s.Strategy.Kind, strategyKinds))
	}
	if s.Strategy.PositionRate < 0 {
		errs = append(errs, fmt.Errorf("strategy position_rate %v is negative", s.Strategy.PositionRate))
	}
	if s.Strategy.RotationRate < 0 {
		errs = append(errs, fmt.Errorf("strategy rotation_rate %v is negative", s.Strategy.RotationRate))
	}

	if s.Transition.PositionDuration < 0 {
		errs = append(errs, fmt.Errorf("transition position_duration %v is negative", s.Transition.PositionDuration))
	}
	if s.Transition.RotationDuration < 0 {
		errs = append(errs, fmt.Errorf("transition rotation_duration %v is negative", s.Transition.RotationDuration))
	}
	if s.Transition.Script == "" && s.Transition.Ease != "" {
		if _, ok := transition.Lookup(s.Transition.Ease); !ok {
			errs = append(errs, unknownName("ease", s.Transition.Ease, transition.Names()))
		}
	}

	for _, fov := range []float64{s.Lens.FieldOfView, s.Lens.RetargetFieldOfView} {
		if fov <= 0 || fov >= 180 {
			errs = append(errs, fmt.Errorf("lens field of view %v outside (0, 180)", fov))
		}
	}
	if s.Lens.OrthographicSize <= 0 {
		errs = append(errs, fmt.Errorf("lens orthographic_size %v must be positive", s.Lens.OrthographicSize))
	}

	return errors.Join(errs...)
}

// FollowConfig returns the SmoothFollow tuning.
func (s StrategySpec) FollowConfig() rig.FollowConfig {
	return rig.FollowConfig{
		PositionRate:     s.PositionRate,
		RotationRate:     s.RotationRate,
		ControlsRotation: s.ControlsRotation,
	}
}

// RigOffset converts the offset to rig space.
func (o OffsetSpec) RigOffset() rig.Offset {
	rot := mgl64.QuatRotate(mgl64.DegToRad(o.Yaw), mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(o.Pitch), mgl64.Vec3{1, 0, 0})).
		Mul(mgl64.QuatRotate(mgl64.DegToRad(o.Roll), mgl64.Vec3{0, 0, 1}))
	return rig.Offset{Position: mgl64.Vec3{o.X, o.Y, o.Z}, Rotation: rot}
}

// BuildStrategy constructs the configured strategy bound to holder.
func (s StrategySpec) BuildStrategy(holder rig.Holder) (rig.Strategy, error) {
	smooth := rig.NewSmoothFollow(holder, s.FollowConfig())
	switch s.Kind {
	case StrategySmooth:
		return smooth, nil
	case StrategyOffset:
		return rig.NewOffsetFollow(smooth, s.Offset.RigOffset()), nil
	default:
		return nil, unknownName("strategy kind", s.Kind, strategyKinds)
	}
}

// Retune updates a strategy built by BuildStrategy in place. It reports
// false when the strategy is of another kind and has to be rebuilt.
func (s StrategySpec) Retune(strategy rig.Strategy) bool {
	switch st := strategy.(type) {
	case *rig.SmoothFollow:
		if s.Kind != StrategySmooth {
			return false
		}
		st.SetConfig(s.FollowConfig())
		return true
	case *rig.OffsetFollow:
		inner, ok := st.Inner().(*rig.SmoothFollow)
		if !ok || s.Kind != StrategyOffset {
			return false
		}
		inner.SetConfig(s.FollowConfig())
		st.SetOffset(s.Offset.RigOffset())
		return true
	default:
		return false
	}
}

// EaseFunc resolves the configured curve, compiling the script if one is
// named.
func (t TransitionSpec) EaseFunc() (transition.EaseFunc, error) {
	if t.Script != "" {
		src, err := LoadScript(t.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", t.Script, err)
		}
		curve, err := script.CompileCurve(t.Script, src)
		if err != nil {
			return nil, err
		}
		return curve.EaseFunc(), nil
	}
	if t.Ease == "" {
		return transition.Linear, nil
	}
	f, ok := transition.Lookup(t.Ease)
	if !ok {
		return nil, unknownName("ease", t.Ease, transition.Names())
	}
	return f, nil
}

// BuildTransition returns fresh position/rotation drivers.
func (t TransitionSpec) BuildTransition() (*transition.Pair, error) {
	ease, err := t.EaseFunc()
	if err != nil {
		return nil, err
	}
	return transition.NewPair(
		transition.NewDriver(t.PositionDuration, ease),
		transition.NewDriver(t.RotationDuration, ease),
	), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func suggest(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(strings.ToLower(name), cand)
		if dist > suggestionLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestionLimit(n int) int {
	return max(1, n/3)
}

func unknownName(field, name string, candidates []string) error {
	if s := suggest(name, candidates); s != "" {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", field, name, s)
	}
	return fmt.Errorf("unknown %s %q (want one of %s)", field, name, strings.Join(candidates, ", "))
}
