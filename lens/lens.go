// Package lens exposes a camera's projection parameters through one interface,
// whatever camera backend sits behind it.
package lens

// Lens reads and writes projection parameters. Implementations pass values
// straight through to their backend without range checks.
type Lens interface {
	Orthographic() bool
	SetOrthographic(v bool)

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView() float64
	SetFieldOfView(deg float64)

	// OrthographicSize is half the vertical view size in world units.
	OrthographicSize() float64
	SetOrthographicSize(size float64)

	// Aspect is width/height. Backends that derive it from their render
	// target ignore SetAspect.
	Aspect() float64
	SetAspect(aspect float64)
}
