package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/camerarig/common"
	"github.com/milk9111/camerarig/prefabs"
	"github.com/milk9111/camerarig/rig"
	"github.com/milk9111/camerarig/target"
	"github.com/milk9111/camerarig/transition"
	"github.com/milk9111/camerarig/view"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	arenaW      = 60.0
	arenaH      = 36.0
	bodyRadius  = 1.2
	freeLookSpd = 12.0
)

var bodyColors = []color.Color{colornames.Tomato, colornames.Mediumseagreen, colornames.Cornflowerblue, colornames.Gold, colornames.Orchid}

type Game struct {
	specName string
	spec     prefabs.RigSpec

	space   *cp.Space
	targets []*target.Body
	current int

	holder     *rig.Node
	camera     *view.VirtualCamera
	rig        *rig.Rig
	transition *transition.Pair

	freeLook bool
	focus    rig.Pose
	debug    bool

	watcher   *prefabs.Watcher
	ui        *ebitenui.UI
	showPanel bool
}

func NewGame(specName string, bodies int, watch bool) (*Game, error) {
	spec, err := prefabs.LoadRigSpec(specName)
	if err != nil {
		return nil, err
	}

	g := &Game{specName: specName, spec: spec}
	g.space = newArena()
	for i := 0; i < max(bodies, 1); i++ {
		g.targets = append(g.targets, g.spawnBody(i))
	}

	g.camera = view.NewVirtualCamera(baseWidth, baseHeight)
	l := view.NewVirtualLens(g.camera)
	g.holder = rig.NewNode(rig.IdentityPose())
	strategy, err := spec.Strategy.BuildStrategy(g.holder)
	if err != nil {
		return nil, err
	}
	g.transition, err = spec.Transition.BuildTransition()
	if err != nil {
		return nil, err
	}
	g.rig = rig.New(g.holder, l, strategy)
	g.applyLensSpec()

	// Start on the first body without easing in from the origin.
	first := g.targets[0].Pose()
	if off, ok := strategy.(*rig.OffsetFollow); ok {
		first = off.Offset().Apply(first)
	}
	g.holder.SetPose(first)
	g.rig.Follow(g.targets[0])

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.ui = NewRigPanel(g)
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func newArena() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	corners := []cp.Vector{{X: 0, Y: 0}, {X: arenaW, Y: 0}, {X: arenaW, Y: arenaH}, {X: 0, Y: arenaH}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		wall := space.AddShape(cp.NewSegment(space.StaticBody, a, b, 0.5))
		wall.SetElasticity(1)
		wall.SetFriction(0)
	}
	return space
}

func (g *Game) spawnBody(i int) *target.Body {
	mass := 1.0
	body := g.space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, bodyRadius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: arenaW * float64(i+1) / 4, Y: arenaH / 2})
	angle := float64(i) * 2.1
	body.SetVelocity(9*math.Cos(angle), 9*math.Sin(angle))
	body.SetAngularVelocity(0.6 * float64(i%2*2-1))

	shape := g.space.AddShape(cp.NewCircle(body, bodyRadius, cp.Vector{}))
	shape.SetElasticity(1)
	shape.SetFriction(0)

	return target.NewBody(fmt.Sprintf("body-%d", i), body, 0)
}

func (g *Game) applyLensSpec() {
	g.rig.SetOrthographic(g.spec.Lens.Orthographic)
	g.resetLensZoom()
}

func (g *Game) resetLensZoom() {
	l := g.rig.Lens()
	l.SetFieldOfView(g.spec.Lens.FieldOfView)
	l.SetOrthographicSize(g.spec.Lens.OrthographicSize)
}

// NextTarget starts a target-to-target transition to the next body.
func (g *Game) NextTarget() {
	if g.freeLook {
		return
	}
	g.current = (g.current + 1) % len(g.targets)
	g.transition.Reset()
	g.rig.BeginRetarget(g.targets[g.current])
}

// ToggleFreeLook parks the rig on a movable focus point, or resumes
// following from wherever the holder is.
func (g *Game) ToggleFreeLook() {
	if !g.freeLook {
		g.freeLook = true
		g.focus = g.targets[g.current].Pose()
		g.rig.Follow(target.Static(g.focus))
		return
	}
	g.freeLook = false
	g.transition.Reset()
	g.rig.BeginFocusToFollow(g.holder.Pose(), g.targets[g.current])
}

func (g *Game) ToggleOrthographic() {
	g.rig.SetOrthographic(!g.rig.Lens().Orthographic())
}

func (g *Game) Update() error {
	dt := 1 / float64(ebiten.TPS())

	g.reload()
	g.handleInput(dt)
	if g.showPanel {
		g.ui.Update()
	}

	g.space.Step(dt)

	switch g.rig.Mode() {
	case rig.ModeSteady:
		g.rig.Update(dt, rig.Progress{})
	default:
		p := g.transition.Advance(dt)
		g.rig.Update(dt, p)
		if g.rig.Mode() == rig.ModeTargetToTarget {
			// Punch the lens in and back out over the switch.
			bump := math.Sin(math.Pi * common.Clamp01(p.Position))
			g.rig.BlendFieldOfView(g.spec.Lens.FieldOfView, g.spec.Lens.RetargetFieldOfView, bump)
			g.rig.BlendOrthographicSize(g.spec.Lens.OrthographicSize, g.spec.Lens.OrthographicSize*g.spec.Lens.RetargetFieldOfView/g.spec.Lens.FieldOfView, bump)
		}
		if g.transition.Done() {
			g.rig.EndTransition()
			g.resetLensZoom()
		}
	}

	pose := g.holder.Pose()
	g.camera.SetView(pose.Position, pose.Rotation)
	return nil
}

func (g *Game) handleInput(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.NextTarget()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.ToggleFreeLook()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.ToggleOrthographic()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.showPanel = !g.showPanel
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.debug = !g.debug
	}

	if !g.freeLook {
		return
	}
	var move mgl64.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move[0]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move[0]++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move[1]--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move[1]++
	}
	if move != (mgl64.Vec3{}) {
		g.focus.Position = g.focus.Position.Add(move.Normalize().Mul(freeLookSpd * dt))
		g.rig.Follow(target.Static(g.focus))
	}
}

// reload applies hot-reloaded spec and script edits. A bad edit keeps the
// previous tuning.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("game: watch: %v", err)
	default:
	}

	changes := g.watcher.Drain()
	if len(changes) == 0 {
		return
	}

	spec, err := prefabs.LoadRigSpec(g.specName)
	if err != nil {
		log.Printf("game: reload %s: %v", g.specName, err)
		return
	}
	pair, err := spec.Transition.BuildTransition()
	if err != nil {
		log.Printf("game: reload transition: %v", err)
		return
	}
	if !spec.Strategy.Retune(g.rig.Strategy()) {
		strategy, err := spec.Strategy.BuildStrategy(g.holder)
		if err != nil {
			log.Printf("game: reload strategy: %v", err)
			return
		}
		g.rig.SetStrategy(strategy)
	}

	g.spec = spec
	// Keep an in-flight transition's elapsed time so it doesn't jump back.
	pair.Position.Advance(g.transition.Position.Elapsed())
	pair.Rotation.Advance(g.transition.Rotation.Elapsed())
	g.transition = pair
	g.applyLensSpec()
	scripts := 0
	for _, c := range changes {
		if c.Kind == prefabs.ChangeScript {
			scripts++
		}
	}
	log.Printf("game: reloaded %s (%d spec, %d script changes)", g.specName, len(changes)-scripts, scripts)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.camera.Render(screen, func(world *ebiten.Image, geo ebiten.GeoM) {
		world.Fill(colornames.Midnightblue)
		g.drawArena(world, geo)
		for i, b := range g.targets {
			g.drawBody(world, geo, b, bodyColors[i%len(bodyColors)], i == g.current)
		}
		if g.debug {
			view.DrawSpace(world, g.space, geo)
		}
		if g.freeLook {
			x, y := geo.Apply(g.focus.Position.X(), g.focus.Position.Y())
			vector.StrokeLine(world, float32(x-8), float32(y), float32(x+8), float32(y), 2, colornames.White, true)
			vector.StrokeLine(world, float32(x), float32(y-8), float32(x), float32(y+8), 2, colornames.White, true)
		}
	})

	l := g.rig.Lens()
	tgt := g.targets[g.current]
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  mode: %s  target: %s  free look: %v\northographic: %v  fov: %.1f  ortho size: %.2f  aspect: %.2f\n[Tab] next target  [F] free look  [O] ortho  [P] panel  [G] shapes",
		ebiten.ActualFPS(), g.rig.Mode(), tgt.Name, g.freeLook,
		l.Orthographic(), l.FieldOfView(), l.OrthographicSize(), l.Aspect(),
	))

	if g.showPanel {
		g.ui.Draw(screen)
	}
}

func (g *Game) drawArena(world *ebiten.Image, geo ebiten.GeoM) {
	corners := [][2]float64{{0, 0}, {arenaW, 0}, {arenaW, arenaH}, {0, arenaH}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		ax, ay := geo.Apply(a[0], a[1])
		bx, by := geo.Apply(b[0], b[1])
		vector.StrokeLine(world, float32(ax), float32(ay), float32(bx), float32(by), 3, colornames.Lightslategray, true)
	}
}

func (g *Game) drawBody(world *ebiten.Image, geo ebiten.GeoM, b *target.Body, clr color.Color, selected bool) {
	body := b.CPBody()
	p := body.Position()
	cx, cy := geo.Apply(p.X, p.Y)
	r := bodyRadius * g.camera.Zoom()
	vector.DrawFilledCircle(world, float32(cx), float32(cy), float32(r), clr, true)

	// Heading marker shows the body's spin.
	hx, hy := geo.Apply(p.X+bodyRadius*math.Cos(body.Angle()), p.Y+bodyRadius*math.Sin(body.Angle()))
	vector.StrokeLine(world, float32(cx), float32(cy), float32(hx), float32(hy), 2, colornames.Black, true)

	if selected {
		vector.StrokeCircle(world, float32(cx), float32(cy), float32(r+4), 2, colornames.White, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
