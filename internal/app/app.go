//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"meadow/internal/core"
	"meadow/internal/growth"
	"meadow/internal/render"
	"meadow/internal/ui"
	"meadow/pkg/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type painter interface {
	Paint(buf []byte)
}

type planter interface {
	Plant(pos field.Vec2) bool
}

type paramsHolder interface {
	Params() growth.Params
	SetParams(growth.Params)
}

// Deps carries the optional collaborators of a Game.
type Deps struct {
	// Updates delivers parameters reloaded from the config file.
	Updates <-chan growth.Params
	// Store receives the parameters after every HUD adjustment.
	Store  *ParamStore
	Logger *slog.Logger
}

const (
	minSpeed = 1.0 / 64
	maxSpeed = 64
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.FieldPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep
	log     *slog.Logger

	updates <-chan growth.Params
	store   *ParamStore

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	speed    float32
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, deps Deps) *Game {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewFieldPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		clock:    core.NewFixedStep(cfg.TPS),
		log:      logger,
		updates:  deps.Updates,
		store:    deps.Store,
		scale:    scale,
		hudWidth: max(cfg.HUDWidth, 0),
		seed:     cfg.Seed,
		speed:    1,
	}
	g.hud.OnChange(g.persist)
	g.refreshStatus()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.refreshStatus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
		g.refreshStatus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.speed = min(g.speed*2, maxSpeed)
		g.refreshStatus()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.speed = max(g.speed/2, minSpeed)
		g.refreshStatus()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.plantAtCursor()
	}
	g.applyUpdates()

	g.overlay.Update()
	size := g.sim.Size()
	g.hud.Update(size.W * g.scale)

	if (!g.paused && g.clock.ShouldStep()) || g.tickOnce {
		g.sim.Step(g.clock.Seconds() * g.speed)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if p, ok := g.sim.(painter); ok {
		p.Paint(g.painter.Buffer())
	}
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) refreshStatus() {
	state := "running"
	if g.paused {
		state = "paused"
	}
	g.overlay.SetStatus(fmt.Sprintf("%s  speed x%.3g", state, g.speed))
}

func (g *Game) applyUpdates() {
	if g.updates == nil {
		return
	}
	holder, ok := g.sim.(paramsHolder)
	if !ok {
		return
	}
	select {
	case p := <-g.updates:
		holder.SetParams(p)
		g.log.Info("applied reloaded parameters")
	default:
	}
}

func (g *Game) plantAtCursor() {
	pl, ok := g.sim.(planter)
	if !ok {
		return
	}
	size := g.sim.Size()
	x, y := ebiten.CursorPosition()
	viewW, viewH := size.W*g.scale, size.H*g.scale
	if x < 0 || y < 0 || x >= viewW || y >= viewH {
		return
	}
	pos := render.PixelToWorld(x/g.scale, y/g.scale, size.W, size.H)
	if pl.Plant(pos) {
		g.log.Debug("planted", "x", pos.X, "y", pos.Y)
	}
}

func (g *Game) persist(key string) {
	if g.store == nil {
		return
	}
	holder, ok := g.sim.(paramsHolder)
	if !ok {
		return
	}
	if err := g.store.Save(holder.Params()); err != nil {
		g.log.Warn("saving parameters failed", "key", key, "err", err)
	}
}
