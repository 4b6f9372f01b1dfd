package main

import (
	"log"
	"os"
	"time"

	"github.com/chaos-architect/astral_engine/internal/config"
	"github.com/chaos-architect/astral_engine/internal/dome"
	"github.com/chaos-architect/astral_engine/internal/flight"
	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/input"
	"github.com/chaos-architect/astral_engine/internal/journey"
	"github.com/chaos-architect/astral_engine/internal/levelgen"
	"github.com/chaos-architect/astral_engine/internal/logging"
	"github.com/chaos-architect/astral_engine/internal/loop"
	"github.com/chaos-architect/astral_engine/internal/render"
	"github.com/chaos-architect/astral_engine/internal/sound"
	"github.com/hajimehoshi/ebiten/v2"
)

const title = "Astral Engine"

// statsEvery is the interval between frame-rate reports.
const statsEvery = 10 // seconds

// Game is the Ebitengine game struct. It owns the window, the input source
// and the scheduler; each visualisation lives in its own scene.
type Game struct {
	cfg config.Config
	log *logging.Logger

	in     *input.Ebiten
	screen *render.Screen
	sched  *loop.Scheduler
	dt     float64

	sky     *dome.Dome
	gen     journey.Generator
	cues    journey.Cues
	rng     geom.Source
	opening flight.LevelParams
	journey *journey.Machine
}

// NewGame builds the dome, the generator client and the opening level.
func NewGame(cfg config.Config, log *logging.Logger, cues journey.Cues) (*Game, error) {
	rng := geom.NewSource(cfg.Seed)
	in := input.NewEbiten()

	sky := dome.New(dome.GenerateBackground(cfg.BackgroundStars, rng), dome.SiderealOffset(time.Now()), in)
	sky.SetInteractive(cfg.Mode == config.ModeDome)

	client := levelgen.NewClient(
		levelgen.WithURL(cfg.Endpoint),
		levelgen.WithTimeout(cfg.Timeout.Std()),
		levelgen.WithAPIKey(cfg.APIKey),
		levelgen.WithLogger(log.With("levelgen")),
	)
	if !client.Configured() {
		log.Warn("no level generator endpoint; warps will hold the current sector")
	}

	opening := flight.Primer()
	if cfg.LevelFile != "" {
		p, err := levelgen.Load(cfg.LevelFile)
		if err != nil {
			return nil, err
		}
		opening = p
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		in:      in,
		screen:  render.NewScreen(render.NewFontAtlas()),
		sched:   loop.New(sky),
		dt:      1 / float64(cfg.TPS),
		sky:     sky,
		gen:     client,
		cues:    cues,
		rng:     rng,
		opening: opening,
	}
	g.sched.Every(uint64(cfg.TPS*statsEvery), func() {
		log.Debug("tps=%.1f fps=%.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	})
	g.sched.Start()

	if cfg.Mode == config.ModeFlight {
		g.launch()
	}
	return g, nil
}

func (g *Game) Update() error {
	g.in.Poll()

	if g.journey != nil {
		if g.in.Pressed(input.KeyEscape) {
			g.land()
		}
	} else {
		switch {
		case g.in.Pressed(input.KeyEscape):
			return ebiten.Termination
		case g.in.Pressed(input.KeyToggleDome):
			g.sky.SetInteractive(!g.sky.Interactive())
			g.log.Info("dome interactive=%t", g.sky.Interactive())
		case g.in.Pressed(input.KeyLaunch):
			g.launch()
		}
	}

	g.sched.Tick(g.dt)
	return nil
}

// launch starts a fresh journey from the opening level.
func (g *Game) launch() {
	engine := flight.NewEngine(g.opening, g.rng)
	g.journey = journey.New(engine, g.in, g.gen,
		journey.WithCues(g.cues),
		journey.WithLogger(g.log.With("journey")),
		journey.WithWarpDuration(g.cfg.Warp.Std()),
	)
	g.sched.SetScene(g.journey)
	g.log.Info("flight launched: sector=%q", g.opening.ThemeName)
}

// land returns to the dome. Swapping the scene closes the journey.
func (g *Game) land() {
	g.sched.SetScene(g.sky)
	g.log.Info("flight ended at level %d", g.journey.Level())
	g.journey = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sched.Render(g.screen.Bind(screen))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func main() {
	cfg, err := config.FromArgs(os.Args[0], os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))
	logger.Info("starting: mode=%s %dx%d tps=%d stars=%d endpoint=%q",
		cfg.Mode, cfg.Width, cfg.Height, cfg.TPS, cfg.BackgroundStars, cfg.Endpoint)

	audio := sound.NewManager(logger.With("sound"))
	if cfg.Audio {
		if err := audio.Init(); err != nil {
			logger.Warn("audio unavailable: %v", err)
		}
	}
	defer audio.Close()

	game, err := NewGame(cfg, logger, audio)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
