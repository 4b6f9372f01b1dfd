package flight

import (
	"image/color"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/chaos-architect/astral_engine/internal/geom"
	"github.com/chaos-architect/astral_engine/internal/render"
)

// BlockKind tags what a block is for.
type BlockKind uint8

const (
	KindTerrain BlockKind = iota
	KindTarget
	KindDebris
)

func (k BlockKind) String() string {
	switch k {
	case KindTerrain:
		return "TERRAIN"
	case KindTarget:
		return "TARGET"
	case KindDebris:
		return "DEBRIS"
	default:
		return "UNKNOWN"
	}
}

// Position is the world-space centre of a block.
type Position struct {
	geom.Vec3
}

// Shape is everything about a block except where it is.
type Shape struct {
	Size  float64
	Color color.NRGBA
	Kind  BlockKind
	Pulse float64 // phase offset for the monolith pulse
}

// Block is a flattened view of one entity.
type Block struct {
	Pos   geom.Vec3
	Size  float64
	Color color.NRGBA
	Kind  BlockKind
	Pulse float64
}

// Generation constants.
const (
	islandSpreadX  = 5000.0
	islandSpreadY  = 3000.0
	islandDepth    = 4000.0
	islandNear     = 1000.0
	clusterMin     = 3
	clusterRange   = 5
	blockJitter    = 3.0 // times island size
	blockMinSize   = 20.0
	targetSpreadX  = 2000.0
	targetSpreadY  = 1000.0
	targetNear     = 5000.0
	targetDepth    = 1000.0
	monolithBlocks = 20
	monolithSize   = 60.0
	monolithStep   = 80.0
	monolithRise   = 600.0
	monolithPulse  = 0.2
	debrisPerChaos = 40.0
	debrisSpreadX  = 3000.0
	debrisSpreadY  = 2000.0
	debrisDepth    = 5000.0
	debrisNear     = 500.0
	debrisMinSize  = 5.0
	debrisSizeSpan = 15.0
	debrisTint     = 0.35

	ParticleCount = 200
	particleSpan  = 2000.0
	particleAhead = 1000.0
)

// World is one level's blocks and dust. Blocks live in an ECS world so a
// level is replaced wholesale by generating a new World.
type World struct {
	ecs    *ecs.World
	spawn  *ecs.Map2[Position, Shape]
	filter ecs.Filter2[Position, Shape]
	count  int

	Target    geom.Vec3
	Particles []geom.Vec3
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := ecs.NewWorld(256)
	return &World{
		ecs:    w,
		spawn:  ecs.NewMap2[Position, Shape](w),
		filter: *ecs.NewFilter2[Position, Shape](w),
	}
}

// Add creates a block entity.
func (w *World) Add(b Block) {
	w.spawn.NewEntity(
		&Position{Vec3: b.Pos},
		&Shape{Size: b.Size, Color: b.Color, Kind: b.Kind, Pulse: b.Pulse},
	)
	w.count++
}

// Len returns the number of blocks.
func (w *World) Len() int { return w.count }

// Blocks appends every block to dst.
func (w *World) Blocks(dst []Block) []Block {
	q := w.filter.Query()
	for q.Next() {
		pos, shape := q.Get()
		dst = append(dst, Block{
			Pos:   pos.Vec3,
			Size:  shape.Size,
			Color: shape.Color,
			Kind:  shape.Kind,
			Pulse: shape.Pulse,
		})
	}
	return dst
}

// Count returns the number of blocks of kind k.
func (w *World) Count(k BlockKind) int {
	n := 0
	q := w.filter.Query()
	for q.Next() {
		if _, shape := q.Get(); shape.Kind == k {
			n++
		}
	}
	return n
}

// Generate builds a level: terrain island clusters ahead of the spawn point,
// a monolith column marking the target, scattered debris and a cloud of
// ambient dust.
func Generate(p LevelParams, rng geom.Source) *World {
	w := NewWorld()
	terrain := render.HexOr(p.TerrainColor, render.ColorWhite)
	target := render.HexOr(p.TargetColor, render.ColorGold)
	spread := 1 + p.ChaosFactor

	for i := 0; i < p.IslandCount; i++ {
		center := geom.Vec3{
			X: (rng.Float64() - 0.5) * islandSpreadX * spread,
			Y: (rng.Float64() - 0.5) * islandSpreadY * spread,
			Z: rng.Float64()*islandDepth + islandNear,
		}
		size := p.IslandSize * (0.5 + rng.Float64())
		blocks := clusterMin + int(math.Floor(rng.Float64()*clusterRange))

		for b := 0; b < blocks; b++ {
			off := geom.Vec3{
				X: (rng.Float64() - 0.5) * size * blockJitter,
				Y: (rng.Float64() - 0.5) * size * blockJitter,
				Z: (rng.Float64() - 0.5) * size * blockJitter,
			}
			w.Add(Block{
				Pos:   center.Add(off),
				Size:  rng.Float64()*size + blockMinSize,
				Color: terrain,
				Kind:  KindTerrain,
			})
		}
	}

	w.Target = geom.Vec3{
		X: (rng.Float64() - 0.5) * targetSpreadX,
		Y: (rng.Float64() - 0.5) * targetSpreadY,
		Z: targetNear + rng.Float64()*targetDepth,
	}
	for i := 0; i < monolithBlocks; i++ {
		w.Add(Block{
			Pos:   geom.Vec3{X: w.Target.X, Y: w.Target.Y + float64(i)*monolithStep - monolithRise, Z: w.Target.Z},
			Size:  monolithSize,
			Color: target,
			Kind:  KindTarget,
			Pulse: float64(i) * monolithPulse,
		})
	}

	w.Particles = make([]geom.Vec3, ParticleCount)
	for i := range w.Particles {
		w.Particles[i] = geom.Vec3{
			X: (rng.Float64() - 0.5) * particleSpan,
			Y: (rng.Float64() - 0.5) * particleSpan,
			Z: (rng.Float64()-0.5)*particleSpan + particleAhead,
		}
	}

	debris := render.Tint(terrain, target, debrisTint)
	for i := 0; i < DebrisCount(p.ChaosFactor); i++ {
		w.Add(Block{
			Pos: geom.Vec3{
				X: (rng.Float64() - 0.5) * debrisSpreadX,
				Y: (rng.Float64() - 0.5) * debrisSpreadY,
				Z: rng.Float64()*debrisDepth + debrisNear,
			},
			Size:  debrisMinSize + rng.Float64()*debrisSizeSpan,
			Color: debris,
			Kind:  KindDebris,
		})
	}
	return w
}

// DebrisCount is how many loose fragments a level of the given chaos gets.
func DebrisCount(chaos float64) int {
	if chaos <= 0 {
		return 0
	}
	return int(chaos * debrisPerChaos)
}
