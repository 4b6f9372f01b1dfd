package levelgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/chaos-architect/astral_engine/internal/flight"
	"github.com/chaos-architect/astral_engine/internal/render"
)

// Accepted ranges for generated numbers.
const (
	MinIslands = 10
	MaxIslands = 50
	MinSize    = 30.0
	MaxSize    = 150.0
	MinChaos   = 0.1
	MaxChaos   = 1.0
	MinGravity = -0.2
	MaxGravity = 0.2
)

// UnnamedTheme replaces an empty theme name.
const UnnamedTheme = "Uncharted Sector"

// response mirrors LevelParams with every number optional and loosely typed,
// so a float island count or a missing field still decodes.
type response struct {
	ThemeName      string   `json:"themeName"`
	FogColor       string   `json:"fogColor"`
	TerrainColor   string   `json:"terrainColor"`
	TargetColor    string   `json:"targetColor"`
	IslandCount    *float64 `json:"islandCount"`
	IslandSize     *float64 `json:"islandSize"`
	ChaosFactor    *float64 `json:"chaosFactor"`
	GeometryStyle  string   `json:"geometryStyle"`
	PhysicsGravity *float64 `json:"physicsGravity"`
}

// Parse decodes a generator reply. The JSON may be wrapped in a markdown
// code fence. Missing numbers take the primer's values and the result is
// passed through Sanitize.
func Parse(data []byte) (flight.LevelParams, error) {
	var r response
	if err := json.Unmarshal(unfence(data), &r); err != nil {
		return flight.LevelParams{}, err
	}

	primer := flight.Primer()
	islands := float64(primer.IslandCount)
	islands = clamp(orDefault(r.IslandCount, islands), MinIslands, MaxIslands, islands)

	p := flight.LevelParams{
		ThemeName:      r.ThemeName,
		FogColor:       r.FogColor,
		TerrainColor:   r.TerrainColor,
		TargetColor:    r.TargetColor,
		IslandCount:    int(math.Round(islands)),
		IslandSize:     orDefault(r.IslandSize, primer.IslandSize),
		ChaosFactor:    orDefault(r.ChaosFactor, primer.ChaosFactor),
		GeometryStyle:  flight.GeometryStyle(strings.ToUpper(strings.TrimSpace(r.GeometryStyle))),
		PhysicsGravity: orDefault(r.PhysicsGravity, primer.PhysicsGravity),
	}
	return Sanitize(p), nil
}

// Sanitize forces p into the documented ranges. Unusable colours are
// replaced by the fallback level's.
func Sanitize(p flight.LevelParams) flight.LevelParams {
	primer, fallback := flight.Primer(), flight.Fallback()

	p.ThemeName = strings.TrimSpace(p.ThemeName)
	if p.ThemeName == "" {
		p.ThemeName = UnnamedTheme
	}
	p.FogColor = colorOr(p.FogColor, fallback.FogColor)
	p.TerrainColor = colorOr(p.TerrainColor, fallback.TerrainColor)
	p.TargetColor = colorOr(p.TargetColor, fallback.TargetColor)

	p.IslandCount = min(max(p.IslandCount, MinIslands), MaxIslands)
	p.IslandSize = clamp(p.IslandSize, MinSize, MaxSize, primer.IslandSize)
	p.ChaosFactor = clamp(p.ChaosFactor, MinChaos, MaxChaos, primer.ChaosFactor)
	p.PhysicsGravity = clamp(p.PhysicsGravity, MinGravity, MaxGravity, primer.PhysicsGravity)

	if !p.GeometryStyle.Valid() {
		p.GeometryStyle = flight.StyleCube
	}
	return p
}

// Load reads a level description from a JSON file.
func Load(path string) (flight.LevelParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return flight.LevelParams{}, fmt.Errorf("read level: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return flight.LevelParams{}, fmt.Errorf("parse level %s: %w", path, err)
	}
	return p, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func clamp(v, lo, hi, nan float64) float64 {
	if math.IsNaN(v) {
		return nan
	}
	return math.Min(math.Max(v, lo), hi)
}

func colorOr(s, def string) string {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' || !render.ValidHex(s) {
		return def
	}
	return strings.ToLower(s)
}

func unfence(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[i+1:]
	}
	data = bytes.TrimSuffix(bytes.TrimSpace(data), []byte("```"))
	return bytes.TrimSpace(data)
}
