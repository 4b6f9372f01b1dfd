package flight

// GeometryStyle selects the wireframe used for every block of a level.
type GeometryStyle string

const (
	StyleCube       GeometryStyle = "CUBE"
	StylePyramid    GeometryStyle = "PYRAMID"
	StyleOctahedron GeometryStyle = "OCTAHEDRON"
)

// Valid reports whether s is one of the known styles.
func (s GeometryStyle) Valid() bool {
	switch s {
	case StyleCube, StylePyramid, StyleOctahedron:
		return true
	}
	return false
}

// LevelParams describes one procedurally generated sector. Field names match
// the generator's JSON response.
type LevelParams struct {
	ThemeName      string        `json:"themeName"`
	FogColor       string        `json:"fogColor"`
	TerrainColor   string        `json:"terrainColor"`
	TargetColor    string        `json:"targetColor"`
	IslandCount    int           `json:"islandCount"`
	IslandSize     float64       `json:"islandSize"`
	ChaosFactor    float64       `json:"chaosFactor"`
	GeometryStyle  GeometryStyle `json:"geometryStyle"`
	PhysicsGravity float64       `json:"physicsGravity"`
}

// Primer is the opening level.
func Primer() LevelParams {
	return LevelParams{
		ThemeName:     "The Primer",
		FogColor:      "#050505",
		TerrainColor:  "#111111",
		TargetColor:   "#d4af37",
		IslandCount:   20,
		IslandSize:    60,
		ChaosFactor:   0.1,
		GeometryStyle: StyleCube,
	}
}

// Fallback is used when the generator answers with something unusable.
func Fallback() LevelParams {
	return LevelParams{
		ThemeName:     "The Static Void",
		FogColor:      "#111111",
		TerrainColor:  "#333333",
		TargetColor:   "#d4af37",
		IslandCount:   20,
		IslandSize:    60,
		ChaosFactor:   0.5,
		GeometryStyle: StyleCube,
	}
}
