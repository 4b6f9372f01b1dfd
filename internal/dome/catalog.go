package dome

// Star is a catalog entry. RA is in hours [0,24), Dec in degrees [-90,90].
// Lower magnitude is brighter.
type Star struct {
	RA    float64
	Dec   float64
	Mag   float64
	Color string
	Name  string
}

// Line joins two catalog stars by index.
type Line struct {
	From, To int
}

// Label is text pinned to a fixed point on the sky.
type Label struct {
	Name    string
	RA, Dec float64
}

// Catalog holds the named bright stars. Indices are referenced by Lines.
var Catalog = []Star{
	// Ursa Major
	{RA: 11.06, Dec: 61.75, Mag: 1.8, Color: "#ffeeb0", Name: "Dubhe"},
	{RA: 11.03, Dec: 56.38, Mag: 2.4, Color: "#f8f7ff", Name: "Merak"},
	{RA: 11.89, Dec: 53.69, Mag: 2.4, Color: "#f8f7ff", Name: "Phecda"},
	{RA: 12.25, Dec: 57.03, Mag: 3.3, Color: "#ffffff", Name: "Megrez"},
	{RA: 12.90, Dec: 55.95, Mag: 1.8, Color: "#ffffff", Name: "Alioth"},
	{RA: 13.39, Dec: 54.92, Mag: 2.2, Color: "#ffffff", Name: "Mizar"},
	{RA: 13.79, Dec: 49.31, Mag: 1.9, Color: "#9bb0ff", Name: "Alkaid"},

	// Orion
	{RA: 5.92, Dec: 7.40, Mag: 0.42, Color: "#ffcc6f", Name: "Betelgeuse"},
	{RA: 5.24, Dec: -8.20, Mag: 0.12, Color: "#9bb0ff", Name: "Rigel"},
	{RA: 5.41, Dec: 6.34, Mag: 1.64, Color: "#b0cfff", Name: "Bellatrix"},
	{RA: 5.53, Dec: -0.30, Mag: 2.25, Color: "#f8f7ff"}, // Mintaka
	{RA: 5.60, Dec: -1.20, Mag: 1.69, Color: "#f8f7ff", Name: "Alnilam"},
	{RA: 5.67, Dec: -1.94, Mag: 1.74, Color: "#f8f7ff", Name: "Alnitak"},
	{RA: 5.79, Dec: -9.66, Mag: 2.07, Color: "#b0cfff", Name: "Saiph"},

	// Cassiopeia
	{RA: 0.67, Dec: 56.53, Mag: 2.24, Color: "#ffddaa", Name: "Schedar"},
	{RA: 0.15, Dec: 59.15, Mag: 2.28, Color: "#f8f7ff", Name: "Caph"},
	{RA: 0.94, Dec: 60.71, Mag: 2.15, Color: "#9bb0ff", Name: "Navi"},
	{RA: 1.43, Dec: 60.23, Mag: 2.68, Color: "#f8f7ff", Name: "Ruchbah"},
	{RA: 1.90, Dec: 63.67, Mag: 3.35, Color: "#f8f7ff", Name: "Segin"},

	// Cygnus
	{RA: 20.69, Dec: 45.28, Mag: 1.25, Color: "#f8f7ff", Name: "Deneb"},
	{RA: 20.38, Dec: 40.25, Mag: 2.23, Color: "#fbffb0", Name: "Sadr"},
	{RA: 19.51, Dec: 27.96, Mag: 3.05, Color: "#ffddaa", Name: "Albireo"},
	{RA: 21.21, Dec: 30.22, Mag: 3.21, Color: "#f8f7ff", Name: "Gienah"},
	{RA: 19.76, Dec: 45.13, Mag: 2.86, Color: "#f8f7ff"},

	// Canis Major
	{RA: 6.75, Dec: -16.71, Mag: -1.46, Color: "#9bb0ff", Name: "Sirius"},

	// Lyra
	{RA: 18.62, Dec: 38.78, Mag: 0.03, Color: "#b0cfff", Name: "Vega"},

	// Scorpius
	{RA: 16.49, Dec: -26.43, Mag: 1.06, Color: "#ff9e40", Name: "Antares"},

	// Taurus
	{RA: 4.60, Dec: 16.50, Mag: 0.87, Color: "#ffbe7f", Name: "Aldebaran"},
	{RA: 3.79, Dec: 24.10, Mag: 2.8, Color: "#9bb0ff", Name: "Alcyone"},
}

// Lines are the constellation figures.
var Lines = []Line{
	// Ursa Major
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, {3, 4}, {4, 5}, {5, 6},
	// Orion
	{7, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 8}, {8, 12}, {7, 12},
	// Cassiopeia
	{14, 15}, {15, 16}, {16, 17}, {17, 18},
	// Cygnus
	{19, 20}, {20, 21}, {22, 20}, {20, 23},
}

// Labels name the constellations.
var Labels = []Label{
	{"URSA MAJOR", 12.5, 55},
	{"ORION", 5.5, 0},
	{"CASSIOPEIA", 1.0, 60},
	{"CYGNUS", 20.5, 42},
	{"LYRA", 18.6, 36},
	{"SCORPIUS", 16.5, -26},
	{"TAURUS", 4.5, 18},
	{"CANIS MAJOR", 6.8, -20},
}
