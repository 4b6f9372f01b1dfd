package journey

// Symbol is the subject a monolith asks about.
type Symbol struct {
	ID    string
	Name  string
	Short string
}

// Symbols are visited in order, one per level, wrapping around.
var Symbols = []Symbol{
	{ID: "chaos-star", Name: "The Chaosphere", Short: "Infinite Possibility"},
	{ID: "kia", Name: "Kia / The Void", Short: "Formless Consciousness"},
	{ID: "servitor", Name: "Servitor", Short: "Thought Form Construct"},
	{ID: "egregore", Name: "Egregore", Short: "Collective Mind"},
	{ID: "gnosis", Name: "Gnosis", Short: "Altered State"},
	{ID: "paradigm-shift", Name: "Paradigm Shift", Short: "Belief Fluidity"},
}

// SymbolFor returns the symbol guarding level.
func SymbolFor(level int) Symbol {
	n := len(Symbols)
	return Symbols[((level%n)+n)%n]
}
