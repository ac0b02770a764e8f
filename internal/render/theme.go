package render

// Theme holds the fixed text of a mermaid flowchart.
type Theme struct {
	Fence     string // info string of the opening code fence
	Direction string // flowchart direction: TD, LR, ...

	// Node outlines by terminator.
	ReturnStroke      string
	UnreachableStroke string

	// EntryName is the display name of the unnamed entry block.
	EntryName string
}

// Default renders flowcharts top-down with green returns and red
// unreachable blocks.
var Default = Theme{
	Fence:     "mermaid",
	Direction: "TD",

	ReturnStroke:      "#0f0",
	UnreachableStroke: "#f00",

	EntryName: "%1",
}

// orDefault fills empty fields from Default.
func (t Theme) orDefault() Theme {
	if t.Fence == "" {
		t.Fence = Default.Fence
	}
	if t.Direction == "" {
		t.Direction = Default.Direction
	}
	if t.ReturnStroke == "" {
		t.ReturnStroke = Default.ReturnStroke
	}
	if t.UnreachableStroke == "" {
		t.UnreachableStroke = Default.UnreachableStroke
	}
	if t.EntryName == "" {
		t.EntryName = Default.EntryName
	}
	return t
}
