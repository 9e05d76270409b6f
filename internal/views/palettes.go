package views

// Named qualitative color schemes selectable in the UI
const (
	SchemePlotly = "Plotly"
	SchemeD3     = "D3"
	SchemeSet1   = "Set1"
	SchemeSet2   = "Set2"
	SchemeSet3   = "Set3"
	SchemePastel = "Pastel"
	SchemeBold   = "Bold"
	SchemeVivid  = "Vivid"
)

// Palettes maps scheme names to qualitative color sequences. Series
// beyond the palette length wrap around on the client.
var Palettes = map[string][]string{
	SchemePlotly: {
		"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
		"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
	},
	SchemeD3: {
		"#1F77B4", "#FF7F0E", "#2CA02C", "#D62728", "#9467BD",
		"#8C564B", "#E377C2", "#7F7F7F", "#BCBD22", "#17BECF",
	},
	SchemeSet1: {
		"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00",
		"#FFFF33", "#A65628", "#F781BF", "#999999",
	},
	SchemeSet2: {
		"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3", "#A6D854",
		"#FFD92F", "#E5C494", "#B3B3B3",
	},
	SchemeSet3: {
		"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3",
		"#FDB462", "#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD",
		"#CCEBC5", "#FFED6F",
	},
	SchemePastel: {
		"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
		"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7",
	},
	SchemeBold: {
		"#7F3C8D", "#11A579", "#3969AC", "#F2B701", "#E73F74",
		"#80BA5A", "#E68310", "#008695", "#CF1C90", "#F97B72",
	},
	SchemeVivid: {
		"#E58606", "#5D69B1", "#52BCA3", "#99C945", "#CC61B0",
		"#24796C", "#DAA51B", "#2F8AC4", "#764E9F", "#ED645A",
	},
}

// ListSchemes returns the scheme names in UI order
func ListSchemes() []string {
	return []string{
		SchemePlotly, SchemeD3, SchemeSet1, SchemeSet2,
		SchemeSet3, SchemePastel, SchemeBold, SchemeVivid,
	}
}

// palette resolves a scheme name, defaulting to Plotly
func palette(scheme string) []string {
	if p, ok := Palettes[scheme]; ok {
		return p
	}
	return Palettes[SchemePlotly]
}
