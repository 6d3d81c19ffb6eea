package chart

// Palette holds the series colors as hex RGB without a leading '#'. Renderers and the
// page legend share it so a series keeps its color everywhere.
var Palette = []string{
	"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a",
	"19d3f3", "ff6692", "b6e880", "ff97ff", "fecb52",
}

// SeriesColor returns the palette color for the i-th series, cycling when exhausted.
func SeriesColor(i int) string {
	return Palette[i%len(Palette)]
}
