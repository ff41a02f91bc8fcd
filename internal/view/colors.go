package view

// categoryPalette is the fixed set of chart colors. The hash below picks one
// per category name, so a category keeps its color across requests and
// restarts.
var categoryPalette = [10]string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#8AC27A", "#E763B5", "#FFC107", "#663399",
}

// CategoryColor maps a category name onto the palette. The hash is pinned to
// a wrapping 32-bit signed integer so the mapping is identical on every
// platform; widening the integer type would silently reshuffle colors.
func CategoryColor(category string) string {
	var h int32
	for _, r := range category {
		h = int32(r) + ((h << 5) - h)
	}

	// Take abs in 64 bits: -MinInt32 is not representable in int32
	idx := int64(h)
	if idx < 0 {
		idx = -idx
	}

	return categoryPalette[idx%10]
}
