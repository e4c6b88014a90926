package trials

// Category is a geographic-scale bin. The zero value is the first bin;
// CategoryNone marks distances outside [0, 100] km.
type Category int

const (
	CategoryUltraShort Category = iota
	CategoryShort
	CategoryMedium
	CategoryLong
	CategoryUltraLong

	CategoryNone Category = -1
)

// CategoryEdges are the bin boundaries in km. Bins are closed on the left and
// open on the right, except the last one which also includes 100.
var CategoryEdges = []float64{0, 5, 15, 30, 50, 100}

// Categories lists every bin in increasing-distance order.
var Categories = []Category{
	CategoryUltraShort,
	CategoryShort,
	CategoryMedium,
	CategoryLong,
	CategoryUltraLong,
}

var categoryLabels = map[Category]string{
	CategoryUltraShort: "Ultra-Short (<5km)",
	CategoryShort:      "Short (5-15km)",
	CategoryMedium:     "Medium (15-30km)",
	CategoryLong:       "Long (30-50km)",
	CategoryUltraLong:  "Ultra-Long (>50km)",
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Uncategorized"
}

// Categorize maps a distance to its bin. NaN and out-of-range values map to CategoryNone.
func Categorize(distanceKM float64) Category {
	last := len(CategoryEdges) - 1
	if !(distanceKM >= CategoryEdges[0] && distanceKM <= CategoryEdges[last]) {
		return CategoryNone
	}
	for i := 1; i < last; i++ {
		if distanceKM < CategoryEdges[i] {
			return Category(i - 1)
		}
	}
	return Category(last - 1)
}
