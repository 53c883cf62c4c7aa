package models

const (
	LayoutWide    = "wide"
	LayoutDefault = "default"

	tabletMinDimension = 768
)

type Layout struct {
	Name      string `json:"name"`
	Landscape bool   `json:"landscape"`
	Tablet    bool   `json:"tablet"`
}

// ClassifyLayout picks the two-column layout only for a landscape viewport
// whose short side is tablet sized.
func ClassifyLayout(width, height float64) Layout {
	l := Layout{
		Name:      LayoutDefault,
		Landscape: width > height,
		Tablet:    min(width, height) >= tabletMinDimension,
	}
	if l.Landscape && l.Tablet {
		l.Name = LayoutWide
	}
	return l
}
