package carousel

// Card layout, as fractions of the logical screen.
const (
	CardHeight     = 0.237 // thumbnail height relative to screen height
	CardCenterY    = 0.451
	CardTitleY     = 0.293
	NeighbourSpan  = 0.3 // horizontal distance between visible slots
	SelectedAlpha  = 1.0
	NeighbourAlpha = 0.6
	HoverAlpha     = 0.8
)

// Mouse regions split the screen into three click zones.
const (
	LeftRegionEnd    = 0.345
	CenterRegionEnd  = 0.66
	SelectedRectX    = 0.345
	SelectedRectY    = 0.225
	SelectedRectW    = 0.31
	SelectedRectH    = 0.4
	SideBarY         = 0.169
	SideBarW         = 0.0495
	SideBarH         = 0.532
	DescriptionTop   = 0.768
	CounterX         = 0.9
	CounterY         = 0.7
	StopwatchOverlay = 0.1
)

// SlotX maps a relative slot to the horizontal center of its card.
func SlotX(rel int) float64 {
	switch {
	case rel <= -2:
		return -CardHeight / 2
	case rel == -1:
		return 0.5 - NeighbourSpan
	case rel == 0:
		return 0.5
	case rel == 1:
		return 0.5 + NeighbourSpan
	default:
		return 1.0 + CardHeight/2
	}
}

// Region is a horizontal click zone.
type Region int

const (
	RegionLeft Region = iota
	RegionCenter
	RegionRight
)

func (r Region) String() string {
	switch r {
	case RegionLeft:
		return "left"
	case RegionCenter:
		return "center"
	default:
		return "right"
	}
}

// RegionAt classifies a horizontal position given as a fraction of the screen width.
func RegionAt(x float64) Region {
	switch {
	case x < LeftRegionEnd:
		return RegionLeft
	case x <= CenterRegionEnd:
		return RegionCenter
	default:
		return RegionRight
	}
}

// Delta returns the navigation step a click in the region produces.
func (r Region) Delta() int {
	switch r {
	case RegionLeft:
		return -1
	case RegionRight:
		return 1
	default:
		return 0
	}
}
