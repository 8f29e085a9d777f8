package main

const (
	ArenaWidth  = 1280.0
	ArenaHeight = 720.0
	ArenaPad    = 24.0 // inner margin entities cannot enter
	FenceX      = ArenaWidth / 2
)

// Side identifies an arena half. Each fighter defends one side and
// monsters never leave the side they spawned on.
const (
	SideLeft  = 0
	SideRight = 1
)

var sideNames = [2]string{"left", "right"}

// SideName returns the wire name for a side
func SideName(side int) string {
	if side < 0 || side > 1 {
		return ""
	}
	return sideNames[side]
}

// ClampToSide clamps a circle of radius r to its side of the fence,
// honoring the arena padding
func ClampToSide(side int, x, y, r float64) (float64, float64) {
	minX := ArenaPad + r
	maxX := FenceX - r
	if side == SideRight {
		minX = FenceX + r
		maxX = ArenaWidth - ArenaPad - r
	}
	return Clamp(x, minX, maxX), Clamp(y, ArenaPad+r, ArenaHeight-ArenaPad-r)
}

// InsideArena reports whether a point is within the padded bounding box
func InsideArena(x, y float64) bool {
	return x >= -ArenaPad && x <= ArenaWidth+ArenaPad &&
		y >= -ArenaPad && y <= ArenaHeight+ArenaPad
}

// OnSide reports whether x lies on the given side of the fence
func OnSide(side int, x float64) bool {
	if side == SideLeft {
		return x <= FenceX
	}
	return x >= FenceX
}
