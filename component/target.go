package component

// TargetComponent marks an enemy walking the shared waypoint path
// PathIndex only grows; PathIndex >= len(path) means arrived
type TargetComponent struct {
	Speed     float64 // World units per second
	PathIndex int
}
