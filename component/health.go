package component

// HealthComponent is the hit-point pool of a damageable entity
// Value may go negative within a tick when several hits land
type HealthComponent struct {
	Value int
}
