package parameter

// System Execution Priorities (lower runs first)
// Currency writers (dispatch, purchase) run before the affordability recompute
const (
	PriorityPath     = 100 // Targets advance along waypoints
	PriorityTower    = 200 // Reads target positions, spawns bullets
	PriorityBullet   = 300 // Motion then contact damage
	PriorityLifetime = 400 // Bullet timeout
	PriorityHealth   = 500 // Death pass after all damage
	PriorityLeak     = 600 // Path-end arrivals hurt the player
	PriorityDispatch = 700 // Event routing: economy, audio, telemetry
	PriorityPurchase = 800 // Button clicks spend money
	PriorityPanel    = 850 // Tower buttons follow build-site selection
	PriorityButton   = 900 // Affordability after every currency change
)
