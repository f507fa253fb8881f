package parameter

// Terminal layout
const (
	// HUDHeight is the number of rows above the map (money, health, counters)
	HUDHeight = 2

	// PanelHeight is the number of rows below the map (tower buttons, help)
	PanelHeight = 3

	// CellsPerUnitX and CellsPerUnitZ project world units to terminal cells
	// Terminal cells are roughly twice as tall as wide
	CellsPerUnitX = 2.5
	CellsPerUnitZ = 1.5

	// WorldMinX and WorldMinZ anchor the left/top edge of the map view
	WorldMinX = -11.0
	WorldMinZ = -5.0

	// ButtonWidth is the cell width of a tower purchase button
	ButtonWidth = 18
)
