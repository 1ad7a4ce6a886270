package parameter

// Board dimensions, cells per side
const (
	CellsPerSideDefault = 16
	CellsPerSideMin     = 10
	CellsPerSideMax     = 60

	// CellSizeDefault is the pixel scale handed to renderers
	CellSizeDefault = 20
)
