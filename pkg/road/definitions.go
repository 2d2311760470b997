package road

// Centre line dashes on each arm, counted from the field edge
const (
	DashCount  = 5
	DashLength = 20
	DashPitch  = 29 // Start to start
	DashWidth  = 4
)

// Gaps between the roadway arms and the intersection outline
const (
	nearGap = 1 // North and west arms stop short of the outline
	farGap  = 2 // South and east arms start past it
)

// Arm identifies one road leading into the intersection
type Arm int

const (
	ArmNorth Arm = iota
	ArmSouth
	ArmWest
	ArmEast
)
