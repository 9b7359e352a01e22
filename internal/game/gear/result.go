package gear

// Player-facing reports.
const (
	MsgMaxEnhancement    = "Gear is already at maximum enhancement level!"
	MsgFullyEnhanced     = "Gear has been fully enhanced to +15!"
	MsgReforgeLevel      = "Cannot reforge a gear that is not Level 85."
	MsgReforgeEnhance    = "Cannot reforge a gear that has not been enhanced to +15 yet."
	MsgReforged          = "Gear has been reforged to Level 90!"
	MsgModifyEnhance     = "Cannot modify a gear that has not been enhanced to +15 yet."
	MsgModifyOtherModded = "Cannot modify substat when another substat has been modified already."
	MsgDuplicateSubstat  = "Cannot add a substat that already exists on the gear."
	MsgNoSubstatToRoll   = "No substat to roll."
)

// Event tells what an enhancement step did besides growing the mainstat.
type Event int

const (
	EventNone Event = iota
	EventRoll
	EventUnlock
)

// String returns the lowercase event name.
func (e Event) String() string {
	switch e {
	case EventRoll:
		return "roll"
	case EventUnlock:
		return "unlock"
	default:
		return "none"
	}
}

// Result describes the outcome of a lifecycle operation.
type Result struct {
	// Applied is false when a game rule rejected the operation; the gear is unchanged.
	Applied bool
	// Message is the report shown to the player. Empty for an unremarkable step.
	Message string
	// Event is set by Enhance.
	Event Event
	// Substat is the 0-based index of the affected substat, or -1.
	Substat int
}

func rejected(msg string) Result {
	return Result{Message: msg, Substat: -1}
}
