package gear

import "github.com/udisondev/gearforge/internal/data"

// Stat is one mainstat or substat owned by a single Gear.
type Stat struct {
	id        data.StatID
	role      data.Role
	archetype data.Archetype
	grade     data.Grade
	level     int
	tier      int
	text      string // template from the stat definition

	rollCount       int // substats only
	baseValue       int // roll-0 value, the enhancement curve applies to it
	value           int
	reforgeIncrease int
	modded          bool
}

func (s Stat) ID() data.StatID           { return s.id }
func (s Stat) Role() data.Role           { return s.role }
func (s Stat) Archetype() data.Archetype { return s.archetype }
func (s Stat) Grade() data.Grade         { return s.grade }
func (s Stat) Level() int                { return s.level }
func (s Stat) Tier() int                 { return s.tier }
func (s Stat) RollCount() int            { return s.rollCount }
func (s Stat) BaseValue() int            { return s.baseValue }
func (s Stat) Value() int                { return s.value }
func (s Stat) Modded() bool              { return s.modded }

// ReforgeIncrease returns the fixed post-reforge value for a mainstat, or the
// amount a substat gains at reforge.
func (s Stat) ReforgeIncrease() int { return s.reforgeIncrease }

// ReforgedValue returns the value this stat will have after reforge.
func (s Stat) ReforgedValue() int {
	if s.role == data.RoleMainstat {
		return s.reforgeIncrease
	}
	return s.value + s.reforgeIncrease
}

// Text returns the formatted display text without reforge preview.
func (s Stat) Text() string {
	return s.Format(false)
}
