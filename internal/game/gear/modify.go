package gear

import (
	"log/slog"

	"github.com/udisondev/gearforge/internal/data"
)

// modify implements Gear.Modify.
// The new substat keeps the roll count of the one it replaces.
func modify(g *Gear, index int, newID data.StatID, stone data.StoneTier) (Result, error) {
	if index < 1 || index > len(g.substats) {
		return Result{}, &data.InvalidArgumentError{Field: "substat index", Value: index,
			Reason: "must address an existing substat (1-based)"}
	}
	stone, err := data.NormalizeStoneTier(string(stone))
	if err != nil {
		return Result{}, err
	}
	if _, err := g.r.catalogs.ValidateStatID(newID); err != nil {
		return Result{}, err
	}
	target := index - 1

	if g.enhancement != data.MaxEnhancement {
		return rejectModify(g, MsgModifyEnhance), nil
	}
	for i, s := range g.substats {
		if i != target && s.modded {
			return rejectModify(g, MsgModifyOtherModded), nil
		}
	}
	if err := g.r.catalogs.ValidateInPool(g.archetype, data.RoleSubstat, newID); err != nil {
		return Result{}, err
	}
	if g.hasStat(newID, target) {
		return rejectModify(g, MsgDuplicateSubstat), nil
	}

	old := g.substats[target]
	value, err := g.r.resolver.ResolveModValue(newID, g.level, old.rollCount, stone)
	if err != nil {
		return Result{}, err
	}
	inc, err := g.r.resolver.ReforgeIncrease(newID, data.RoleSubstat, old.rollCount)
	if err != nil {
		return Result{}, err
	}
	def, err := g.r.catalogs.Stat(newID)
	if err != nil {
		return Result{}, err
	}

	s := &g.substats[target]
	s.id = newID
	s.text = def.Text
	s.baseValue = value
	s.value = value
	s.reforgeIncrease = inc
	s.modded = true

	slog.Debug("substat modified", "index", index, "from", old.id, "to", newID, "stone", stone, "value", value)
	return Result{Applied: true, Substat: target}, nil
}

func rejectModify(g *Gear, reason string) Result {
	slog.Debug("modify rejected", "reason", reason, "enhancement", g.enhancement)
	return rejected(reason)
}
