package gear

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/game/statvalue"
)

// Enhancement levels (before the increment) with a substat event.
const (
	rareUnlockFirst  = 8
	rareUnlockSecond = 11
	heroicUnlock     = 11
	rollEvery        = 3
)

// unlocks reports whether enhancing from level adds a new substat on grade g.
func unlocks(g data.Grade, level int) bool {
	switch g {
	case data.GradeRare:
		return level == rareUnlockFirst || level == rareUnlockSecond
	case data.GradeHeroic:
		return level == heroicUnlock
	default:
		return false
	}
}

// rolls reports whether enhancing from level grows an existing substat.
func rolls(level int) bool {
	return (level+1)%rollEvery == 0
}

// enhance implements Gear.Enhance.
func enhance(g *Gear) (Result, error) {
	if g.enhancement >= data.MaxEnhancement {
		slog.Debug("enhance rejected", "reason", MsgMaxEnhancement, "enhancement", g.enhancement)
		return rejected(MsgMaxEnhancement), nil
	}

	level := g.enhancement
	mainValue, err := statvalue.MainstatAtEnhancement(g.mainstat.baseValue, level)
	if err != nil {
		return Result{}, err
	}

	res := Result{Applied: true, Substat: -1}

	// Все вычисления до мутации: при ошибке gear не меняется.
	var (
		unlocked Stat
		rolled   Stat
	)
	unlock := unlocks(g.grade, level)
	if unlock {
		if unlock, err = canUnlock(g); err != nil {
			return Result{}, err
		}
	}
	switch {
	case unlock:
		unlocked, err = g.r.drawSubstat(g.archetype, g.grade, g.level, g.mainstat.id, g.SubstatIDs())
		if err != nil {
			return Result{}, fmt.Errorf("unlock substat at +%d: %w", level, err)
		}
		res.Event = EventUnlock
		res.Substat = len(g.substats)

	case rolls(level) && len(g.substats) == 0:
		res.Event = EventRoll
		res.Message = MsgNoSubstatToRoll

	case rolls(level):
		i := g.r.src.IntN(len(g.substats))
		rolled, err = roll(g.r, g.substats[i])
		if err != nil {
			return Result{}, fmt.Errorf("roll substat %d at +%d: %w", i+1, level, err)
		}
		res.Event = EventRoll
		res.Substat = i
	}

	g.mainstat.value = mainValue
	switch res.Event {
	case EventUnlock:
		g.substats = append(g.substats, unlocked)
	case EventRoll:
		if res.Substat >= 0 {
			g.substats[res.Substat] = rolled
		}
	}
	g.enhancement++

	if g.enhancement == data.MaxEnhancement {
		res.Message = MsgFullyEnhanced
	}
	return res, nil
}

// canUnlock reports whether g has room for another substat and the archetype
// pool still has one to offer. Otherwise an unlock level rolls instead.
func canUnlock(g *Gear) (bool, error) {
	gd, err := g.r.catalogs.Grade(g.grade)
	if err != nil {
		return false, err
	}
	if len(g.substats) >= gd.MaxSubstats {
		return false, nil
	}
	pool, err := g.r.substatPool(g.archetype, g.mainstat.id, g.SubstatIDs())
	if err != nil {
		return false, err
	}
	return len(pool) > 0, nil
}

// roll adds a freshly sampled value to s and bumps its roll count.
func roll(r *roller, s Stat) (Stat, error) {
	if err := data.ValidateRollCount(s.rollCount + 1); err != nil {
		return Stat{}, err
	}
	delta, err := r.resolver.ResolveValue(s.id, data.RoleSubstat, s.grade, s.level)
	if err != nil {
		return Stat{}, err
	}
	inc, err := r.resolver.ReforgeIncrease(s.id, data.RoleSubstat, s.rollCount+1)
	if err != nil {
		return Stat{}, err
	}

	s.value += delta
	s.rollCount++
	s.reforgeIncrease = inc
	return s, nil
}
