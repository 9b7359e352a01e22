package gear

import (
	"fmt"
	"log/slog"

	"github.com/udisondev/gearforge/internal/data"
)

// reforge implements Gear.Reforge.
func reforge(g *Gear) (Result, error) {
	if reason := validateReforge(g); reason != "" {
		slog.Debug("reforge rejected", "reason", reason, "level", g.level, "enhancement", g.enhancement)
		return rejected(reason), nil
	}

	tier, err := g.r.catalogs.TierForLevel(data.ReforgedLevel)
	if err != nil {
		return Result{}, err
	}
	mainValue, err := g.r.resolver.ReforgeIncrease(g.mainstat.id, data.RoleMainstat, 0)
	if err != nil {
		return Result{}, fmt.Errorf("reforge mainstat %d: %w", g.mainstat.id, err)
	}

	g.level = data.ReforgedLevel
	g.tier = tier
	g.reforged = true

	g.mainstat.value = mainValue
	g.mainstat.level, g.mainstat.tier = g.level, tier
	for i := range g.substats {
		s := &g.substats[i]
		// reforgeIncrease не пересчитывается: зафиксирован по rollCount на момент reforge.
		s.value += s.reforgeIncrease
		s.level, s.tier = g.level, tier
	}

	return Result{Applied: true, Message: MsgReforged, Substat: -1}, nil
}

// validateReforge returns the first unmet precondition, or "" when the gear can be reforged.
func validateReforge(g *Gear) string {
	if g.level != data.ReforgeLevel {
		return MsgReforgeLevel
	}
	if g.enhancement != data.MaxEnhancement {
		return MsgReforgeEnhance
	}
	return ""
}
