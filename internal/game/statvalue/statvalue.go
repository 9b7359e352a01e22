// Package statvalue turns stat table cells into concrete numbers.
//
// Mainstat cells are fixed, substat cells are weighted distributions, and
// modification stones sample uniformly from a per-roll-count range.
package statvalue

import (
	"math"

	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/rng"
)

// enhanceCurve multiplies the base mainstat value, indexed by the enhancement
// level before the increment.
var enhanceCurve = [data.MaxEnhancement]float64{
	1.2, 1.4, 1.6, 1.8, 2.0, 2.2, 2.4, 2.6, 2.8, 3.0, 3.3, 3.6, 3.9, 4.25, 5.0,
}

// Resolver resolves stat values against the catalogs using src for every draw.
type Resolver struct {
	catalogs *data.Catalogs
	src      rng.Source
}

// New creates a Resolver.
func New(c *data.Catalogs, src rng.Source) *Resolver {
	return &Resolver{catalogs: c, src: src}
}

// ResolveValue returns a value for stat id in role at the given grade and level.
// Fixed cells are returned verbatim, weighted cells are sampled.
func (r *Resolver) ResolveValue(id data.StatID, role data.Role, grade data.Grade, level int) (int, error) {
	def, err := r.catalogs.Stat(id)
	if err != nil {
		return 0, err
	}
	tier, err := r.catalogs.TierForLevel(level)
	if err != nil {
		return 0, err
	}
	rule, err := def.Rule(role, grade, tier)
	if err != nil {
		return 0, err
	}

	switch c := rule.(type) {
	case data.Fixed:
		return c.Value, nil
	case data.Weighted:
		i := rng.Weighted(r.src, c.Rates)
		if i < 0 {
			return 0, &data.InvalidArgumentError{Field: "stat id", Value: id, Reason: "empty value distribution"}
		}
		return c.Values[i], nil
	default:
		return 0, &data.InvalidArgumentError{Field: "stat id", Value: id, Reason: "no value rule"}
	}
}

// ModBand returns the modification band for level: levels up to 88 use the
// low band, reforged level 90 the high band. Any other level has no
// modification path.
func ModBand(level int) (int, error) {
	switch {
	case level >= data.MinLevel && level <= data.ModLowMaxLevel:
		return data.ModBandLow, nil
	case level == data.ReforgedLevel:
		return data.ModBandHigh, nil
	default:
		return 0, &data.InvalidArgumentError{Field: "level", Value: level, Reason: "no modification path"}
	}
}

// ResolveModValue samples a modified substat value uniformly from the
// stone × band × roll count range.
func (r *Resolver) ResolveModValue(id data.StatID, level, rollCount int, stone data.StoneTier) (int, error) {
	def, err := r.catalogs.Stat(id)
	if err != nil {
		return 0, err
	}
	if err := data.ValidateRollCount(rollCount); err != nil {
		return 0, err
	}
	band, err := ModBand(level)
	if err != nil {
		return 0, err
	}
	bands, ok := def.Mods[stone]
	if !ok {
		return 0, &data.InvalidArgumentError{Field: "stone tier", Value: stone, Reason: "unknown stone tier"}
	}

	rg := bands[band][rollCount]
	return rng.Between(r.src, rg.Lo, rg.Hi), nil
}

// ReforgeIncrease returns the reforge table entry of stat id. For a mainstat
// it is the fixed post-reforge value and rollCount must be 0; for a substat
// it is the amount added at reforge for rollCount.
func (r *Resolver) ReforgeIncrease(id data.StatID, role data.Role, rollCount int) (int, error) {
	def, err := r.catalogs.Stat(id)
	if err != nil {
		return 0, err
	}
	if err := data.ValidateRollCount(rollCount); err != nil {
		return 0, err
	}

	switch role {
	case data.RoleMainstat:
		if rollCount != 0 {
			return 0, &data.InvalidArgumentError{Field: "roll count", Value: rollCount, Reason: "mainstats never roll"}
		}
		return def.Reforge.Mainstat, nil
	case data.RoleSubstat:
		return def.Reforge.Substat[rollCount], nil
	default:
		return 0, &data.InvalidArgumentError{Field: "role", Value: role, Reason: "must be mainstat or substat"}
	}
}

// MainstatAtEnhancement returns the mainstat value after enhancing from
// level to level+1, recomputed from the base value (round half to even).
func MainstatAtEnhancement(base, level int) (int, error) {
	if level < 0 || level >= data.MaxEnhancement {
		return 0, &data.InvalidArgumentError{Field: "enhancement level", Value: level,
			Reason: "must be below the maximum"}
	}
	return int(math.RoundToEven(float64(base) * enhanceCurve[level])), nil
}
