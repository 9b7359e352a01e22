package data

import (
	"slices"
	"strconv"
	"strings"
)

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeArchetype maps a case-insensitive name onto a known archetype.
func (c *Catalogs) NormalizeArchetype(s string) (Archetype, error) {
	if canonical(s) == "" {
		return "", invalid("archetype", s, "required")
	}
	a := Archetype(canonical(s))
	if _, ok := c.Archetypes[a]; !ok {
		return "", invalid("archetype", s, "unknown archetype")
	}
	return a, nil
}

// NormalizeGrade maps a case-insensitive name onto a known grade.
func (c *Catalogs) NormalizeGrade(s string) (Grade, error) {
	if canonical(s) == "" {
		return "", invalid("grade", s, "required")
	}
	g := Grade(canonical(s))
	if _, ok := c.Grades[g]; !ok {
		return "", invalid("grade", s, "unknown grade")
	}
	return g, nil
}

// NormalizeSet maps a case-insensitive name onto a known set key.
func (c *Catalogs) NormalizeSet(s string) (string, error) {
	name := canonical(s)
	if name == "" {
		return "", invalid("set", s, "required")
	}
	if _, ok := c.Sets[name]; !ok {
		return "", invalid("set", s, "unknown set")
	}
	return name, nil
}

// NormalizeRole parses "mainstat" or "substat".
func NormalizeRole(s string) (Role, error) {
	switch canonical(s) {
	case "mainstat":
		return RoleMainstat, nil
	case "substat":
		return RoleSubstat, nil
	case "":
		return 0, invalid("role", s, "required")
	default:
		return 0, invalid("role", s, "must be mainstat or substat")
	}
}

// NormalizeStoneTier parses a stone tier; empty means greater.
func NormalizeStoneTier(s string) (StoneTier, error) {
	switch st := StoneTier(canonical(s)); st {
	case "":
		return StoneGreater, nil
	case StoneGreater, StoneLesser:
		return st, nil
	default:
		return "", invalid("stone tier", s, "must be greater or lesser")
	}
}

// ParseStatID parses a numeric stat id such as "10" or " 3 ".
func (c *Catalogs) ParseStatID(s string) (StatID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidArgumentError{Field: "stat id", Value: s, Reason: "not a number", Err: err}
	}
	return c.ValidateStatID(StatID(n))
}

// ValidateStatID checks that id exists in the stat catalog.
func (c *Catalogs) ValidateStatID(id StatID) (StatID, error) {
	if _, ok := c.Stats[id]; !ok {
		return 0, invalid("stat id", id, "unknown stat")
	}
	return id, nil
}

// ValidateLevel checks that level is in [MinLevel, MaxLevel].
func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return invalid("level", level, "must be in [%d, %d]", MinLevel, MaxLevel)
	}
	return nil
}

// ValidateRollCount checks a substat roll count.
func ValidateRollCount(n int) error {
	if n < 0 || n > MaxRollCount {
		return invalid("roll count", n, "must be in [0, %d]", MaxRollCount)
	}
	return nil
}

// TierForLevel returns the value-table tier of level. Level 100 maps to the last tier.
func (c *Catalogs) TierForLevel(level int) (int, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, invalid("level", level, "must be in [%d, %d]", MinLevel, MaxLevel)
	}
	for _, t := range c.Tiers {
		if level >= t.MinLevel && level <= t.MaxLevel {
			return t.Tier, nil
		}
	}
	if n := len(c.Tiers); n > 0 && level > c.Tiers[n-1].MaxLevel {
		return c.Tiers[n-1].Tier, nil
	}
	return 0, invalid("level", level, "no tier covers this level")
}

// ValidateInPool checks that id may appear on archetype a in role.
func (c *Catalogs) ValidateInPool(a Archetype, role Role, id StatID) error {
	def, err := c.Archetype(a)
	if err != nil {
		return err
	}
	if !def.Allows(role, id) {
		return invalid(role.String(), id, "not allowed on %s", a)
	}
	return nil
}

// ValidateSubstatIDs checks count, uniqueness and disjointness from the mainstat.
// mainstat may be nil when it is not chosen yet.
func (c *Catalogs) ValidateSubstatIDs(ids []StatID, mainstat *StatID) error {
	if len(ids) > MaxSubstats {
		return invalid("substats", ids, "at most %d allowed", MaxSubstats)
	}
	for i, id := range ids {
		if _, err := c.ValidateStatID(id); err != nil {
			return err
		}
		if slices.Contains(ids[:i], id) {
			return invalid("substats", ids, "duplicate stat %d", id)
		}
		if mainstat != nil && *mainstat == id {
			return invalid("substats", ids, "stat %d is the mainstat", id)
		}
	}
	return nil
}

// ValidateGradeForSubstats checks that grade g starts with at least n substats.
func (c *Catalogs) ValidateGradeForSubstats(g Grade, n int) error {
	def, err := c.Grade(g)
	if err != nil {
		return err
	}
	if def.StartingSubstats < n {
		return invalid("grade", g, "starts with %d substats, %d supplied", def.StartingSubstats, n)
	}
	return nil
}
