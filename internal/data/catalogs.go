package data

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

const (
	minTier   = 5
	maxTier   = 7
	tierCount = maxTier - minTier + 1

	// Mod bands: gear up to ModLowMaxLevel, and reforged gear at ReforgedLevel.
	ModBandLow  = 0
	ModBandHigh = 1
	modBands    = 2
)

// ValueTable holds one value rule per grade and tier.
type ValueTable map[Grade][tierCount]ValueRule

// ModTable holds modification ranges per stone tier, band and roll count.
type ModTable map[StoneTier][modBands][MaxRollCount + 1]IntRange

// ReforgeTable holds the post-reforge mainstat value and the substat increase per roll count.
type ReforgeTable struct {
	Mainstat int
	Substat  [MaxRollCount + 1]int
}

// StatDefinition is the immutable description of one stat.
type StatDefinition struct {
	ID        StatID
	Text      string // template with <A> (value) and <B> (optional secondary value)
	KeyStat   string
	GearScore float64 // multiplier used by gear score
	Reforge   ReforgeTable
	Values    map[Role]ValueTable
	Mods      ModTable
}

// clone returns a deep copy of d.
func (d *StatDefinition) clone() StatDefinition {
	c := *d
	c.Values = make(map[Role]ValueTable, len(d.Values))
	for role, table := range d.Values {
		t := make(ValueTable, len(table))
		for grade, row := range table {
			for i, rule := range row {
				if w, ok := rule.(Weighted); ok {
					row[i] = Weighted{Values: slices.Clone(w.Values), Rates: slices.Clone(w.Rates)}
				}
			}
			t[grade] = row
		}
		c.Values[role] = t
	}
	c.Mods = maps.Clone(d.Mods)
	return c
}

// gradeFallback maps grades without a value row onto the lowest rollable grade.
var gradeFallback = map[Grade]Grade{
	GradeNormal: GradeRare,
	GradeGood:   GradeRare,
}

// Rule returns the value rule of the cell (role, grade, tier).
func (d *StatDefinition) Rule(role Role, grade Grade, tier int) (ValueRule, error) {
	table, ok := d.Values[role]
	if !ok {
		return nil, invalid("role", role, "stat %d has no %s values", d.ID, role)
	}
	row, ok := table[grade]
	if !ok {
		fb, hasFallback := gradeFallback[grade]
		if !hasFallback {
			return nil, invalid("grade", grade, "stat %d has no %s values", d.ID, grade)
		}
		row = table[fb]
	}
	idx := tierIndex(tier)
	if idx < 0 || idx >= tierCount {
		return nil, invalid("tier", tier, "must be in [%d, %d]", minTier, maxTier)
	}
	return row[idx], nil
}

// ArchetypeDefinition lists the stats allowed on a gear slot, per role.
type ArchetypeDefinition struct {
	Name     Archetype
	Mainstat []StatID
	Substat  []StatID
}

// Pool returns a copy of the allowed ids for role.
func (a *ArchetypeDefinition) Pool(role Role) []StatID {
	return slices.Clone(a.pool(role))
}

func (a *ArchetypeDefinition) pool(role Role) []StatID {
	if role == RoleMainstat {
		return a.Mainstat
	}
	return a.Substat
}

// Allows reports whether id may appear on this archetype in role.
func (a *ArchetypeDefinition) Allows(role Role, id StatID) bool {
	return slices.Contains(a.pool(role), id)
}

// GradeDefinition describes a gear grade.
type GradeDefinition struct {
	Name             Grade
	StartingSubstats int
	MaxSubstats      int
	Weight           float64 // selection weight for random grades
}

// SetDefinition is cosmetic set metadata.
type SetDefinition struct {
	Name    string // lowercase key
	Display string
	Pieces  int
	KeyStat string
	Text    string
	Hunt    string
}

// LevelTier maps the inclusive level range [MinLevel, MaxLevel] to Tier.
type LevelTier struct {
	Tier     int
	MinLevel int
	MaxLevel int
}

// Catalogs holds every static table. It is built once and never mutated:
// New copies every definition it is given, and callers must treat the
// definitions reachable from a Catalogs as read-only.
type Catalogs struct {
	Stats      map[StatID]*StatDefinition
	Archetypes map[Archetype]*ArchetypeDefinition
	Grades     map[Grade]*GradeDefinition
	Sets       map[string]*SetDefinition
	Tiers      []LevelTier

	// Declaration order, so that seeded draws are reproducible.
	statOrder      []StatID
	archetypeOrder []Archetype
	gradeOrder     []Grade
	setOrder       []string
}

// Load builds the default catalogs from the Go literals.
func Load() (*Catalogs, error) {
	c, err := New(statDefs, archetypeDefs, gradeDefs, setDefs, levelTiers)
	if err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}

	slog.Info("loaded gear catalogs",
		"stats", len(c.Stats),
		"archetypes", len(c.Archetypes),
		"grades", len(c.Grades),
		"sets", len(c.Sets),
		"tiers", len(c.Tiers))
	return c, nil
}

// New builds catalogs from the given definitions and checks their consistency.
// Tests use it to build restricted catalogs.
func New(stats []StatDefinition, archetypes []ArchetypeDefinition, grades []GradeDefinition,
	sets []SetDefinition, tiers []LevelTier) (*Catalogs, error) {
	c := &Catalogs{
		Stats:      make(map[StatID]*StatDefinition, len(stats)),
		Archetypes: make(map[Archetype]*ArchetypeDefinition, len(archetypes)),
		Grades:     make(map[Grade]*GradeDefinition, len(grades)),
		Sets:       make(map[string]*SetDefinition, len(sets)),
		Tiers:      slices.Clone(tiers),
	}

	for i := range stats {
		def := stats[i].clone()
		d := &def
		if err := checkStat(d); err != nil {
			return nil, err
		}
		if _, dup := c.Stats[d.ID]; dup {
			return nil, fmt.Errorf("stat %d: duplicate id", d.ID)
		}
		c.Stats[d.ID] = d
		c.statOrder = append(c.statOrder, d.ID)
	}

	for i := range archetypes {
		a := &ArchetypeDefinition{
			Name:     archetypes[i].Name,
			Mainstat: slices.Clone(archetypes[i].Mainstat),
			Substat:  slices.Clone(archetypes[i].Substat),
		}
		if len(a.Mainstat) == 0 {
			return nil, fmt.Errorf("archetype %s: empty mainstat pool", a.Name)
		}
		for _, id := range slices.Concat(a.Mainstat, a.Substat) {
			if _, ok := c.Stats[id]; !ok {
				return nil, fmt.Errorf("archetype %s: unknown stat %d", a.Name, id)
			}
		}
		c.Archetypes[a.Name] = a
		c.archetypeOrder = append(c.archetypeOrder, a.Name)
	}

	for i := range grades {
		g := new(GradeDefinition)
		*g = grades[i]
		if g.StartingSubstats < 0 || g.StartingSubstats > g.MaxSubstats || g.MaxSubstats > MaxSubstats {
			return nil, fmt.Errorf("grade %s: substat counts %d/%d out of range", g.Name, g.StartingSubstats, g.MaxSubstats)
		}
		if g.Weight < 0 {
			return nil, fmt.Errorf("grade %s: negative weight", g.Name)
		}
		c.Grades[g.Name] = g
		c.gradeOrder = append(c.gradeOrder, g.Name)
	}

	for i := range sets {
		set := sets[i]
		c.Sets[set.Name] = &set
		c.setOrder = append(c.setOrder, set.Name)
	}

	for i, t := range c.Tiers {
		if t.MinLevel > t.MaxLevel || t.Tier < minTier || t.Tier > maxTier {
			return nil, fmt.Errorf("tier %d: bad level range [%d, %d]", t.Tier, t.MinLevel, t.MaxLevel)
		}
		if i > 0 && c.Tiers[i-1].MaxLevel+1 != t.MinLevel {
			return nil, fmt.Errorf("tier %d: not contiguous with tier %d", t.Tier, c.Tiers[i-1].Tier)
		}
	}

	return c, nil
}

// checkStat verifies that every table cell of a stat is usable.
func checkStat(d *StatDefinition) error {
	for _, role := range []Role{RoleMainstat, RoleSubstat} {
		table, ok := d.Values[role]
		if !ok {
			return fmt.Errorf("stat %d: missing %s values", d.ID, role)
		}
		for grade, row := range table {
			for i, rule := range row {
				switch r := rule.(type) {
				case Fixed:
				case Weighted:
					if len(r.Values) == 0 || len(r.Values) != len(r.Rates) {
						return fmt.Errorf("stat %d %s %s tier %d: %d values vs %d rates",
							d.ID, role, grade, i+minTier, len(r.Values), len(r.Rates))
					}
					var sum float64
					for _, w := range r.Rates {
						if w < 0 {
							return fmt.Errorf("stat %d %s %s tier %d: negative rate", d.ID, role, grade, i+minTier)
						}
						sum += w
					}
					if sum <= 0 {
						return fmt.Errorf("stat %d %s %s tier %d: zero total rate", d.ID, role, grade, i+minTier)
					}
				default:
					return fmt.Errorf("stat %d %s %s tier %d: missing rule", d.ID, role, grade, i+minTier)
				}
			}
		}
	}

	for _, stone := range []StoneTier{StoneGreater, StoneLesser} {
		bands, ok := d.Mods[stone]
		if !ok {
			return fmt.Errorf("stat %d: missing %s mod ranges", d.ID, stone)
		}
		for b, band := range bands {
			for roll, r := range band {
				if r.Len() <= 0 {
					return fmt.Errorf("stat %d: empty %s mod range band %d roll %d", d.ID, stone, b, roll)
				}
			}
		}
	}
	return nil
}

// StatIDs returns all stat ids in declaration order.
func (c *Catalogs) StatIDs() []StatID { return slices.Clone(c.statOrder) }

// ArchetypeNames returns all archetypes in declaration order.
func (c *Catalogs) ArchetypeNames() []Archetype { return slices.Clone(c.archetypeOrder) }

// GradeNames returns all grades in declaration order.
func (c *Catalogs) GradeNames() []Grade { return slices.Clone(c.gradeOrder) }

// SetNames returns all set keys in declaration order.
func (c *Catalogs) SetNames() []string { return slices.Clone(c.setOrder) }

// Stat returns the definition of id or an InvalidArgument error.
func (c *Catalogs) Stat(id StatID) (*StatDefinition, error) {
	d, ok := c.Stats[id]
	if !ok {
		return nil, invalid("stat id", id, "unknown stat")
	}
	return d, nil
}

// Archetype returns the definition of a or an InvalidArgument error.
func (c *Catalogs) Archetype(a Archetype) (*ArchetypeDefinition, error) {
	d, ok := c.Archetypes[a]
	if !ok {
		return nil, invalid("archetype", a, "unknown archetype")
	}
	return d, nil
}

// Grade returns the definition of g or an InvalidArgument error.
func (c *Catalogs) Grade(g Grade) (*GradeDefinition, error) {
	d, ok := c.Grades[g]
	if !ok {
		return nil, invalid("grade", g, "unknown grade")
	}
	return d, nil
}

// Set returns the definition of a set key or an InvalidArgument error.
func (c *Catalogs) Set(name string) (*SetDefinition, error) {
	d, ok := c.Sets[name]
	if !ok {
		return nil, invalid("set", name, "unknown set")
	}
	return d, nil
}
