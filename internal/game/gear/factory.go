package gear

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/rng"
)

// Options enumerates every creation input. Zero values mean "draw randomly",
// except Level where 0 means data.DefaultLevel.
type Options struct {
	Archetype string // case-insensitive archetype name
	Grade     string // case-insensitive grade name
	Set       string // case-insensitive set name
	Level     int
	Mainstat  *data.StatID
	Substats  []data.StatID // at most 4, all distinct
}

// Factory creates gear. Every gear gets its own random stream seeded from
// the factory source, so gears from one factory can be used from different
// goroutines. The Factory itself is not safe for concurrent use.
type Factory struct {
	catalogs *data.Catalogs
	src      rng.Source
}

// NewFactory creates a Factory over c seeding gears from src.
func NewFactory(c *data.Catalogs, src rng.Source) *Factory {
	return &Factory{catalogs: c, src: src}
}

// Catalogs returns the catalogs the factory draws from.
func (f *Factory) Catalogs() *data.Catalogs { return f.catalogs }

// Create builds a new +0 gear. Every supplied option constrains the ones drawn
// after it; incompatible inputs fail with a *data.InvalidArgumentError, and an
// empty candidate set additionally matches data.ErrNoFeasibleCandidate.
func (f *Factory) Create(opts Options) (*Gear, error) {
	r := newRoller(f.catalogs, rng.Derive(f.src))

	set, err := r.resolveSet(opts.Set)
	if err != nil {
		return nil, err
	}
	level := opts.Level
	if level == 0 {
		level = data.DefaultLevel
	}
	if err := data.ValidateLevel(level); err != nil {
		return nil, err
	}
	tier, err := f.catalogs.TierForLevel(level)
	if err != nil {
		return nil, err
	}

	var main *data.StatID
	if opts.Mainstat != nil {
		id, err := f.catalogs.ValidateStatID(*opts.Mainstat)
		if err != nil {
			return nil, err
		}
		main = &id
	}
	subs := slices.Clone(opts.Substats)
	if err := f.catalogs.ValidateSubstatIDs(subs, main); err != nil {
		return nil, err
	}

	grade, err := r.resolveGrade(opts.Grade, len(subs))
	if err != nil {
		return nil, err
	}
	gd, err := f.catalogs.Grade(grade)
	if err != nil {
		return nil, err
	}
	need := max(gd.StartingSubstats-len(subs), 0)

	archetype, err := r.resolveArchetype(opts.Archetype, main, subs, need)
	if err != nil {
		return nil, err
	}
	ad, err := f.catalogs.Archetype(archetype)
	if err != nil {
		return nil, err
	}

	mainID, err := r.resolveMainstat(ad, main, subs, need)
	if err != nil {
		return nil, err
	}

	g := &Gear{
		archetype: archetype,
		grade:     grade,
		set:       set,
		level:     level,
		tier:      tier,
		r:         r,
	}
	g.mainstat, err = r.newStat(mainID, data.RoleMainstat, archetype, grade, level)
	if err != nil {
		return nil, fmt.Errorf("mainstat %d: %w", mainID, err)
	}

	g.substats = make([]Stat, 0, gd.MaxSubstats)
	for _, id := range subs {
		s, err := r.newStat(id, data.RoleSubstat, archetype, grade, level)
		if err != nil {
			return nil, fmt.Errorf("substat %d: %w", id, err)
		}
		g.substats = append(g.substats, s)
	}
	for len(g.substats) < gd.StartingSubstats {
		s, err := r.drawSubstat(archetype, grade, level, mainID, g.SubstatIDs())
		if err != nil {
			return nil, err
		}
		g.substats = append(g.substats, s)
	}

	slog.Debug("gear created",
		"archetype", archetype,
		"grade", grade,
		"set", set,
		"level", level,
		"mainstat", mainID,
		"substats", g.SubstatIDs())
	return g, nil
}

func (r *roller) resolveSet(name string) (string, error) {
	if name != "" {
		return r.catalogs.NormalizeSet(name)
	}
	set, ok := rng.Pick(r.src, r.catalogs.SetNames())
	if !ok {
		return "", data.Infeasible("set", name, "set catalog is empty")
	}
	return set, nil
}

// resolveGrade validates the requested grade or draws one by catalog weight
// among the grades that start with at least supplied substats.
func (r *roller) resolveGrade(name string, supplied int) (data.Grade, error) {
	if name != "" {
		g, err := r.catalogs.NormalizeGrade(name)
		if err != nil {
			return "", err
		}
		if err := r.catalogs.ValidateGradeForSubstats(g, supplied); err != nil {
			return "", err
		}
		return g, nil
	}

	var (
		candidates []data.Grade
		weights    []float64
	)
	for _, g := range r.catalogs.GradeNames() {
		gd := r.catalogs.Grades[g]
		if gd.StartingSubstats >= supplied && gd.Weight > 0 {
			candidates = append(candidates, g)
			weights = append(weights, gd.Weight)
		}
	}
	i := rng.Weighted(r.src, weights)
	if i < 0 {
		return "", data.Infeasible("grade", name, fmt.Sprintf("no weighted grade starts with %d substats", supplied))
	}
	return candidates[i], nil
}

// resolveArchetype validates the requested archetype against the supplied ids,
// or draws uniformly among archetypes that can complete the gear.
func (r *roller) resolveArchetype(name string, main *data.StatID, subs []data.StatID, need int) (data.Archetype, error) {
	if name != "" {
		a, err := r.catalogs.NormalizeArchetype(name)
		if err != nil {
			return "", err
		}
		if main != nil {
			if err := r.catalogs.ValidateInPool(a, data.RoleMainstat, *main); err != nil {
				return "", err
			}
		}
		for _, id := range subs {
			if err := r.catalogs.ValidateInPool(a, data.RoleSubstat, id); err != nil {
				return "", err
			}
		}
		return a, nil
	}

	var candidates []data.Archetype
	for _, a := range r.catalogs.ArchetypeNames() {
		ad := r.catalogs.Archetypes[a]
		if main != nil && !ad.Allows(data.RoleMainstat, *main) {
			continue
		}
		if !allAllowed(ad, subs) {
			continue
		}
		if len(feasibleMainstats(ad, main, subs, need)) == 0 {
			continue
		}
		candidates = append(candidates, a)
	}

	a, ok := rng.Pick(r.src, candidates)
	if !ok {
		return "", data.Infeasible("archetype", name, "no archetype allows the requested stats")
	}
	return a, nil
}

// resolveMainstat returns the requested mainstat or draws one that leaves
// enough substats to fill the gear.
func (r *roller) resolveMainstat(ad *data.ArchetypeDefinition, main *data.StatID, subs []data.StatID, need int) (data.StatID, error) {
	candidates := feasibleMainstats(ad, main, subs, need)
	id, ok := rng.Pick(r.src, candidates)
	if !ok {
		return 0, data.Infeasible("mainstat", ad.Name, fmt.Sprintf("cannot fill %d more substats", need))
	}
	return id, nil
}

// feasibleMainstats lists mainstat choices that are disjoint from subs and
// leave at least need substat ids to draw from.
func feasibleMainstats(ad *data.ArchetypeDefinition, main *data.StatID, subs []data.StatID, need int) []data.StatID {
	var pool []data.StatID
	if main != nil {
		pool = []data.StatID{*main}
	} else {
		pool = available(ad.Mainstat, subs)
	}

	out := pool[:0:0]
	for _, m := range pool {
		if len(available(ad.Substat, append(slices.Clone(subs), m))) >= need {
			out = append(out, m)
		}
	}
	return out
}

// available returns pool without the excluded ids, in pool order.
func available(pool, exclude []data.StatID) []data.StatID {
	out := make([]data.StatID, 0, len(pool))
	for _, id := range pool {
		if !slices.Contains(exclude, id) {
			out = append(out, id)
		}
	}
	return out
}

func allAllowed(ad *data.ArchetypeDefinition, subs []data.StatID) bool {
	for _, id := range subs {
		if !ad.Allows(data.RoleSubstat, id) {
			return false
		}
	}
	return true
}
