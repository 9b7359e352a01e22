package gear

import (
	"math/rand/v2"
	"slices"

	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/game/statvalue"
	"github.com/udisondev/gearforge/internal/rng"
)

// roller is the random stream owned by one gear, with a resolver bound to it.
// Two gears never share a roller.
type roller struct {
	catalogs *data.Catalogs
	pcg      *rand.PCG
	src      *rand.Rand
	resolver *statvalue.Resolver
}

func newRoller(c *data.Catalogs, pcg *rand.PCG) *roller {
	src := rand.New(pcg)
	return &roller{
		catalogs: c,
		pcg:      pcg,
		src:      src,
		resolver: statvalue.New(c, src),
	}
}

// fork returns a roller starting from a copy of the current stream state.
func (r *roller) fork() *roller {
	pcg := *r.pcg
	return newRoller(r.catalogs, &pcg)
}

// newStat materializes a roll-0 stat for id in role.
func (r *roller) newStat(id data.StatID, role data.Role, a data.Archetype, g data.Grade, level int) (Stat, error) {
	def, err := r.catalogs.Stat(id)
	if err != nil {
		return Stat{}, err
	}
	tier, err := r.catalogs.TierForLevel(level)
	if err != nil {
		return Stat{}, err
	}
	value, err := r.resolver.ResolveValue(id, role, g, level)
	if err != nil {
		return Stat{}, err
	}
	inc, err := r.resolver.ReforgeIncrease(id, role, 0)
	if err != nil {
		return Stat{}, err
	}

	return Stat{
		id:              id,
		role:            role,
		archetype:       a,
		grade:           g,
		level:           level,
		tier:            tier,
		text:            def.Text,
		baseValue:       value,
		value:           value,
		reforgeIncrease: inc,
	}, nil
}

// substatPool lists the substat ids archetype a can still add next to main and existing.
func (r *roller) substatPool(a data.Archetype, main data.StatID, existing []data.StatID) ([]data.StatID, error) {
	ad, err := r.catalogs.Archetype(a)
	if err != nil {
		return nil, err
	}
	return available(ad.Substat, append(slices.Clone(existing), main)), nil
}

// drawSubstat draws a substat absent from the gear and materializes it.
func (r *roller) drawSubstat(a data.Archetype, g data.Grade, level int, main data.StatID, existing []data.StatID) (Stat, error) {
	pool, err := r.substatPool(a, main, existing)
	if err != nil {
		return Stat{}, err
	}
	id, ok := rng.Pick(r.src, pool)
	if !ok {
		return Stat{}, data.Infeasible("substats", existing, "archetype substat pool exhausted")
	}
	return r.newStat(id, data.RoleSubstat, a, g, level)
}
