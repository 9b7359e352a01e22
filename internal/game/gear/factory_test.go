package gear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gearforge/internal/data"
	"github.com/udisondev/gearforge/internal/rng"
)

// --- helpers ---

func newFactory(t *testing.T, seed uint64) *Factory {
	t.Helper()
	c, err := data.Load()
	require.NoError(t, err)
	return NewFactory(c, rng.New(seed))
}

func statID(id data.StatID) *data.StatID { return &id }

func mustCreate(t *testing.T, f *Factory, opts Options) *Gear {
	t.Helper()
	g, err := f.Create(opts)
	require.NoError(t, err)
	return g
}

// --- Create ---

func TestCreate_Invariants(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 1)
	c := f.Catalogs()
	for range 1500 {
		g := mustCreate(t, f, Options{})

		main := g.Mainstat()
		subs := g.SubstatIDs()
		assert.NotContains(t, subs, main.ID())
		seen := map[data.StatID]bool{}
		for _, id := range subs {
			require.False(t, seen[id], "duplicate substat %d in %s", id, g)
			seen[id] = true
		}

		ad := c.Archetypes[g.Archetype()]
		assert.True(t, ad.Allows(data.RoleMainstat, main.ID()), "mainstat %d on %s", main.ID(), g.Archetype())
		for _, id := range subs {
			assert.True(t, ad.Allows(data.RoleSubstat, id), "substat %d on %s", id, g.Archetype())
		}

		gd := c.Grades[g.Grade()]
		assert.Len(t, subs, gd.StartingSubstats)
		assert.Contains(t, []data.Grade{data.GradeRare, data.GradeHeroic, data.GradeEpic}, g.Grade())
		assert.Equal(t, data.DefaultLevel, g.Level())
		assert.Equal(t, 6, g.Tier())
		assert.Zero(t, g.Enhancement())
		assert.False(t, g.Reforged())
		for _, s := range g.Substats() {
			assert.Zero(t, s.RollCount())
			assert.False(t, s.Modded())
			assert.Equal(t, data.RoleSubstat, s.Role())
		}
	}
}

func TestCreate_FlatAttackMainstatIsFixed(t *testing.T) {
	t.Parallel()

	for seed := range uint64(30) {
		f := newFactory(t, seed)
		g := mustCreate(t, f, Options{Grade: "rare", Archetype: "weapon", Mainstat: statID(data.StatAttack), Level: 85})
		assert.Equal(t, 100, g.Mainstat().Value())
		assert.Equal(t, "100 Attack", g.Mainstat().Text())
	}
}

func TestCreate_AttackPercentMainstatText(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 2)
	for range 20 {
		g := mustCreate(t, f, Options{Grade: "epic", Mainstat: statID(data.StatAttackPercent)})
		assert.Equal(t, "12% Attack", g.Mainstat().Text())
		assert.Contains(t, []data.Archetype{data.ArchetypeNecklace, data.ArchetypeRing, data.ArchetypeBoots}, g.Archetype())
	}
}

func TestCreate_SubstatPoolCoverage(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 3)
	pool := f.Catalogs().Archetypes[data.ArchetypeWeapon].Substat

	seen := map[data.StatID]bool{}
	for range 500 {
		g := mustCreate(t, f, Options{Archetype: "Weapon"})
		for _, id := range g.SubstatIDs() {
			require.Contains(t, pool, id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, len(pool))
}

func TestCreate_MainstatPoolCoverage(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 4)
	pool := f.Catalogs().Archetypes[data.ArchetypeNecklace].Mainstat

	seen := map[data.StatID]bool{}
	for range 500 {
		g := mustCreate(t, f, Options{Archetype: "necklace"})
		require.Contains(t, pool, g.Mainstat().ID())
		seen[g.Mainstat().ID()] = true
	}
	assert.Len(t, seen, len(pool))
}

func TestCreate_SuppliedSubstatsKeepOrder(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 5)

	g := mustCreate(t, f, Options{Grade: "rare", Archetype: "weapon", Substats: []data.StatID{10, 8}})
	assert.Equal(t, []data.StatID{10, 8}, g.SubstatIDs())

	g = mustCreate(t, f, Options{Grade: "heroic", Archetype: "helm", Substats: []data.StatID{10}})
	require.Len(t, g.SubstatIDs(), 3)
	assert.Equal(t, data.StatSpeed, g.SubstatIDs()[0])
	assert.Equal(t, data.StatHealth, g.Mainstat().ID())
}

func TestCreate_GradeFollowsSuppliedSubstats(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 6)
	for range 200 {
		g := mustCreate(t, f, Options{Substats: []data.StatID{1, 6, 7}})
		assert.Contains(t, []data.Grade{data.GradeHeroic, data.GradeEpic}, g.Grade())
		assert.Equal(t, []data.StatID{1, 6, 7}, g.SubstatIDs()[:3])
	}

	for range 50 {
		g := mustCreate(t, f, Options{Substats: []data.StatID{1, 6, 7, 10}})
		assert.Equal(t, data.GradeEpic, g.Grade())
	}
}

func TestCreate_ArchetypeFollowsSuppliedStats(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 7)
	for range 200 {
		// Speed mainstat only exists on boots.
		g := mustCreate(t, f, Options{Mainstat: statID(data.StatSpeed)})
		assert.Equal(t, data.ArchetypeBoots, g.Archetype())
	}
	for range 200 {
		// Flat attack substat excludes weapon and armor.
		g := mustCreate(t, f, Options{Substats: []data.StatID{data.StatAttack}})
		assert.NotContains(t, []data.Archetype{data.ArchetypeWeapon, data.ArchetypeArmor}, g.Archetype())
	}
}

func TestCreate_LevelAndSet(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 8)

	g := mustCreate(t, f, Options{Level: 100, Set: " Speed"})
	assert.Equal(t, 100, g.Level())
	assert.Equal(t, 7, g.Tier())
	assert.Equal(t, "speed", g.Set())

	g = mustCreate(t, f, Options{Level: 60, Grade: "epic", Archetype: "armor", Mainstat: statID(data.StatDefense)})
	assert.Equal(t, 5, g.Tier())
	assert.Equal(t, 52, g.Mainstat().Value())

	g = mustCreate(t, f, Options{})
	assert.Contains(t, f.Catalogs().SetNames(), g.Set())
}

func TestCreate_ExplicitNormalGrade(t *testing.T) {
	t.Parallel()

	f := newFactory(t, 9)
	g := mustCreate(t, f, Options{Grade: "NORMAL", Archetype: "weapon"})
	assert.Equal(t, data.GradeNormal, g.Grade())
	assert.Empty(t, g.SubstatIDs())
	assert.Equal(t, 100, g.Mainstat().Value())

	g = mustCreate(t, f, Options{Grade: "good", Archetype: "helm"})
	assert.Len(t, g.SubstatIDs(), 1)
}

func TestCreate_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
	}{
		{"unknown archetype", Options{Archetype: "sword"}},
		{"unknown grade", Options{Grade: "mythic"}},
		{"unknown set", Options{Set: "vampire"}},
		{"level too low", Options{Level: 57}},
		{"level too high", Options{Level: 101}},
		{"unknown mainstat", Options{Mainstat: statID(11)}},
		{"unknown substat", Options{Substats: []data.StatID{1, 12}}},
		{"too many substats", Options{Substats: []data.StatID{1, 2, 3, 4, 5}}},
		{"duplicate substats", Options{Substats: []data.StatID{1, 1}}},
		{"mainstat among substats", Options{Mainstat: statID(2), Substats: []data.StatID{2}}},
		{"grade starts with fewer substats", Options{Grade: "rare", Substats: []data.StatID{1, 2, 3}}},
		{"mainstat not allowed on archetype", Options{Archetype: "weapon", Mainstat: statID(data.StatSpeed)}},
		{"substat not allowed on archetype", Options{Archetype: "weapon", Substats: []data.StatID{data.StatAttack}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFactory(t, 10)
			g, err := f.Create(tt.opts)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, data.ErrInvalidArgument)
		})
	}
}

func TestCreate_NoFeasibleCandidate(t *testing.T) {
	t.Parallel()

	narrow := []data.ArchetypeDefinition{
		{Name: data.ArchetypeWeapon, Mainstat: []data.StatID{data.StatAttack}, Substat: []data.StatID{data.StatSpeed, data.StatCritChance}},
	}
	c, err := data.NewTestCatalogs(narrow, nil)
	require.NoError(t, err)
	f := NewFactory(c, rng.New(11))

	tests := []struct {
		name string
		opts Options
	}{
		{"pool too small for epic", Options{Grade: "epic"}},
		{"pool too small for heroic", Options{Grade: "heroic", Archetype: "weapon"}},
		{"no archetype allows the substat", Options{Substats: []data.StatID{data.StatDefense}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Create(tt.opts)
			assert.ErrorIs(t, err, data.ErrNoFeasibleCandidate)
			assert.ErrorIs(t, err, data.ErrInvalidArgument)
		})
	}

	g, err := f.Create(Options{Grade: "rare"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []data.StatID{data.StatSpeed, data.StatCritChance}, g.SubstatIDs())
}

func TestCreate_NoWeightedGrade(t *testing.T) {
	t.Parallel()

	grades := []data.GradeDefinition{
		{Name: data.GradeNormal, StartingSubstats: 0, MaxSubstats: 4},
		{Name: data.GradeGood, StartingSubstats: 1, MaxSubstats: 4},
	}
	c, err := data.NewTestCatalogs(nil, grades)
	require.NoError(t, err)

	_, err = NewFactory(c, rng.New(12)).Create(Options{})
	assert.ErrorIs(t, err, data.ErrNoFeasibleCandidate)
}

func TestCreate_DeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a, b := newFactory(t, 42), newFactory(t, 42)
	for range 50 {
		ga := mustCreate(t, a, Options{})
		gb := mustCreate(t, b, Options{})
		assert.Equal(t, ga.Describe(), gb.Describe())
		assert.Equal(t, ga.String(), gb.String())
	}
}
