package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArchetype(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	tests := []struct {
		in      string
		want    Archetype
		wantErr bool
	}{
		{"weapon", ArchetypeWeapon, false},
		{" Weapon ", ArchetypeWeapon, false},
		{"BOOTS", ArchetypeBoots, false},
		{"sword", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := c.NormalizeArchetype(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeGradeAndSet(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)

	g, err := c.NormalizeGrade("Epic")
	require.NoError(t, err)
	assert.Equal(t, GradeEpic, g)

	_, err = c.NormalizeGrade("legendary")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	s, err := c.NormalizeSet("  SPEED")
	require.NoError(t, err)
	assert.Equal(t, "speed", s)

	_, err = c.NormalizeSet("vampire")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNormalizeRoleAndStone(t *testing.T) {
	t.Parallel()

	r, err := NormalizeRole("MainStat")
	require.NoError(t, err)
	assert.Equal(t, RoleMainstat, r)

	r, err = NormalizeRole("substat")
	require.NoError(t, err)
	assert.Equal(t, RoleSubstat, r)

	_, err = NormalizeRole("offstat")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	st, err := NormalizeStoneTier("")
	require.NoError(t, err)
	assert.Equal(t, StoneGreater, st)

	st, err = NormalizeStoneTier("Lesser")
	require.NoError(t, err)
	assert.Equal(t, StoneLesser, st)

	_, err = NormalizeStoneTier("ancient")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseStatID(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	tests := []struct {
		in      string
		want    StatID
		wantErr bool
	}{
		{"0", StatAttack, false},
		{" 10 ", StatSpeed, false},
		{"11", 0, true},
		{"-1", 0, true},
		{"atk", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := c.ParseStatID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   int
		wantErr bool
	}{
		{58, false},
		{85, false},
		{100, false},
		{0, true},
		{57, true},
		{101, true},
		{-5, true},
	}
	for _, tt := range tests {
		err := ValidateLevel(tt.level)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidArgument, "level %d", tt.level)
			continue
		}
		assert.NoError(t, err, "level %d", tt.level)
	}
}

func TestValidateRollCount(t *testing.T) {
	t.Parallel()

	for n := 0; n <= MaxRollCount; n++ {
		assert.NoError(t, ValidateRollCount(n))
	}
	assert.ErrorIs(t, ValidateRollCount(-1), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateRollCount(6), ErrInvalidArgument)
}

func TestTierForLevel(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	for level := 58; level <= 99; level++ {
		want := 7
		switch {
		case level <= 71:
			want = 5
		case level <= 85:
			want = 6
		}
		got, err := c.TierForLevel(level)
		require.NoError(t, err)
		assert.Equal(t, want, got, "level %d", level)
	}

	got, err := c.TierForLevel(100)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	for _, level := range []int{0, 57, 101} {
		_, err := c.TierForLevel(level)
		assert.ErrorIs(t, err, ErrInvalidArgument, "level %d", level)
	}
}

func TestValidateInPool(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	assert.NoError(t, c.ValidateInPool(ArchetypeWeapon, RoleMainstat, StatAttack))
	assert.ErrorIs(t, c.ValidateInPool(ArchetypeWeapon, RoleMainstat, StatSpeed), ErrInvalidArgument)
	assert.ErrorIs(t, c.ValidateInPool(ArchetypeWeapon, RoleSubstat, StatAttack), ErrInvalidArgument)
	assert.NoError(t, c.ValidateInPool(ArchetypeBoots, RoleMainstat, StatSpeed))
	assert.ErrorIs(t, c.ValidateInPool("belt", RoleSubstat, StatSpeed), ErrInvalidArgument)
}

func TestValidateSubstatIDs(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	main := StatAttack

	tests := []struct {
		name    string
		ids     []StatID
		wantErr bool
	}{
		{"empty", nil, false},
		{"four distinct", []StatID{1, 2, 3, 10}, false},
		{"too many", []StatID{1, 2, 3, 4, 5}, true},
		{"duplicate", []StatID{1, 2, 1}, true},
		{"contains mainstat", []StatID{0, 2}, true},
		{"unknown stat", []StatID{1, 12}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := c.ValidateSubstatIDs(tt.ids, &main)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, c.ValidateSubstatIDs([]StatID{0, 1}, nil))
}

func TestValidateGradeForSubstats(t *testing.T) {
	t.Parallel()

	c := loadCatalogs(t)
	assert.NoError(t, c.ValidateGradeForSubstats(GradeRare, 2))
	assert.NoError(t, c.ValidateGradeForSubstats(GradeEpic, 4))
	assert.ErrorIs(t, c.ValidateGradeForSubstats(GradeRare, 3), ErrInvalidArgument)
	assert.ErrorIs(t, c.ValidateGradeForSubstats(GradeNormal, 1), ErrInvalidArgument)
	assert.ErrorIs(t, c.ValidateGradeForSubstats("mythic", 0), ErrInvalidArgument)
}
