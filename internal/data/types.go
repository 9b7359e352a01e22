package data

import "strconv"

// StatID identifies a stat definition (0..10).
//
//	0 ATK, 1 ATK%, 2 HP, 3 HP%, 4 DEF, 5 DEF%, 6 CRIT, 7 CDMG, 8 EFF, 9 ER, 10 SPD
type StatID int

const (
	StatAttack StatID = iota
	StatAttackPercent
	StatHealth
	StatHealthPercent
	StatDefense
	StatDefensePercent
	StatCritChance
	StatCritDamage
	StatEffectiveness
	StatEffectResistance
	StatSpeed
)

// String returns the canonical id form ("0".."10").
func (id StatID) String() string {
	return strconv.Itoa(int(id))
}

// Role distinguishes the single mainstat of a gear from its substats.
type Role int32

const (
	RoleMainstat Role = iota
	RoleSubstat
)

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case RoleMainstat:
		return "mainstat"
	case RoleSubstat:
		return "substat"
	default:
		return "unknown"
	}
}

// Archetype is a gear slot category.
type Archetype string

const (
	ArchetypeWeapon   Archetype = "weapon"
	ArchetypeHelm     Archetype = "helm"
	ArchetypeArmor    Archetype = "armor"
	ArchetypeNecklace Archetype = "necklace"
	ArchetypeRing     Archetype = "ring"
	ArchetypeBoots    Archetype = "boots"
)

// Grade is the quality of a gear.
type Grade string

const (
	GradeNormal Grade = "normal"
	GradeGood   Grade = "good"
	GradeRare   Grade = "rare"
	GradeHeroic Grade = "heroic"
	GradeEpic   Grade = "epic"
)

// StoneTier selects the mod-range table used by a modification stone.
type StoneTier string

const (
	StoneGreater StoneTier = "greater"
	StoneLesser  StoneTier = "lesser"
)

// Level and enhancement bounds.
const (
	MinLevel       = 58
	MaxLevel       = 100
	DefaultLevel   = 85
	ReforgeLevel   = 85 // only gear at this level can be reforged
	ReforgedLevel  = 90 // level after reforge
	ModLowMaxLevel = 88 // levels up to this one use the low mod band

	MaxEnhancement = 15
	MaxRollCount   = 5
	MaxSubstats    = 4
)

// IntRange is a half-open integer range [Lo, Hi).
type IntRange struct {
	Lo int
	Hi int
}

// Contains reports whether v lies in the range.
func (r IntRange) Contains(v int) bool {
	return v >= r.Lo && v < r.Hi
}

// Len returns the number of integers in the range.
func (r IntRange) Len() int {
	return r.Hi - r.Lo
}

// ValueRule describes how a stat value is produced for one grade×tier cell.
// It is either Fixed or Weighted.
type ValueRule interface {
	valueRule()
}

// Fixed always yields the same value (mainstats).
type Fixed struct {
	Value int
}

// Weighted yields one of Values, drawn with Rates used as relative weights (substats).
// Rates need not sum to 1.
type Weighted struct {
	Values []int
	Rates  []float64
}

func (Fixed) valueRule()    {}
func (Weighted) valueRule() {}

// tierIndex converts a gear tier (5..7) into a value-table row index.
func tierIndex(tier int) int {
	return tier - minTier
}
