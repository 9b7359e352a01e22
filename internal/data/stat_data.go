package data

// Value tables are indexed by tier: [0]=T5 (Lv 58-71), [1]=T6 (Lv 72-85), [2]=T7 (Lv 86+).
// Mod tables are indexed by band: [0]=Lv <= 88, [1]=Lv 90; then by roll count 0..5.
//
// Reference values: Epic Seven community gear tables (onstove 7902683).

// seq returns the integers in [lo, hi).
func seq(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for v := lo; v < hi; v++ {
		out = append(out, v)
	}
	return out
}

// edgeRates builds n rates where only the first and last differ from the middle.
func edgeRates(n int, first, mid, last float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mid
	}
	out[0] = first
	out[n-1] = last
	return out
}

// flatRates builds n equal rates.
func flatRates(n int, r float64) []float64 {
	return edgeRates(n, r, r, r)
}

// edgeWeighted is a Weighted rule over [lo, hi) with edge-adjusted rates.
func edgeWeighted(lo, hi int, first, mid, last float64) Weighted {
	return Weighted{Values: seq(lo, hi), Rates: edgeRates(hi-lo, first, mid, last)}
}

// listWeighted is a Weighted rule over an explicit value list with equal rates.
func listWeighted(values []int, r float64) Weighted {
	return Weighted{Values: values, Rates: flatRates(len(values), r)}
}

// fixedRow returns the same fixed mainstat values for every rollable grade.
func fixedRow(t5, t6, t7 int) ValueTable {
	row := [tierCount]ValueRule{Fixed{t5}, Fixed{t6}, Fixed{t7}}
	return ValueTable{GradeRare: row, GradeHeroic: row, GradeEpic: row}
}

func tiers(t5, t6, t7 Weighted) [tierCount]ValueRule {
	return [tierCount]ValueRule{t5, t6, t7}
}

// ranges packs six half-open [lo, hi) pairs, one per roll count.
func ranges(p ...int) [MaxRollCount + 1]IntRange {
	var out [MaxRollCount + 1]IntRange
	for i := range out {
		out[i] = IntRange{Lo: p[2*i], Hi: p[2*i+1]}
	}
	return out
}

// Reforge increases per roll count.
var (
	reforgePercent = [MaxRollCount + 1]int{1, 3, 4, 5, 7, 8}
	reforgeCrit    = [MaxRollCount + 1]int{1, 2, 3, 4, 5, 6}
	reforgeCDmg    = [MaxRollCount + 1]int{1, 2, 3, 4, 6, 7}
	reforgeSpeed   = [MaxRollCount + 1]int{0, 1, 2, 3, 4, 4}
	reforgeAttack  = [MaxRollCount + 1]int{11, 22, 33, 44, 55, 66}
	reforgeDefense = [MaxRollCount + 1]int{9, 18, 27, 36, 45, 54}
	reforgeHealth  = [MaxRollCount + 1]int{56, 112, 168, 224, 280, 336}
)

// Percent substats: ATK%, HP%, DEF%, EFF, ER share one table.
var percentSubstats = ValueTable{
	GradeRare: tiers(
		listWeighted([]int{4, 5, 5, 6}, 0.25),
		listWeighted([]int{4, 5, 5, 6, 7}, 0.20),
		listWeighted([]int{5, 5, 6, 7, 8}, 0.20),
	),
	GradeHeroic: tiers(
		listWeighted([]int{4, 5, 6, 7}, 0.25),
		listWeighted([]int{4, 5, 6, 7, 8}, 0.20),
		listWeighted([]int{5, 6, 7, 8, 9}, 0.20),
	),
	GradeEpic: tiers(
		listWeighted([]int{4, 5, 6, 7}, 0.25),
		listWeighted([]int{4, 5, 6, 7, 8}, 0.20),
		listWeighted([]int{5, 6, 7, 8, 9}, 0.20),
	),
}

var percentMods = ModTable{
	StoneGreater: {
		ranges(4, 9, 7, 12, 10, 15, 13, 18, 15, 19, 16, 20),
		ranges(5, 10, 10, 15, 14, 19, 18, 23, 22, 26, 24, 28),
	},
	StoneLesser: {
		ranges(3, 6, 5, 9, 8, 12, 11, 15, 13, 16, 14, 17),
		ranges(4, 7, 8, 12, 12, 16, 16, 20, 20, 23, 22, 25),
	},
}

func percentStat(id StatID, text, key string) StatDefinition {
	return StatDefinition{
		ID:        id,
		Text:      text,
		KeyStat:   key,
		GearScore: 1,
		Reforge:   ReforgeTable{Mainstat: 65, Substat: reforgePercent},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(10, 12, 13),
			RoleSubstat:  percentSubstats,
		},
		Mods: percentMods,
	}
}

// statDefs: all stat definitions, ordered by id.
var statDefs = []StatDefinition{
	{
		ID:        StatAttack,
		Text:      "<A> <B>Attack",
		KeyStat:   "attack_flat",
		GearScore: 3.46 / 39,
		Reforge:   ReforgeTable{Mainstat: 525, Substat: reforgeAttack},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(88, 100, 103),
			RoleSubstat: {
				GradeRare: tiers(
					edgeWeighted(25, 37, 0.03944, 0.09527, 0.00781),
					edgeWeighted(29, 43, 0.01145, 0.08177, 0.00736),
					edgeWeighted(34, 49, 0.06305, 0.07149, 0.00758),
				),
				GradeHeroic: tiers(
					edgeWeighted(27, 39, 0.08955, 0.09027, 0.00776),
					edgeWeighted(31, 45, 0.03718, 0.07746, 0.03331),
					edgeWeighted(36, 51, 0.06678, 0.06773, 0.05270),
				),
				GradeEpic: tiers(
					edgeWeighted(28, 41, 0.04889, 0.08576, 0.00772),
					edgeWeighted(33, 47, 0.06103, 0.07353, 0.05662),
					edgeWeighted(37, 54, 0.00579, 0.06435, 0.02896),
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(33, 48, 50, 78, 68, 102, 79, 110, 94, 130, 128, 152),
				ranges(44, 59, 72, 100, 101, 135, 123, 154, 149, 185, 194, 218),
			},
			StoneLesser: {
				ranges(28, 41, 42, 66, 58, 87, 67, 94, 80, 111, 109, 129),
				ranges(39, 52, 64, 88, 91, 120, 111, 138, 135, 166, 175, 195),
			},
		},
	},
	percentStat(StatAttackPercent, "<A>% <B>Attack", "attack_percent"),
	{
		ID:        StatHealth,
		Text:      "<A> <B>Health",
		KeyStat:   "health_flat",
		GearScore: 3.09 / 174,
		Reforge:   ReforgeTable{Mainstat: 2835, Substat: reforgeHealth},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(472, 540, 553),
			RoleSubstat: {
				GradeRare: tiers(
					edgeWeighted(122, 158, 0.00456, 0.02847, 0.02733),
					edgeWeighted(141, 183, 0.00642, 0.02468, 0.00642),
					edgeWeighted(160, 207, 0.00784, 0.02178, 0.01220),
				),
				GradeHeroic: tiers(
					edgeWeighted(129, 167, 0.00914, 0.02698, 0.01983),
					edgeWeighted(149, 193, 0.00889, 0.02339, 0.00889),
					edgeWeighted(169, 219, 0.00887, 0.02064, 0.00062),
				),
				GradeEpic: tiers(
					edgeWeighted(136, 176, 0.01307, 0.02563, 0.01307),
					edgeWeighted(157, 203, 0.01133, 0.02221, 0.01133),
					edgeWeighted(178, 230, 0.01000, 0.01960, 0.01000),
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(158, 204, 235, 337, 322, 423, 378, 462, 435, 579, 561, 660),
				ranges(214, 260, 347, 449, 490, 591, 602, 686, 715, 859, 897, 996),
			},
			StoneLesser: {
				ranges(134, 173, 200, 286, 274, 360, 321, 393, 370, 492, 477, 561),
				ranges(190, 229, 312, 398, 442, 528, 545, 617, 650, 772, 813, 897),
			},
		},
	},
	percentStat(StatHealthPercent, "<A>% <B>Health", "health_percent"),
	{
		ID:        StatDefense,
		Text:      "<A> <B>Defense",
		KeyStat:   "defense_flat",
		GearScore: 4.99 / 31,
		Reforge:   ReforgeTable{Mainstat: 310, Substat: reforgeDefense},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(52, 60, 62),
			RoleSubstat: {
				GradeRare: tiers(
					edgeWeighted(21, 28, 0.07565, 0.18450, 0.00185),
					edgeWeighted(25, 32, 0.12816, 0.15823, 0.08070),
					edgeWeighted(28, 37, 0.02909, 0.13850, 0.00139),
				),
				GradeHeroic: tiers(
					edgeWeighted(22, 29, 0.03671, 0.17483, 0.08916),
					edgeWeighted(26, 34, 0.06147, 0.14993, 0.03898),
					edgeWeighted(30, 39, 0.08005, 0.13123, 0.00131),
				),
				GradeEpic: tiers(
					edgeWeighted(24, 31, 0.16639, 0.16639, 0.00166),
					edgeWeighted(28, 36, 0.14265, 0.14265, 0.00143),
					edgeWeighted(32, 41, 0.12484, 0.12484, 0.00125),
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(28, 36, 32, 62, 51, 77, 60, 81, 73, 98, 94, 112),
				ranges(37, 45, 50, 80, 78, 104, 96, 117, 118, 143, 148, 166),
			},
			StoneLesser: {
				ranges(24, 31, 27, 53, 43, 66, 51, 69, 62, 83, 80, 95),
				ranges(33, 40, 45, 71, 70, 93, 87, 105, 107, 128, 134, 149),
			},
		},
	},
	percentStat(StatDefensePercent, "<A>% <B>Defense", "defense_percent"),
	{
		ID:        StatCritChance,
		Text:      "<A>% <B>Crit Chance",
		KeyStat:   "crit_rate",
		GearScore: 8.0 / 5,
		Reforge:   ReforgeTable{Mainstat: 60, Substat: reforgeCrit},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(9, 11, 12),
			RoleSubstat: {
				GradeRare: tiers(
					listWeighted([]int{2, 3, 4}, 0.33333),
					listWeighted([]int{3, 4, 5}, 0.33333),
					listWeighted([]int{3, 4, 5, 5}, 0.25),
				),
				GradeHeroic: tiers(
					listWeighted([]int{2, 3, 4}, 0.33333),
					listWeighted([]int{3, 4, 5}, 0.33333),
					listWeighted([]int{3, 4, 5, 6}, 0.25),
				),
				GradeEpic: tiers(
					listWeighted([]int{2, 3, 4}, 0.33333),
					listWeighted([]int{3, 4, 5}, 0.33333),
					listWeighted([]int{3, 4, 5, 6}, 0.25),
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(2, 5, 3, 7, 5, 9, 7, 11, 9, 12, 10, 13),
				ranges(3, 6, 5, 9, 8, 12, 11, 15, 14, 17, 16, 19),
			},
			StoneLesser: {
				ranges(2, 4, 2, 5, 3, 6, 4, 8, 6, 9, 7, 10),
				ranges(3, 5, 4, 7, 6, 9, 8, 12, 11, 14, 13, 16),
			},
		},
	},
	{
		ID:        StatCritDamage,
		Text:      "<A>% <B>Crit Damage",
		KeyStat:   "crit_damage",
		GearScore: 8.0 / 7,
		Reforge:   ReforgeTable{Mainstat: 70, Substat: reforgeCDmg},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(11, 13, 14),
			RoleSubstat: {
				GradeRare: tiers(
					listWeighted([]int{3, 4, 5, 5}, 0.25),
					listWeighted([]int{4, 5, 5, 6}, 0.25),
					listWeighted([]int{4, 5, 5, 6, 7}, 0.20),
				),
				GradeHeroic: tiers(
					listWeighted([]int{3, 4, 5, 6}, 0.25),
					listWeighted([]int{4, 5, 6, 7}, 0.25),
					listWeighted([]int{4, 5, 6, 7, 8}, 0.20),
				),
				GradeEpic: tiers(
					listWeighted([]int{3, 4, 5, 6}, 0.25),
					listWeighted([]int{4, 5, 6, 7}, 0.25),
					listWeighted([]int{4, 5, 6, 7, 8}, 0.20),
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(4, 8, 6, 10, 8, 13, 11, 16, 13, 17, 14, 18),
				ranges(5, 9, 8, 12, 11, 16, 15, 20, 19, 23, 21, 25),
			},
			StoneLesser: {
				ranges(3, 5, 4, 7, 6, 10, 9, 13, 11, 14, 12, 15),
				ranges(4, 6, 6, 9, 9, 13, 13, 17, 17, 20, 19, 22),
			},
		},
	},
	percentStat(StatEffectiveness, "<A>% <B>Effectiveness", "eff"),
	percentStat(StatEffectResistance, "<A>% <B>Effect Resistance", "eff_res"),
	{
		ID:        StatSpeed,
		Text:      "<A> <B>Speed",
		KeyStat:   "speed_flat",
		GearScore: 2,
		Reforge:   ReforgeTable{Mainstat: 45, Substat: reforgeSpeed},
		Values: map[Role]ValueTable{
			RoleMainstat: fixedRow(8, 8, 9),
			RoleSubstat: {
				GradeRare: tiers(
					Weighted{Values: []int{1, 2, 3}, Rates: []float64{0.11538, 0.54945, 0.33516}},
					Weighted{Values: []int{1, 2, 3, 4}, Rates: []float64{0.07721, 0.36765, 0.36765, 0.18750}},
					Weighted{Values: []int{2, 3, 4}, Rates: []float64{0.17033, 0.54945, 0.28022}},
				),
				GradeHeroic: tiers(
					Weighted{Values: []int{1, 2, 3}, Rates: []float64{0.05729, 0.52083, 0.42188}},
					Weighted{Values: []int{1, 2, 3, 4}, Rates: []float64{0.03833, 0.34843, 0.34843, 0.26481}},
					Weighted{Values: []int{2, 3, 4}, Rates: []float64{0.08333, 0.52083, 0.39583}},
				),
				GradeEpic: tiers(
					Weighted{Values: []int{2, 3, 4}, Rates: []float64{0.49751, 0.49751, 0.00498}},
					Weighted{Values: []int{2, 3, 4, 5}, Rates: []float64{0.33223, 0.33223, 0.33223, 0.00332}},
					Weighted{Values: []int{3, 4, 5}, Rates: []float64{0.49751, 0.49751, 0.00498}},
				),
			},
		},
		Mods: ModTable{
			StoneGreater: {
				ranges(2, 5, 3, 6, 4, 7, 5, 9, 6, 10, 7, 11),
				ranges(2, 5, 4, 7, 6, 9, 8, 12, 10, 14, 11, 15),
			},
			StoneLesser: {
				ranges(2, 4, 2, 5, 3, 6, 4, 7, 5, 8, 6, 9),
				ranges(2, 4, 3, 6, 5, 8, 7, 10, 9, 12, 10, 13),
			},
		},
	},
}
