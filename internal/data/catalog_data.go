package data

// archetypeDefs: allowed stat pools per gear slot.
var archetypeDefs = []ArchetypeDefinition{
	{
		Name:     ArchetypeWeapon,
		Mainstat: []StatID{StatAttack},
		Substat: []StatID{
			StatAttackPercent, StatHealth, StatHealthPercent, StatCritChance,
			StatCritDamage, StatEffectiveness, StatEffectResistance, StatSpeed,
		},
	},
	{
		Name:     ArchetypeHelm,
		Mainstat: []StatID{StatHealth},
		Substat: []StatID{
			StatAttack, StatAttackPercent, StatHealthPercent, StatDefense, StatDefensePercent,
			StatCritChance, StatCritDamage, StatEffectiveness, StatEffectResistance, StatSpeed,
		},
	},
	{
		Name:     ArchetypeArmor,
		Mainstat: []StatID{StatDefense},
		Substat: []StatID{
			StatHealth, StatHealthPercent, StatDefensePercent, StatCritChance,
			StatCritDamage, StatEffectiveness, StatEffectResistance, StatSpeed,
		},
	},
	{
		Name: ArchetypeNecklace,
		Mainstat: []StatID{
			StatAttack, StatAttackPercent, StatHealth, StatHealthPercent,
			StatDefense, StatDefensePercent, StatCritChance, StatCritDamage,
		},
		Substat: allStats(),
	},
	{
		Name: ArchetypeRing,
		Mainstat: []StatID{
			StatAttack, StatAttackPercent, StatHealth, StatHealthPercent,
			StatDefense, StatDefensePercent, StatEffectiveness, StatEffectResistance,
		},
		Substat: allStats(),
	},
	{
		Name: ArchetypeBoots,
		Mainstat: []StatID{
			StatAttack, StatAttackPercent, StatHealth, StatHealthPercent,
			StatDefense, StatDefensePercent, StatSpeed,
		},
		Substat: allStats(),
	},
}

func allStats() []StatID {
	out := make([]StatID, 0, StatSpeed+1)
	for id := StatAttack; id <= StatSpeed; id++ {
		out = append(out, id)
	}
	return out
}

// gradeDefs: weights are crafting rates; normal and good are never rolled.
var gradeDefs = []GradeDefinition{
	{Name: GradeNormal, StartingSubstats: 0, MaxSubstats: MaxSubstats, Weight: 0},
	{Name: GradeGood, StartingSubstats: 1, MaxSubstats: MaxSubstats, Weight: 0},
	{Name: GradeRare, StartingSubstats: 2, MaxSubstats: MaxSubstats, Weight: 0.35},
	{Name: GradeHeroic, StartingSubstats: 3, MaxSubstats: MaxSubstats, Weight: 0.53},
	{Name: GradeEpic, StartingSubstats: 4, MaxSubstats: MaxSubstats, Weight: 0.12},
}

// levelTiers: no tier data exists below level 58.
var levelTiers = []LevelTier{
	{Tier: 5, MinLevel: 58, MaxLevel: 71},
	{Tier: 6, MinLevel: 72, MaxLevel: 85},
	{Tier: 7, MinLevel: 86, MaxLevel: 99},
}

// setDefs: cosmetic set bonuses; the engine only checks existence.
var setDefs = []SetDefinition{
	{Name: "health", Display: "Health", Pieces: 2, KeyStat: "health_percent", Text: "Gives +15% health", Hunt: "golem"},
	{Name: "defense", Display: "Defense", Pieces: 2, KeyStat: "def_percent", Text: "Gives +15% defense", Hunt: "golem"},
	{Name: "speed", Display: "Speed", Pieces: 4, KeyStat: "speed_percent", Text: "Gives 25% speed", Hunt: "wyvern"},
	{Name: "attack", Display: "Attack", Pieces: 4, KeyStat: "atk_percent", Text: "Gives +35% attack", Hunt: "golem"},
	{Name: "critical", Display: "Critical", Pieces: 2, KeyStat: "crit_rate", Text: "Gives +12% critical rate", Hunt: "wyvern"},
	{Name: "hit", Display: "Hit", Pieces: 2, KeyStat: "effectiveness", Text: "Gives +20% effectiveness", Hunt: "wyvern"},
	{Name: "destruction", Display: "Destruction", Pieces: 4, KeyStat: "crit_damage", Text: "Gives +40% critical damage", Hunt: "banshee"},
	{Name: "lifesteal", Display: "Lifesteal", Pieces: 4, KeyStat: "lifesteal", Text: "Gives +20% lifesteal of the damage dealt to enemies", Hunt: "banshee"},
	{Name: "counter", Display: "Counter", Pieces: 4, KeyStat: "counter", Text: "Gives +20% chance to counter attack when attacked", Hunt: "banshee"},
	{Name: "resist", Display: "Resist", Pieces: 2, KeyStat: "eff_res", Text: "Gives +20% effect resistance", Hunt: "banshee"},
	{Name: "unity", Display: "Unity", Pieces: 2, KeyStat: "dual_atk", Text: "Gives +4% chance to trigger dual attack", Hunt: "azimanak"},
	{Name: "rage", Display: "Rage", Pieces: 4, KeyStat: "debuff_dmg", Text: "Gives +30% damage when the enemy is debuffed", Hunt: "azimanak"},
	{Name: "immunity", Display: "Immunity", Pieces: 2, KeyStat: "immunity", Text: "Gives 1 turn immunity buff at the start of each battle phase", Hunt: "azimanak"},
	{Name: "protection", Display: "Protection", Pieces: 4, KeyStat: "barrier", Text: "Gives 2 turns 12% barrier buff at the start of each battle phase to all allies", Hunt: "golem"},
	{Name: "revenge", Display: "Revenge", Pieces: 4, KeyStat: "speed", Text: "Gives +12% speed and an additional 0.5% speed for every 1% hp missing", Hunt: "caides"},
	{Name: "injury", Display: "Injury", Pieces: 4, KeyStat: "max_health", Text: "Decreases max health of target by up to 6% (12% for single attack)", Hunt: "caides"},
	{Name: "penetration", Display: "Penetration", Pieces: 2, KeyStat: "penetration", Text: "Penetrates defense of target by 15%", Hunt: "caides"},
	{Name: "torrent", Display: "Torrent", Pieces: 2, KeyStat: "health,damage", Text: "Decreases health by 10%, increases damage by 10%", Hunt: "caides"},
}
