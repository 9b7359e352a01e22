// Package gear implements gear generation and the gear lifecycle.
//
// Lifecycle:
//  1. Factory.Create resolves grade, archetype, mainstat and substats
//  2. Enhance raises the gear from +0 to +15 (mainstat curve, substat rolls and unlocks)
//  3. Reforge converts a +15 level 85 gear into a level 90 gear, once
//  4. Modify rerolls one substat of a +15 gear with a modification stone
//
// Game-rule rejections are reported through Result and leave the gear untouched.
// Malformed input is returned as a *data.InvalidArgumentError.
package gear

import (
	"slices"

	"github.com/udisondev/gearforge/internal/data"
)

// Gear is a single piece of equipment created by Factory.Create.
//
// Every gear owns its random stream and shares nothing mutable with other
// gears, so distinct gears may be used from different goroutines. A single
// Gear is not safe for concurrent use. The zero value has no stream: its
// lifecycle methods return a *data.InvalidArgumentError.
type Gear struct {
	archetype   data.Archetype
	grade       data.Grade
	set         string
	level       int
	tier        int
	enhancement int
	reforged    bool

	mainstat Stat
	substats []Stat // order matters: Modify addresses substats by 1-based index

	r *roller
}

func (g *Gear) Archetype() data.Archetype { return g.archetype }
func (g *Gear) Grade() data.Grade         { return g.grade }
func (g *Gear) Set() string               { return g.set }
func (g *Gear) Level() int                { return g.level }
func (g *Gear) Tier() int                 { return g.tier }
func (g *Gear) Enhancement() int          { return g.enhancement }
func (g *Gear) Reforged() bool            { return g.reforged }
func (g *Gear) Mainstat() Stat            { return g.mainstat }

// Substats returns a copy of the substats in order.
func (g *Gear) Substats() []Stat {
	return slices.Clone(g.substats)
}

// SubstatIDs returns the substat ids in order.
func (g *Gear) SubstatIDs() []data.StatID {
	ids := make([]data.StatID, len(g.substats))
	for i, s := range g.substats {
		ids[i] = s.id
	}
	return ids
}

// Clone returns a deep copy sharing only the immutable catalogs. The copy gets
// its own stream in the same state, so it replays the draws of the original.
func (g *Gear) Clone() *Gear {
	c := *g
	c.substats = slices.Clone(g.substats)
	if g.r != nil {
		c.r = g.r.fork()
	}
	return &c
}

// errNoStream is returned by lifecycle methods of a Gear not built by a Factory.
var errNoStream = &data.InvalidArgumentError{Field: "gear", Value: "zero value", Reason: "not created by Factory.Create"}

// Enhance raises the enhancement level by one.
func (g *Gear) Enhance() (Result, error) {
	if g.r == nil {
		return Result{}, errNoStream
	}
	return enhance(g)
}

// Reforge converts a +15 level 85 gear into a level 90 gear.
func (g *Gear) Reforge() (Result, error) {
	if g.r == nil {
		return Result{}, errNoStream
	}
	return reforge(g)
}

// Modify replaces the substat at the 1-based index with newID using a stone of the given tier.
func (g *Gear) Modify(index int, newID data.StatID, stone data.StoneTier) (Result, error) {
	if g.r == nil {
		return Result{}, errNoStream
	}
	return modify(g, index, newID, stone)
}

// AddSubstat unlocks one new substat drawn from the archetype pool.
// It fails once the grade's maximum substat count is reached.
func (g *Gear) AddSubstat() (Stat, error) {
	if g.r == nil {
		return Stat{}, errNoStream
	}
	gd, err := g.r.catalogs.Grade(g.grade)
	if err != nil {
		return Stat{}, err
	}
	if len(g.substats) >= gd.MaxSubstats {
		return Stat{}, &data.InvalidArgumentError{Field: "substats", Value: len(g.substats),
			Reason: "gear already has the maximum number of substats"}
	}

	s, err := g.r.drawSubstat(g.archetype, g.grade, g.level, g.mainstat.id, g.SubstatIDs())
	if err != nil {
		return Stat{}, err
	}
	g.substats = append(g.substats, s)
	return s, nil
}

// hasStat reports whether id is the mainstat or a substat other than skip (-1 skips none).
func (g *Gear) hasStat(id data.StatID, skip int) bool {
	if g.mainstat.id == id {
		return true
	}
	for i, s := range g.substats {
		if i != skip && s.id == id {
			return true
		}
	}
	return false
}
