package gear

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	valueSlot     = "<A>"
	secondarySlot = "<B>"
	moddedSuffix  = " (modded)"
	separator     = "---"
)

// Format substitutes the value into the stat template. With showReforged the
// post-reforge value is added in parentheses, e.g. "7% (8%) Effectiveness".
func (s Stat) Format(showReforged bool) string {
	secondary := ""
	if showReforged {
		if strings.Contains(s.text, valueSlot+"%") {
			secondary = fmt.Sprintf("(%d%%) ", s.ReforgedValue())
		} else {
			secondary = fmt.Sprintf("(%d) ", s.ReforgedValue())
		}
	}

	out := strings.NewReplacer(valueSlot, strconv.Itoa(s.value), secondarySlot, secondary).Replace(s.text)
	if s.modded {
		out += moddedSuffix
	}
	return out
}

// Describe renders the gear for display. Substats show their post-reforge
// value until the gear is reforged.
func (g *Gear) Describe() string {
	var b strings.Builder
	title := cases.Title(language.English)

	setName := g.set
	if g.r != nil {
		if sd, err := g.r.catalogs.Set(g.set); err == nil {
			setName = sd.Display
		}
	}

	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "+%d %s %s (Lv %d)\n", g.enhancement, title.String(string(g.grade)), title.String(string(g.archetype)), g.level)
	fmt.Fprintf(&b, "%s Set\n", setName)
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "MAIN STAT:")
	fmt.Fprintln(&b, g.mainstat.Format(false))
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "SUBSTATS:")
	for _, s := range g.substats {
		fmt.Fprintln(&b, s.Format(!g.reforged))
	}
	return b.String()
}

// Score returns the weighted substat score now and after reforge.
// The mainstat does not count. A reforged gear has equal scores.
func (g *Gear) Score() (current, afterReforge int) {
	if g.r == nil {
		return 0, 0
	}
	var now, after float64
	for _, s := range g.substats {
		def, err := g.r.catalogs.Stat(s.id)
		if err != nil {
			continue
		}
		now += float64(s.value) * def.GearScore
		if g.reforged {
			after += float64(s.value) * def.GearScore
		} else {
			after += float64(s.ReforgedValue()) * def.GearScore
		}
	}
	return int(math.RoundToEven(now)), int(math.RoundToEven(after))
}

// String implements fmt.Stringer with a one-line summary.
func (g *Gear) String() string {
	ids := make([]string, len(g.substats))
	for i, id := range g.SubstatIDs() {
		ids[i] = id.String()
	}
	return fmt.Sprintf("+%d %s %s lv%d main=%s subs=[%s]", g.enhancement, g.grade, g.archetype, g.level,
		g.mainstat.id, strings.Join(ids, ","))
}

var _ fmt.Stringer = (*Gear)(nil)
