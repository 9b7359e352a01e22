package data

import "slices"

// NewTestCatalogs builds catalogs from the default stat, set and tier tables
// with restricted archetype and grade tables. A nil slice keeps the default table.
// Intended for tests from other packages that need a narrowed catalog.
func NewTestCatalogs(archetypes []ArchetypeDefinition, grades []GradeDefinition) (*Catalogs, error) {
	if archetypes == nil {
		archetypes = slices.Clone(archetypeDefs)
	}
	if grades == nil {
		grades = slices.Clone(gradeDefs)
	}
	return New(slices.Clone(statDefs), archetypes, grades, slices.Clone(setDefs), levelTiers)
}
