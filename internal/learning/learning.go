// Package learning derives learning paths from a user's skill gaps.
package learning

import "github.com/spigell/fitpath/internal/profile"

// Resources resolves a skill tag to a learning resource description.
type Resources interface {
	Lookup(skill string) (string, bool)
}

// Catalog is an in-memory skill to resource mapping.
type Catalog map[string]string

func (c Catalog) Lookup(skill string) (string, bool) {
	resource, ok := c[skill]
	return resource, ok
}

// Gaps returns the required skills the user does not have, sorted by tag.
func Gaps(u *profile.User, o *profile.Opportunity) []string {
	return profile.NewSet(o.RequiredSkills...).Difference(u.Skills.All()).Sorted()
}

// Path resolves the user's gaps for the opportunity against resources.
func Path(u *profile.User, o *profile.Opportunity, resources Resources) []string {
	return Resolve(Gaps(u, o), resources)
}

// Resolve looks up each skill in order. Skills without a resource are left out.
func Resolve(skills []string, resources Resources) []string {
	path := make([]string, 0, len(skills))
	if resources == nil {
		return path
	}

	for _, skill := range skills {
		if resource, ok := resources.Lookup(skill); ok {
			path = append(path, resource)
		}
	}

	return path
}
