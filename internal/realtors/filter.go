package realtors

import "strings"

// FilterState narrows the realtor directory. Every field is an independent
// predicate joined by AND; a zero value means "no constraint", never
// "exclude all".
type FilterState struct {
	Query              string   // free text over name, location, specialty
	Cities             []string // exact city membership
	Specialties        []string // any-of, substring match on specialty
	MinYearsExperience int      // inclusive lower bound
	Services           []string // all-of, membership in the realtor's services
}

// Filter applies the conjunction of predicates to the list. Pure and
// synchronous: suitable for the in-memory directory only (linear scan).
func Filter(list []Realtor, f FilterState) []Realtor {
	out := make([]Realtor, 0, len(list))
	for _, r := range list {
		if matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r Realtor, f FilterState) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Location), q) &&
			!strings.Contains(strings.ToLower(r.Specialty), q) {
			return false
		}
	}

	if len(f.Cities) > 0 && !containsString(f.Cities, r.City) {
		return false
	}

	if len(f.Specialties) > 0 {
		specialty := strings.ToLower(r.Specialty)
		any := false
		for _, s := range f.Specialties {
			if strings.Contains(specialty, strings.ToLower(s)) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if r.YearsExperience < f.MinYearsExperience {
		return false
	}

	for _, service := range f.Services {
		if !containsString(r.Services, service) {
			return false
		}
	}

	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
