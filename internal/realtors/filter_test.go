package realtors

import "testing"

var sample = []Realtor{
	{
		ID: "a", Name: "Anne Archer", Location: "Cleveland, OH", City: "Cleveland",
		Specialty: "Senior Housing & Downsizing", YearsExperience: 20,
		Services: []string{"downsizing", "staging"},
	},
	{
		ID: "b", Name: "Bob Barker", Location: "Akron, OH", City: "Akron",
		Specialty: "First-Time Senior Buyers", YearsExperience: 8,
		Services: []string{"financing guidance"},
	},
	{
		ID: "c", Name: "Cora Chen", Location: "Columbus, OH", City: "Columbus",
		Specialty: "Accessible & Assisted Living", YearsExperience: 12,
		Services: []string{"assisted living", "downsizing"},
	},
}

func ids(list []Realtor) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.ID
	}
	return out
}

func TestFilterEmptyStateReturnsAll(t *testing.T) {
	out := Filter(sample, FilterState{})
	if len(out) != len(sample) {
		t.Errorf("empty filter returned %d of %d entries", len(out), len(sample))
	}
}

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"downsizing", []string{"a"}},   // specialty match
		{"akron", []string{"b"}},        // location match, case-insensitive
		{"cora", []string{"c"}},         // name match
		{"zzz", []string{}},             // no match
		{"senior", []string{"a", "b"}},  // substring across specialties
	}

	for _, tt := range tests {
		got := ids(Filter(sample, FilterState{Query: tt.query}))
		if len(got) != len(tt.want) {
			t.Errorf("Query %q matched %v, want %v", tt.query, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Query %q matched %v, want %v", tt.query, got, tt.want)
				break
			}
		}
	}
}

func TestFilterCities(t *testing.T) {
	out := Filter(sample, FilterState{Cities: []string{"Cleveland", "Columbus"}})
	if got := ids(out); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("city filter matched %v, want [a c]", got)
	}
}

func TestFilterSpecialtiesAnyOf(t *testing.T) {
	out := Filter(sample, FilterState{Specialties: []string{"assisted", "first-time"}})
	if got := ids(out); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("specialty filter matched %v, want [b c]", got)
	}
}

func TestFilterMinExperience(t *testing.T) {
	out := Filter(sample, FilterState{MinYearsExperience: 12})
	if got := ids(out); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("experience filter matched %v, want [a c]", got)
	}

	// The bound is inclusive.
	out = Filter(sample, FilterState{MinYearsExperience: 8})
	if len(out) != 3 {
		t.Errorf("inclusive bound matched %d, want 3", len(out))
	}
}

func TestFilterServicesAllOf(t *testing.T) {
	out := Filter(sample, FilterState{Services: []string{"downsizing"}})
	if got := ids(out); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("single service matched %v, want [a c]", got)
	}

	out = Filter(sample, FilterState{Services: []string{"downsizing", "staging"}})
	if got := ids(out); len(got) != 1 || got[0] != "a" {
		t.Errorf("all-of services matched %v, want [a]", got)
	}
}

func TestFilterConjunction(t *testing.T) {
	out := Filter(sample, FilterState{
		Query:              "senior",
		Cities:             []string{"Cleveland", "Akron"},
		MinYearsExperience: 10,
	})
	if got := ids(out); len(got) != 1 || got[0] != "a" {
		t.Errorf("conjunction matched %v, want [a]", got)
	}
}

func TestFilterIsPure(t *testing.T) {
	before := len(sample)
	Filter(sample, FilterState{Query: "downsizing"})
	Filter(sample, FilterState{Cities: []string{"Akron"}})
	if len(sample) != before {
		t.Error("Filter mutated its input")
	}

	first := ids(Filter(sample, FilterState{MinYearsExperience: 10}))
	second := ids(Filter(sample, FilterState{MinYearsExperience: 10}))
	if len(first) != len(second) {
		t.Error("Filter is not deterministic for equal inputs")
	}
}

func TestDirectoryEntriesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Directory {
		if r.ID == "" || r.Name == "" || r.City == "" {
			t.Errorf("directory entry %+v missing required fields", r)
		}
		if seen[r.ID] {
			t.Errorf("duplicate directory id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Type != "individual" && r.Type != "firm" {
			t.Errorf("entry %q has type %q, want individual or firm", r.ID, r.Type)
		}
	}
}
