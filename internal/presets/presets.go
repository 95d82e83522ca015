// Package presets provides the common-food shortcuts offered next to the
// add form.
package presets

import (
	"sort"
	"strings"

	"github.com/theirongolddev/gizi/internal/model"
)

// Preset is a named food with reference values and a typical portion.
type Preset struct {
	Slug    string
	Name    string
	Portion float64 // grams
	Per100  model.Per100g
}

// builtin holds the stock shortcuts. Values are per 100 g.
var builtin = []Preset{
	{Slug: "rice", Name: "Nasi Putih", Portion: 150, Per100: model.Per100g{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}},
	{Slug: "chicken", Name: "Dada Ayam", Portion: 100, Per100: model.Per100g{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6}},
	{Slug: "egg", Name: "Telur", Portion: 50, Per100: model.Per100g{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11}},
	{Slug: "banana", Name: "Pisang", Portion: 120, Per100: model.Per100g{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3}},
	{Slug: "tempeh", Name: "Tempe", Portion: 50, Per100: model.Per100g{Calories: 193, Protein: 19, Carbs: 9.4, Fat: 11}},
	{Slug: "tofu", Name: "Tahu", Portion: 100, Per100: model.Per100g{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8}},
	{Slug: "bread", Name: "Roti Tawar", Portion: 30, Per100: model.Per100g{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2}},
	{Slug: "milk", Name: "Susu", Portion: 250, Per100: model.Per100g{Calories: 42, Protein: 3.4, Carbs: 5, Fat: 1}},
}

// Set is an ordered, slug-indexed collection of presets.
type Set struct {
	items []Preset
}

// Builtin returns the stock presets.
func Builtin() *Set {
	s := &Set{items: make([]Preset, len(builtin))}
	copy(s.items, builtin)
	return s
}

// Merge returns a new set where overrides replace presets with the same
// slug and new slugs are appended in sorted order.
func (s *Set) Merge(overrides []Preset) *Set {
	out := &Set{items: make([]Preset, len(s.items))}
	copy(out.items, s.items)

	var extra []Preset
	seen := make(map[string]int)
	for _, o := range overrides {
		o.Slug = Normalize(o.Slug)
		if o.Slug == "" {
			continue
		}
		if i := out.index(o.Slug); i >= 0 {
			out.items[i] = o
			continue
		}
		// Repeated new slugs: the last one wins.
		if i, ok := seen[o.Slug]; ok {
			extra[i] = o
			continue
		}
		seen[o.Slug] = len(extra)
		extra = append(extra, o)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Slug < extra[j].Slug })
	out.items = append(out.items, extra...)
	return out
}

// All returns the presets in display order.
func (s *Set) All() []Preset {
	out := make([]Preset, len(s.items))
	copy(out, s.items)
	return out
}

// Lookup finds a preset by slug, case-insensitively.
func (s *Set) Lookup(slug string) (Preset, bool) {
	if i := s.index(Normalize(slug)); i >= 0 {
		return s.items[i], true
	}
	return Preset{}, false
}

// Slugs lists every slug in display order.
func (s *Set) Slugs() []string {
	out := make([]string, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p.Slug)
	}
	return out
}

func (s *Set) index(slug string) int {
	for i, p := range s.items {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}

// Normalize lowercases and trims a slug.
func Normalize(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
