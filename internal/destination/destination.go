package destination

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnknown is returned when a destination is not in the registry.
var ErrUnknown = errors.New("destination not supported")

// Destination is a city or district the store ships to. Zone classifies
// it into one of five distance bands (1 is closest); DistanceKm is a
// static road-proxy distance from the store.
type Destination struct {
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Zone       int     `json:"zone"`
	DistanceKm float64 `json:"-"`
}

// Normalize converts a free-form city name into a registry slug:
// lower-case, with internal whitespace runs collapsed to single hyphens.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), "-")
}

// Registry is an immutable slug -> destination lookup table.
type Registry struct {
	bySlug map[string]Destination
}

func NewRegistry(list []Destination) *Registry {
	m := make(map[string]Destination, len(list))
	for _, d := range list {
		m[d.Slug] = d
	}
	return &Registry{bySlug: m}
}

// Resolve normalizes raw and looks it up. Exact match only; no fuzzy
// matching or partial zone inference.
func (r *Registry) Resolve(raw string) (Destination, error) {
	d, ok := r.bySlug[Normalize(raw)]
	if !ok {
		return Destination{}, ErrUnknown
	}
	return d, nil
}

// All returns every destination sorted by display name, for the
// checkout address form.
func (r *Registry) All() []Destination {
	out := make([]Destination, 0, len(r.bySlug))
	for _, d := range r.bySlug {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
