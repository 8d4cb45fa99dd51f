package catalog

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Source names recorded on entities.
const (
	SourceFiles    = "files"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// entityNamespace scopes entity IDs.
var entityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kakapo:catalog"))

// Entity is one listed table, view, query or script. Contents are never read
// beyond the metadata needed for display.
type Entity struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Modified    time.Time `json:"modified,omitempty"`
}

// EntityID returns the stable ID for kind, source and name.
func EntityID(kind Kind, source, name string) string {
	return uuid.NewSHA1(entityNamespace, []byte(kind.String()+":"+source+":"+name)).String()
}

func newEntity(kind Kind, source, name, location string) Entity {
	return Entity{
		ID:       EntityID(kind, source, name),
		Kind:     kind,
		Name:     name,
		Source:   source,
		Location: location,
	}
}

// Sort orders entities by kind, then name, then location.
func Sort(entities []Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		a, b := entities[i], entities[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Location < b.Location
	})
}

// Filter returns the entities whose kind is in kinds, grouped in the order
// of kinds. Each group keeps the input order. Repeated kinds are ignored.
func Filter(entities []Entity, kinds []Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	groups := make(map[Kind][]Entity, len(kinds))
	for _, e := range entities {
		groups[e.Kind] = append(groups[e.Kind], e)
	}

	var out []Entity
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, groups[k]...)
	}
	return out
}

// GroupByKind splits entities into a map keyed by kind.
func GroupByKind(entities []Entity) map[Kind][]Entity {
	groups := make(map[Kind][]Entity)
	for _, e := range entities {
		groups[e.Kind] = append(groups[e.Kind], e)
	}
	return groups
}
