package catalog

import (
	"strings"

	"github.com/kakapo/kakapo/errors"
)

// Kind is the type of a catalog entity.
type Kind int

const (
	KindTable Kind = iota
	KindView
	KindQuery
	KindScript
)

// AllKinds lists every kind in catalog order.
var AllKinds = []Kind{KindTable, KindView, KindQuery, KindScript}

var kindNames = [...]struct {
	singular, plural, label string
}{
	KindTable:  {"table", "tables", "Tables"},
	KindView:   {"view", "views", "Views"},
	KindQuery:  {"query", "queries", "Queries"},
	KindScript: {"script", "scripts", "Scripts"},
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool {
	return k >= KindTable && k <= KindScript
}

// String returns the singular name, e.g. "table".
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k].singular
}

// Label returns the plural display label, e.g. "Tables".
func (k Kind) Label() string {
	if !k.Valid() {
		return "Unknown"
	}
	return kindNames[k].label
}

// Dir returns the directory a DirSource reads this kind from.
func (k Kind) Dir() string {
	if !k.Valid() {
		return ""
	}
	return kindNames[k].plural
}

// ParseKind accepts singular or plural names in any case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllKinds {
		if name == kindNames[k].singular || name == kindNames[k].plural {
			return k, nil
		}
	}
	return 0, errors.UnknownKind(s)
}

// ParseKinds parses each name, failing on the first unknown one. Repeats
// are dropped.
func ParseKinds(names []string) ([]Kind, error) {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, name := range names {
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// MarshalText encodes the singular name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a singular or plural name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
