package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample() []Entity {
	es := []Entity{
		newEntity(KindScript, SourceFiles, "backup", "scripts/backup.sh"),
		newEntity(KindTable, SourceFiles, "users", "tables/users.yml"),
		newEntity(KindQuery, SourceFiles, "active_users", "queries/active_users.sql"),
		newEntity(KindView, SourceSQLite, "recent", "app.db/recent"),
		newEntity(KindTable, SourceSQLite, "orders", "app.db/orders"),
	}
	Sort(es)
	return es
}

func names(es []Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Name
	}
	return out
}

func TestSortByKindThenName(t *testing.T) {
	assert.Equal(t, []string{"orders", "users", "recent", "active_users", "backup"}, names(sample()))
}

func TestFilterPreservesSelectionOrder(t *testing.T) {
	es := sample()

	assert.Equal(t, []string{"recent", "orders", "users"}, names(Filter(es, []Kind{KindView, KindTable})))
	assert.Equal(t, []string{"backup", "active_users"}, names(Filter(es, []Kind{KindScript, KindQuery})))
}

func TestFilterEmptyAndRepeated(t *testing.T) {
	es := sample()
	assert.Empty(t, Filter(es, nil))
	assert.Equal(t, []string{"recent"}, names(Filter(es, []Kind{KindView, KindView})))
}

func TestEntityIDStable(t *testing.T) {
	a := EntityID(KindTable, SourceFiles, "users")
	assert.Equal(t, a, EntityID(KindTable, SourceFiles, "users"))
	assert.NotEqual(t, a, EntityID(KindView, SourceFiles, "users"))
	assert.NotEqual(t, a, EntityID(KindTable, SourceSQLite, "users"))
	assert.Len(t, a, 36)
}

func TestGroupByKind(t *testing.T) {
	groups := GroupByKind(sample())
	assert.Len(t, groups[KindTable], 2)
	assert.Len(t, groups[KindScript], 1)
}
