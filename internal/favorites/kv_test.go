package favorites

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKVContract checks the load-on-start / save-on-change behaviour every backend shares.
func testKVContract(t *testing.T, kv KVStore) {
	ctx := context.Background()

	set, found, err := kv.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, set.Len())

	require.NoError(t, kv.Save(ctx, "favorites", NewSet(3, 1)))
	require.NoError(t, kv.Save(ctx, "favorites:other", NewSet(7)))

	set, found, err = kv.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int64{3, 1}, set.IDs())

	require.NoError(t, kv.Save(ctx, "favorites", Set{}))
	set, found, err = kv.Load(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, found, "an emptied set is still saved")
	assert.Equal(t, 0, set.Len())

	set, _, err = kv.Load(ctx, "favorites:other")
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, set.IDs())
}

func Test_MemoryStore(t *testing.T) {
	testKVContract(t, NewMemoryStore())
}

func Test_SQLiteStore_InMemory(t *testing.T) {
	kv, err := NewInMemorySQLiteStore()
	require.NoError(t, err)
	defer kv.Close()
	testKVContract(t, kv)
}

func Test_SQLiteStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "favorites.db")

	kv, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, kv.Save(ctx, DefaultKey, NewSet(2, 4)))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	set, found, err := reopened.Load(ctx, DefaultKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int64{2, 4}, set.IDs())
}

func Test_sqliteDSN(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		expectName string
		expectTx   string
	}{
		{name: "plain path", path: "/data/favorites.db", expectName: "/data/favorites.db"},
		{name: "existing parameters", path: "file:favorites.db?_txlock=immediate", expectName: "file:favorites.db", expectTx: "immediate"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			dsn, err := sqliteDSN(tc.path)
			// then
			require.NoError(t, err)
			name, rawQuery, found := strings.Cut(dsn, "?")
			require.True(t, found)
			assert.Equal(t, tc.expectName, name)
			query, err := url.ParseQuery(rawQuery)
			require.NoError(t, err)
			assert.Equal(t, []string{"journal_mode(WAL)", "busy_timeout(5000)"}, query["_pragma"])
			assert.Equal(t, tc.expectTx, query.Get("_txlock"))
		})
	}

	_, err := sqliteDSN("favorites.db?bad=%zz")
	assert.Error(t, err)
}

func Test_SQLiteStore_PathWithParameters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db") + "?_txlock=immediate"
	kv, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer kv.Close()
	testKVContract(t, kv)
}
