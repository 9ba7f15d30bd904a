package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"Id"`
	Name string `json:"Name"`
}

func TestOpenJSONFile_CreatesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "items.json")

	f, err := OpenJSONFile[record](path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	items, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOpenJSONFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Id":7,"Name":"seven"}]`), 0o644))

	f, err := OpenJSONFile[record](path)
	require.NoError(t, err)

	items, err := f.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, record{ID: 7, Name: "seven"}, items[0])
}

func TestJSONFile_NullAndBlankAreEmpty(t *testing.T) {
	for _, content := range []string{"null", "", "  \n"} {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		f, err := OpenJSONFile[record](path)
		require.NoError(t, err)
		items, err := f.Load()
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestJSONFile_SaveThenLoad(t *testing.T) {
	f, err := OpenJSONFile[record](filepath.Join(t.TempDir(), "items.json"))
	require.NoError(t, err)

	require.NoError(t, f.Save([]record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}))
	items, err := f.Load()
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, f.Save(nil))
	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONFile_UpdateAbortsOnError(t *testing.T) {
	f, err := OpenJSONFile[record](filepath.Join(t.TempDir(), "items.json"))
	require.NoError(t, err)
	require.NoError(t, f.Save([]record{{ID: 1}}))

	boom := errors.New("boom")
	err = f.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: 2}), boom
	})
	assert.ErrorIs(t, err, boom)

	items, err := f.Load()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestJSONFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f, err := OpenJSONFile[record](path)
	require.NoError(t, err)
	_, err = f.Load()
	assert.Error(t, err)
}

func TestConnect_CreatesAllFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Data")

	db, err := Connect(dir)
	require.NoError(t, err)
	require.NotNil(t, db.Orders)

	for _, name := range []string{UsersFile, OrdersFile, ReviewsFile, WishlistFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}
