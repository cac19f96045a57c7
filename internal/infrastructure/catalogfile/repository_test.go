package catalogfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/backend/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRepository_Load(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	t.Run("loads a valid catalog", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "products.json", `[
			{
				"id": "sud_1l",
				"name": "Süd 1L",
				"category": "Süd məhsulları",
				"image": "https://cdn.example.com/sud.jpg",
				"stores": [
					{"name": "Bravo", "price": 2.5, "inStock": true},
					{"name": "Oba", "price": 2.3, "discount": 10, "inStock": false}
				]
			}
		]`)

		products, err := repo.Load(ctx, path)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Süd 1L", products[0].Name)
		require.Len(t, products[0].Stores, 2)
		assert.Equal(t, 2.3, products[0].Stores[1].Price)
		assert.Equal(t, 10.0, products[0].Stores[1].Discount)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.Load(ctx, filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
	})

	t.Run("non-array JSON", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "products.json", `{"name": "not an array"}`)
		_, err := repo.Load(ctx, path)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("malformed record rejects the whole load", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "products.json", `[
			{"name": "Ok", "category": "X", "stores": [{"name": "Bravo", "price": 1}]},
			{"name": "Broken", "category": "X", "stores": []}
		]`)
		products, err := repo.Load(ctx, path)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		assert.Nil(t, products)
	})
}

func TestRepository_SaveMerged(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	raw := []domain.Product{
		{Name: "Süd 1L", Category: "Süd məhsulları", Stores: []domain.StoreOffer{{Name: "Bravo", Price: 2.5}}},
		{Name: "süd 1l", Category: "süd məhsulları", Stores: []domain.StoreOffer{{Name: "Oba", Price: 2.3}}},
	}
	merged := []domain.Product{
		{ID: "sud_1l_sud_m_hsullar_abc123def456", Name: "Süd 1L", Category: "Süd məhsulları", Stores: []domain.StoreOffer{
			{Name: "Bravo", Price: 2.5}, {Name: "Oba", Price: 2.3},
		}},
	}

	t.Run("writes both files", func(t *testing.T) {
		dir := t.TempDir()
		backupPath := filepath.Join(dir, "products-backup.json")
		outputPath := filepath.Join(dir, "products-merged.json")

		require.NoError(t, repo.SaveMerged(ctx, raw, merged, backupPath, outputPath))

		var backup []domain.Product
		data, err := os.ReadFile(backupPath)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &backup))
		assert.Len(t, backup, 2)

		var output []domain.Product
		data, err = os.ReadFile(outputPath)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &output))
		require.Len(t, output, 1)
		assert.Len(t, output[0].Stores, 2)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, repo.SaveMerged(ctx, raw, merged,
			filepath.Join(dir, "backup.json"), filepath.Join(dir, "merged.json")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := t.TempDir()
		backupPath := filepath.Join(dir, "data", "backup.json")
		outputPath := filepath.Join(dir, "data", "merged.json")

		require.NoError(t, repo.SaveMerged(ctx, raw, merged, backupPath, outputPath))
		_, err := os.Stat(outputPath)
		assert.NoError(t, err)
	})

	t.Run("roundtrips through Load after merge", func(t *testing.T) {
		dir := t.TempDir()
		outputPath := filepath.Join(dir, "merged.json")
		require.NoError(t, repo.SaveMerged(ctx, raw, merged, filepath.Join(dir, "backup.json"), outputPath))

		loaded, err := repo.Load(ctx, outputPath)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, merged[0].ID, loaded[0].ID)
	})
}
