package annotations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/paperread/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/annotations.db"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Article{}, &entities.Annotation{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db, NewRepository(db)
}

func TestRepository_ReplaceAnnotations(t *testing.T) {
	t.Run("stores annotations per user", func(t *testing.T) {
		_, repo := setupTestDB(t)

		_, err := repo.ReplaceAnnotations(1, "UserA", []entities.Annotation{
			{Word: "important", Color: "#28a745"},
			{Word: "technology", Color: "#ffc107"},
		})
		require.NoError(t, err)
		_, err = repo.ReplaceAnnotations(1, "UserB", []entities.Annotation{
			{Word: "important", Color: "#ff5722"},
		})
		require.NoError(t, err)

		userA, err := repo.GetAnnotations(1, "UserA")
		require.NoError(t, err)
		require.Len(t, userA, 2)
		assert.Equal(t, "important", userA[0].Word)
		assert.Equal(t, "#28a745", userA[0].Color)

		userB, err := repo.GetAnnotations(1, "UserB")
		require.NoError(t, err)
		require.Len(t, userB, 1)
		assert.Equal(t, "#ff5722", userB[0].Color)
	})

	t.Run("replaces the previous set", func(t *testing.T) {
		_, repo := setupTestDB(t)

		_, err := repo.ReplaceAnnotations(1, "UserA", []entities.Annotation{{Word: "old", Color: "red"}})
		require.NoError(t, err)
		_, err = repo.ReplaceAnnotations(1, "UserA", []entities.Annotation{{Word: "new", Color: "blue"}})
		require.NoError(t, err)

		got, err := repo.GetAnnotations(1, "UserA")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "new", got[0].Word)
	})

	t.Run("drops blank and duplicate words", func(t *testing.T) {
		_, repo := setupTestDB(t)

		saved, err := repo.ReplaceAnnotations(2, "UserA", []entities.Annotation{
			{Word: " ", Color: "red"},
			{Word: "word", Color: "red"},
			{Word: "word ", Color: "green"},
		})
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "green", saved[0].Color)

		count, err := repo.CountAnnotations(2, "UserA")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("empty set clears annotations", func(t *testing.T) {
		_, repo := setupTestDB(t)

		_, err := repo.ReplaceAnnotations(3, "UserA", []entities.Annotation{{Word: "w", Color: "c"}})
		require.NoError(t, err)
		saved, err := repo.ReplaceAnnotations(3, "UserA", nil)
		require.NoError(t, err)
		assert.Empty(t, saved)

		got, err := repo.GetAnnotations(3, "UserA")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
