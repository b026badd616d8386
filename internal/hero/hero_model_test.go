package hero

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestAutoMigrateCreatesHeroesTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Hero{}))

	// The affinity join names this table in raw SQL; the override must
	// keep the migrated name in sync with it.
	assert.True(t, db.Migrator().HasTable("heroes"))

	var count int64
	assert.NoError(t, db.Table("heroes").Count(&count).Error)
}
