package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-cms-backend/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.ProfileSkill{},
		&models.Project{},
		&models.ProjectSkill{},
		&models.BlogPost{},
		&models.Tag{},
		&models.BlogPostTag{},
		&models.Contact{},
		&models.File{},
	))
	return db
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// seedAccount creates a user plus profile and returns both ids.
func seedAccount(t *testing.T, db *gorm.DB, email string) (uuid.UUID, uuid.UUID) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Email: email, PasswordHash: string(hash), Role: models.RoleAdmin}
	require.NoError(t, db.Create(&user).Error)

	profile := models.Profile{
		UserID:   user.ID,
		Name:     "Test Person",
		Title:    "Developer",
		Location: "Testville",
		Age:      30,
		Gender:   models.GenderOther,
	}
	require.NoError(t, db.Create(&profile).Error)
	return user.ID, profile.ID
}

func seedProject(t *testing.T, db *gorm.DB, profileID uuid.UUID, title, slug string) models.Project {
	t.Helper()
	project := models.Project{ProfileID: profileID, Title: title, Slug: slug}
	require.NoError(t, db.Create(&project).Error)
	return project
}

func seedSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name, Category: "test"}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func seedTag(t *testing.T, db *gorm.DB, name string) models.Tag {
	t.Helper()
	tag := models.Tag{Name: name}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func ctx() context.Context {
	return context.Background()
}
