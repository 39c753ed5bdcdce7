package main

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"portfolio-cms-backend/config"
	"portfolio-cms-backend/internal/database"
	"portfolio-cms-backend/internal/models"
)

// Seeds a demo account with a full profile graph for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password-123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password", zap.Error(err))
	}

	user := models.User{
		Email:        "demo@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("failed to create user", zap.Error(err))
	}

	profile := models.Profile{
		UserID:     user.ID,
		Name:       "Ada Demo",
		Title:      "Full Stack Developer",
		Telephone:  "+1 555 0100",
		Location:   "Amsterdam",
		Age:        32,
		Gender:     models.GenderWoman,
		About:      "Builds web things and writes about them.",
		WebsiteURL: "https://demo.example.com",
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Fatal("failed to create profile", zap.Error(err))
	}

	skills := []models.Skill{
		{Name: "go", Category: "backend"},
		{Name: "typescript", Category: "frontend"},
		{Name: "postgresql", Category: "database"},
		{Name: "docker", Category: "infra"},
		{Name: "redis", Category: "infra"},
	}
	for i := range skills {
		if err := db.Create(&skills[i]).Error; err != nil {
			log.Fatal("failed to create skill", zap.Error(err))
		}
	}

	for i, level := range []int{9, 7, 8} {
		link := models.ProfileSkill{
			ProfileID:        profile.ID,
			SkillID:          skills[i].ID,
			ProficiencyLevel: level,
		}
		if err := db.Create(&link).Error; err != nil {
			log.Fatal("failed to link skill", zap.Error(err))
		}
	}

	contacts := []models.Contact{
		{ProfileID: profile.ID, Type: "email", Value: "demo@example.com", Icon: "mail"},
		{ProfileID: profile.ID, Type: "linkedin", Value: "https://linkedin.com/in/demo", Icon: "linkedin"},
	}
	for i := range contacts {
		if err := db.Create(&contacts[i]).Error; err != nil {
			log.Fatal("failed to create contact", zap.Error(err))
		}
	}

	project := models.Project{
		ProfileID:   profile.ID,
		Title:       "Portfolio CMS",
		Slug:        "portfolio-cms",
		Description: "The backend serving this very portfolio.",
		Content:     "A REST API with ownership-scoped CRUD and JWT auth.",
		GithubURL:   "https://github.com/demo/portfolio-cms",
		IsFeatured:  true,
	}
	if err := db.Create(&project).Error; err != nil {
		log.Fatal("failed to create project", zap.Error(err))
	}
	for _, s := range skills[:2] {
		link := models.ProjectSkill{ProjectID: project.ID, SkillID: s.ID}
		if err := db.Create(&link).Error; err != nil {
			log.Fatal("failed to link project skill", zap.Error(err))
		}
	}

	tag := models.Tag{Name: "golang"}
	if err := db.Create(&tag).Error; err != nil {
		log.Fatal("failed to create tag", zap.Error(err))
	}

	now := time.Now()
	post := models.BlogPost{
		ProfileID:   profile.ID,
		Title:       "Shipping a portfolio backend",
		Slug:        "shipping-a-portfolio-backend",
		Content:     "Notes from building a small CMS.",
		Excerpt:     "Notes from building a small CMS.",
		Status:      models.PostPublished,
		PublishedAt: &now,
	}
	if err := db.Create(&post).Error; err != nil {
		log.Fatal("failed to create blog post", zap.Error(err))
	}
	postTag := models.BlogPostTag{PostID: post.ID, TagID: tag.ID}
	if err := db.Create(&postTag).Error; err != nil {
		log.Fatal("failed to tag blog post", zap.Error(err))
	}

	log.Info("seed complete",
		zap.String("email", user.Email),
		zap.String("password", "demo-password-123"))
}
