package database

import (
	"fmt"
	"log"

	"shona_dict_backend/internal/config"
	"shona_dict_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, admin *config.AdminConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Word{},
		&model.WordSuggestion{},
		&model.Challenge{},
		&model.DailyChallenge{},
		&model.ChallengeCompletion{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedAdminUser(db, admin); err != nil {
		return nil, err
	}

	return db, nil
}

// seedAdminUser creates the back-office account when the users table is
// empty, so a fresh deployment is immediately manageable.
func seedAdminUser(db *gorm.DB, admin *config.AdminConfig) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email := admin.Email
	password := admin.Password
	if email == "" {
		email = "admin@shonadict.local"
	}
	if password == "" {
		password = "changeme"
		log.Println("WARNING: seeding admin user with default password, set SHONA_DICT_ADMIN_PASSWORD")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:     "Administrator",
		Email:    email,
		Password: string(hashed),
		Role:     model.Admin,
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}
	log.Printf("Seeded admin user %s", email)
	return nil
}
