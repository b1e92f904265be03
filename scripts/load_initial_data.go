package main

import (
	"quiz-platform-backend/internal/auth"
	"quiz-platform-backend/internal/config"
	"quiz-platform-backend/internal/database"
	"quiz-platform-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type CompanyData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	IsVisible   *bool  `yaml:"is_visible,omitempty"`
	OwnerEmail  string `yaml:"owner_email"`
}

type MembershipData struct {
	UserEmail   string `yaml:"user_email"`
	CompanyName string `yaml:"company_name"`
	Status      string `yaml:"status"`
}

type AnswerData struct {
	Title     string `yaml:"title"`
	IsCorrect bool   `yaml:"is_correct,omitempty"`
}

type QuestionData struct {
	Title   string       `yaml:"title"`
	Answers []AnswerData `yaml:"answers"`
}

type QuizData struct {
	Title       string         `yaml:"title"`
	CompanyName string         `yaml:"company_name"`
	Description string         `yaml:"description"`
	Questions   []QuestionData `yaml:"questions"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type QuizzesFile struct {
	Quizzes []QuizData `yaml:"quizzes"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	companies, err := loadCompanies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	quizzes, err := loadQuizzes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load quizzes: %w", err)
	}

	// Create users first
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create companies, each seeded with its owner's ledger row
	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, companyData := range companies {
		company, created, err := createCompany(db, companyData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create company %s: %w", companyData.Name, err)
		}
		companyMap[companyData.Name] = company
		if created {
			companyCreated++
		}
	}
	log.Printf("📋 Companies: %d created, %d total", companyCreated, len(companies))

	// Create additional membership rows
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, userMap, companyMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.UserEmail, membershipData.CompanyName, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create quizzes with their questions and answers
	quizCreated := 0
	for _, quizData := range quizzes {
		_, created, err := createQuiz(db, quizData, companyMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create quiz %s: %v", quizData.Title, err)
			continue // Continue with other quizzes
		}
		if created {
			quizCreated++
		}
	}
	log.Printf("📋 Quizzes: %d created, %d total", quizCreated, len(quizzes))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadCompanies(dataDir string) ([]CompanyData, error) {
	var allCompanies []CompanyData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "companies") {
			var file CompaniesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allCompanies = append(allCompanies, file.Companies...)
		}
		return nil
	})

	return allCompanies, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMemberships = append(allMemberships, file.Memberships...)
		}
		return nil
	})

	return allMemberships, err
}

func loadQuizzes(dataDir string) ([]QuizData, error) {
	var allQuizzes []QuizData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "quizzes") {
			var file QuizzesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allQuizzes = append(allQuizzes, file.Quizzes...)
		}
		return nil
	})

	return allQuizzes, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := auth.HashPassword(userData.Password)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Username: userData.Username,
				Email:    userData.Email,
				Password: hashed,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createCompany(db *gorm.DB, companyData CompanyData, userMap map[string]*models.User) (*models.Company, bool, error) {
	owner := userMap[companyData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for company %s", companyData.OwnerEmail, companyData.Name)
	}

	var company models.Company
	if err := db.Where("name = ?", companyData.Name).First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			isVisible := true
			if companyData.IsVisible != nil {
				isVisible = *companyData.IsVisible
			}

			company = models.Company{
				Name:        companyData.Name,
				Description: companyData.Description,
				IsVisible:   isVisible,
			}

			// The company and its owner row land together
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&company).Error; err != nil {
					return err
				}
				return tx.Create(&models.Membership{
					UserID:    owner.ID,
					CompanyID: company.ID,
					Status:    models.StatusOwner,
				}).Error
			})
			if err != nil {
				return nil, false, fmt.Errorf("failed to create company: %w", err)
			}
			return &company, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query company: %w", err)
		}
	}

	return &company, false, nil // created = false (existing)
}

func createMembership(db *gorm.DB, membershipData MembershipData, userMap map[string]*models.User, companyMap map[string]*models.Company) (*models.Membership, bool, error) {
	user := userMap[membershipData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found", membershipData.UserEmail)
	}
	company := companyMap[membershipData.CompanyName]
	if company == nil {
		return nil, false, fmt.Errorf("company %s not found", membershipData.CompanyName)
	}
	status := models.MembershipStatus(membershipData.Status)
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid membership status %q", membershipData.Status)
	}

	var membership models.Membership
	if err := db.Where("user_id = ? AND company_id = ?", user.ID, company.ID).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			membership = models.Membership{
				UserID:    user.ID,
				CompanyID: company.ID,
				Status:    status,
			}

			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create membership: %w", err)
			}
			return &membership, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query membership: %w", err)
		}
	}

	return &membership, false, nil // created = false (existing)
}

func createQuiz(db *gorm.DB, quizData QuizData, companyMap map[string]*models.Company) (*models.Quiz, bool, error) {
	company := companyMap[quizData.CompanyName]
	if company == nil {
		return nil, false, fmt.Errorf("company %s not found for quiz %s", quizData.CompanyName, quizData.Title)
	}

	var quiz models.Quiz
	if err := db.Where("title = ? AND company_id = ?", quizData.Title, company.ID).First(&quiz).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			quiz = models.Quiz{
				Title:       quizData.Title,
				Description: quizData.Description,
				CompanyID:   company.ID,
			}
			for _, questionData := range quizData.Questions {
				question := models.Question{Title: questionData.Title}
				for _, answerData := range questionData.Answers {
					question.Answers = append(question.Answers, models.Answer{
						Title:     answerData.Title,
						IsCorrect: answerData.IsCorrect,
					})
				}
				quiz.Questions = append(quiz.Questions, question)
			}

			if err := db.Create(&quiz).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create quiz: %w", err)
			}
			return &quiz, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query quiz: %w", err)
		}
	}

	return &quiz, false, nil // created = false (existing)
}
