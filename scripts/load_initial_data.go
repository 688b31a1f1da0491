package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/Matias222/d-melo/internal/config"
	"github.com/Matias222/d-melo/internal/database"
	"github.com/Matias222/d-melo/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type UserData struct {
	Handle      string `yaml:"github_handle"`
	Email       string `yaml:"email,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"`
	IsActive    bool   `yaml:"is_active"`
}

type TeamData struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	OwnerHandle string           `yaml:"owner_handle"`
	Members     []TeamMemberData `yaml:"members,omitempty"`
}

type TeamMemberData struct {
	Handle string `yaml:"github_handle"`
	Role   string `yaml:"role"`
}

type SessionData struct {
	Title         string                 `yaml:"title"`
	Description   string                 `yaml:"description,omitempty"`
	SessionData   string                 `yaml:"session_data"`
	AssistantType string                 `yaml:"assistant_type,omitempty"`
	Repo          string                 `yaml:"repo,omitempty"`
	OwnerHandle   string                 `yaml:"owner_handle"`
	IsPublic      bool                   `yaml:"is_public"`
	SharedWith    []string               `yaml:"shared_with,omitempty"`
	Metadata      map[string]interface{} `yaml:"metadata,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type SessionsFile struct {
	Sessions []SessionData `yaml:"sessions"`
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
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	sessions, err := loadSessions(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	// Create users first
	userCreated := 0
	for _, userData := range users {
		_, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Handle, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create teams with their rosters
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create sessions and their team shares
	sessionCreated := 0
	for _, sessionData := range sessions {
		_, created, err := createSession(db, sessionData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create session %s: %v", sessionData.Title, err)
			continue // Continue with other sessions
		}
		if created {
			sessionCreated++
		}
	}
	log.Printf("📋 Sessions: %d created, %d total", sessionCreated, len(sessions))

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

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadSessions(dataDir string) ([]SessionData, error) {
	var allSessions []SessionData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "sessions") {
			var file SessionsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allSessions = append(allSessions, file.Sessions...)
		}
		return nil
	})

	return allSessions, err
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("github_handle = ?", userData.Handle).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Handle:      userData.Handle,
				Email:       userData.Email,
				DisplayName: userData.DisplayName,
				IsActive:    userData.IsActive,
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

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ? AND owner_handle = ?", teamData.Name, teamData.OwnerHandle).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:        teamData.Name,
				Description: teamData.Description,
				OwnerHandle: teamData.OwnerHandle,
			}

			// Team row and owner membership are created together
			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&team).Error; err != nil {
					return err
				}
				ownerMembership := models.TeamMembership{
					TeamID:     team.ID,
					UserHandle: teamData.OwnerHandle,
					Role:       models.TeamRoleOwner,
				}
				return tx.Create(&ownerMembership).Error
			})
			if err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Enroll the rest of the roster
			for _, memberData := range teamData.Members {
				if memberData.Handle == teamData.OwnerHandle {
					continue
				}
				role := models.TeamRoleMember
				if memberData.Role != "" {
					role = models.TeamRole(memberData.Role)
				}
				membership := models.TeamMembership{
					TeamID:     team.ID,
					UserHandle: memberData.Handle,
					Role:       role,
				}
				if err := db.Where("team_id = ? AND user_handle = ?", team.ID, memberData.Handle).
					FirstOrCreate(&membership, membership).Error; err != nil {
					log.Printf("⚠️  Warning: failed to enroll %s in team %s: %v", memberData.Handle, teamData.Name, err)
				}
			}

			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createSession(db *gorm.DB, sessionData SessionData, teamMap map[string]*models.Team) (*models.Session, bool, error) {
	var session models.Session
	if err := db.Where("title = ? AND owner_handle = ?", sessionData.Title, sessionData.OwnerHandle).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(sessionData.Metadata)

			assistantType := "claude-code"
			if sessionData.AssistantType != "" {
				assistantType = sessionData.AssistantType
			}

			session = models.Session{
				Title:         sessionData.Title,
				Description:   sessionData.Description,
				SessionData:   sessionData.SessionData,
				AssistantType: assistantType,
				Repo:          sessionData.Repo,
				Metadata:      metadataJSON,
				OwnerHandle:   sessionData.OwnerHandle,
				IsPublic:      sessionData.IsPublic,
			}

			if err := db.Create(&session).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create session: %w", err)
			}

			// Share with the named teams
			for _, teamName := range sessionData.SharedWith {
				team := teamMap[teamName]
				if team == nil {
					log.Printf("⚠️  Warning: team %s not found for session %s", teamName, sessionData.Title)
					continue
				}
				share := models.TeamSession{
					TeamID:    team.ID,
					SessionID: session.ID,
				}
				if err := db.Where("team_id = ? AND session_id = ?", team.ID, session.ID).
					FirstOrCreate(&share, share).Error; err != nil {
					log.Printf("⚠️  Warning: failed to share session %s with team %s: %v", sessionData.Title, teamName, err)
				}
			}

			return &session, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query session: %w", err)
		}
	}

	return &session, false, nil // created = false (existing)
}
