package main

import (
	"fmt"
	"log"
	"os"

	"broker-crm-backend/internal/config"
	"broker-crm-backend/internal/database"
	"broker-crm-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed file structures matching seed/brokers.yaml
type BrokerData struct {
	Name                    string           `yaml:"name"`
	Email                   string           `yaml:"email"`
	Phone                   string           `yaml:"phone,omitempty"`
	CompanyName             string           `yaml:"company_name,omitempty"`
	LeadDistributionEnabled bool             `yaml:"lead_distribution_enabled"`
	TeamMembers             []TeamMemberData `yaml:"team_members,omitempty"`
	Allocations             []AllocationData `yaml:"allocations,omitempty"`
}

type TeamMemberData struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Phone string `yaml:"phone,omitempty"`
}

type AllocationData struct {
	MemberEmail string `yaml:"member_email"`
	Percentage  int    `yaml:"percentage"`
}

type SeedFile struct {
	Brokers []BrokerData `yaml:"brokers"`
}

func main() {
	path := "seed/brokers.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	for _, data := range seed.Brokers {
		if err := loadBroker(db, data); err != nil {
			log.Fatalf("failed to load broker %s: %v", data.Email, err)
		}
	}

	log.Printf("Loaded %d broker(s) from %s", len(seed.Brokers), path)
}

func loadBroker(db *gorm.DB, data BrokerData) error {
	var broker models.Broker
	err := db.Where("email = ?", data.Email).First(&broker).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		broker = models.Broker{
			Name:                    data.Name,
			Email:                   data.Email,
			Phone:                   data.Phone,
			CompanyName:             data.CompanyName,
			LeadDistributionEnabled: data.LeadDistributionEnabled,
		}
		if err := db.Create(&broker).Error; err != nil {
			return fmt.Errorf("create broker: %w", err)
		}
		log.Printf("Created broker %s", broker.Email)
	case err != nil:
		return fmt.Errorf("lookup broker: %w", err)
	default:
		log.Printf("Broker %s already exists, skipping create", broker.Email)
	}

	// user id per member email so allocations can reference members
	memberIDs := map[string]uuid.UUID{}
	for _, m := range data.TeamMembers {
		var existing models.TeamMember
		err := db.Where("email = ? AND broker_id = ?", m.Email, broker.ID).First(&existing).Error
		if err == nil {
			memberIDs[m.Email] = existing.UserID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("lookup team member: %w", err)
		}

		member := models.TeamMember{
			BrokerID: broker.ID,
			UserID:   uuid.New(),
			Name:     m.Name,
			Email:    m.Email,
			Phone:    m.Phone,
		}
		if err := db.Create(&member).Error; err != nil {
			return fmt.Errorf("create team member: %w", err)
		}
		memberIDs[m.Email] = member.UserID
		log.Printf("Created team member %s for broker %s", m.Email, broker.Email)
	}

	if len(data.Allocations) == 0 {
		return nil
	}

	sum := 0
	allocations := make([]models.LeadDistributionAllocation, 0, len(data.Allocations))
	for _, a := range data.Allocations {
		if a.Percentage == 0 {
			continue
		}
		userID, ok := memberIDs[a.MemberEmail]
		if !ok {
			if a.MemberEmail == broker.Email {
				userID = broker.ID
			} else {
				return fmt.Errorf("allocation references unknown member %s", a.MemberEmail)
			}
		}
		name := a.MemberEmail
		for _, m := range data.TeamMembers {
			if m.Email == a.MemberEmail {
				name = m.Name
			}
		}
		allocations = append(allocations, models.LeadDistributionAllocation{
			BrokerID:   broker.ID,
			UserID:     userID,
			UserName:   name,
			Percentage: a.Percentage,
		})
		sum += a.Percentage
	}
	if sum != 100 {
		return fmt.Errorf("allocation percentages for %s sum to %d, expected 100", broker.Email, sum)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("broker_id = ?", broker.ID).Delete(&models.LeadDistributionAllocation{}).Error; err != nil {
			return err
		}
		return tx.Create(&allocations).Error
	})
}
