// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kalluba/kalluba-funding/internal/logger"
	"github.com/kalluba/kalluba-funding/models"
	"github.com/shopspring/decimal"
)

// DemoPassword is the password of every seeded user account.
const DemoPassword = "Kalluba2025"

// PasswordHasher turns a plaintext password into a stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type seedProject struct {
	title, subtitle, description string
	goal, pledged                string
	durationDays                 int
	status                       models.ProjectStatus
	heroImageURL                 string
	creator, category            int // indexes into seedUsers and seedCategories
	backerCount                  int
	endsInDays                   int
}

type seedReward struct {
	title, amount, description string
	quantity                   int // 0 means unlimited
	shippingRegions            []string
}

type seedPledge struct {
	project, backer int // indexes into seedProjects and seedUsers
	reward          int // index into the project's seedRewards, -1 for none
	amount          string
}

var seedCategories = []models.Category{
	{Name: "Technology", Slug: "technology", IconName: "laptop-code", Color: "blue", Description: "Innovative tech solutions", ProjectCount: 142},
	{Name: "Art & Design", Slug: "art-design", IconName: "palette", Color: "purple", Description: "Creative and artistic projects", ProjectCount: 87},
	{Name: "Health", Slug: "health", IconName: "heartbeat", Color: "green", Description: "Healthcare and wellness initiatives", ProjectCount: 64},
	{Name: "Education", Slug: "education", IconName: "graduation-cap", Color: "indigo", Description: "Educational and learning projects", ProjectCount: 93},
	{Name: "Environment", Slug: "environment", IconName: "leaf", Color: "teal", Description: "Environmental sustainability projects", ProjectCount: 118},
	{Name: "Music", Slug: "music", IconName: "music", Color: "pink", Description: "Musical and audio projects", ProjectCount: 51},
}

var seedUsers = []models.User{
	{Name: "Kwame Asante", Email: "kwame@example.com", ProfileImageURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face", Bio: "Solar energy entrepreneur from Ghana", Role: models.RoleUser},
	{Name: "Amara Kone", Email: "amara@example.com", ProfileImageURL: "https://images.unsplash.com/photo-1494790108755-2616b612b0e5?w=100&h=100&fit=crop&crop=face", Bio: "Tech educator and developer", Role: models.RoleUser},
	{Name: "Jabari Ochieng", Email: "jabari@example.com", ProfileImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face", Bio: "AgriTech innovator from Kenya", Role: models.RoleUser},
	{Name: "Zara Mwangi", Email: "zara@example.com", ProfileImageURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face", Bio: "Healthcare technology specialist", Role: models.RoleUser},
	{Name: "Kofi Mensah", Email: "kofi@example.com", ProfileImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop&crop=face", Bio: "Environmental activist and engineer", Role: models.RoleAdmin},
}

var seedProjects = []seedProject{
	{
		title:        "Solar Power for Rural Communities",
		subtitle:     "Bringing clean energy to remote villages across Kenya",
		description:  "Our innovative solar power initiative aims to provide sustainable electricity to rural communities that have been overlooked by traditional power grids. By installing solar panels and battery storage systems, we're empowering families with clean, reliable energy for their homes, schools, and small businesses.",
		goal:         "60000",
		pledged:      "45230",
		durationDays: 45,
		status:       models.ProjectStatusLive,
		heroImageURL: "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=800&h=400&fit=crop",
		creator:      0, category: 0, backerCount: 158, endsInDays: 24,
	},
	{
		title:        "Coding Academy for Youth",
		subtitle:     "Empowering young minds with digital skills",
		description:  "A comprehensive coding bootcamp designed specifically for African youth aged 16-25. Our program covers web development, mobile app creation, and data science, providing students with the skills they need to thrive in the digital economy.",
		goal:         "50000",
		pledged:      "32450",
		durationDays: 60,
		status:       models.ProjectStatusLive,
		heroImageURL: "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=800&h=400&fit=crop",
		creator:      1, category: 1, backerCount: 203, endsInDays: 18,
	},
	{
		title:        "Smart Farming Solutions",
		subtitle:     "IoT-powered agriculture for sustainable growth",
		description:  "Revolutionary IoT sensors and mobile app system that helps farmers optimize crop yields while conserving water and reducing pesticide use. Our technology provides real-time data on soil moisture, temperature, and plant health.",
		goal:         "40000",
		pledged:      "28900",
		durationDays: 30,
		status:       models.ProjectStatusLive,
		heroImageURL: "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b?w=800&h=400&fit=crop",
		creator:      2, category: 4, backerCount: 89, endsInDays: 12,
	},
	{
		title:        "Mobile Health Clinic Network",
		subtitle:     "Bringing healthcare to underserved communities",
		description:  "A network of mobile health clinics equipped with telemedicine technology to provide primary healthcare services to rural and remote areas. Each clinic will be staffed by qualified healthcare professionals and connected to major hospitals via satellite internet.",
		goal:         "75000",
		pledged:      "21340",
		durationDays: 90,
		status:       models.ProjectStatusLive,
		heroImageURL: "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=800&h=400&fit=crop",
		creator:      3, category: 2, backerCount: 67, endsInDays: 35,
	},
	{
		title:        "African Music Preservation Project",
		subtitle:     "Digitizing traditional music for future generations",
		description:  "A comprehensive initiative to record, digitize, and preserve traditional African music from various ethnic groups. We're working with local musicians and cultural experts to create a digital archive that will be accessible to researchers and music lovers worldwide.",
		goal:         "25000",
		pledged:      "18750",
		durationDays: 60,
		status:       models.ProjectStatusLive,
		heroImageURL: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=400&fit=crop",
		creator:      4, category: 5, backerCount: 94, endsInDays: 28,
	},
	{
		title:        "Clean Water Initiative",
		subtitle:     "Providing safe drinking water through innovative filtration",
		description:  "Developing and distributing low-cost, high-efficiency water filtration systems for communities without access to clean water. Our bio-sand filters remove 99% of pathogens and can be manufactured locally using sustainable materials.",
		goal:         "35000",
		pledged:      "42100",
		durationDays: 45,
		status:       models.ProjectStatusFunded,
		heroImageURL: "https://images.unsplash.com/photo-1541544741938-0af808871cc0?w=800&h=400&fit=crop",
		creator:      0, category: 4, backerCount: 156, endsInDays: 7,
	},
}

// seedRewards holds the reward tiers per index into seedProjects.
var seedRewards = map[int][]seedReward{
	0: {
		{title: "Sun Supporter", amount: "25", description: "A thank-you postcard from the village and your name on our supporter wall."},
		{title: "Light a Home", amount: "150", description: "Funds one household solar kit. Includes a photo of the installation.", quantity: 200, shippingRegions: []string{"Worldwide"}},
		{title: "Power a School", amount: "1000", description: "Covers panels and storage for one classroom.", quantity: 20},
	},
	1: {
		{title: "Code Buddy", amount: "20", description: "Early access to the course materials."},
		{title: "Laptop Sponsor", amount: "400", description: "Provides a refurbished laptop for one student.", quantity: 50, shippingRegions: []string{"Africa", "Europe"}},
	},
	2: {
		{title: "Seed Backer", amount: "30", description: "Monthly field reports from partner farms."},
		{title: "Sensor Kit", amount: "250", description: "Sponsors a soil sensor kit for one smallholder farm.", quantity: 100},
	},
	3: {
		{title: "Clinic Friend", amount: "50", description: "Quarterly updates from the mobile clinics."},
	},
	4: {
		{title: "Listener", amount: "15", description: "Digital album of the first recordings.", shippingRegions: []string{"Worldwide"}},
		{title: "Archivist", amount: "120", description: "Signed vinyl pressing of selected recordings.", quantity: 300, shippingRegions: []string{"Worldwide"}},
	},
	5: {
		{title: "Drop of Hope", amount: "35", description: "A filter cartridge for one family."},
		{title: "Village Well", amount: "2500", description: "Co-funds a community filtration station.", quantity: 10},
	},
}

var seedPledges = []seedPledge{
	{project: 0, backer: 1, reward: 1, amount: "150"},
	{project: 0, backer: 3, reward: 0, amount: "25"},
	{project: 1, backer: 0, reward: -1, amount: "75"},
	{project: 4, backer: 2, reward: 1, amount: "120"},
	{project: 5, backer: 4, reward: 0, amount: "35"},
}

// Seed loads the demo catalog (six categories, five users, six projects)
// through the repository interfaces. It does nothing when categories
// already exist, so it is safe to call on every start.
//
// Reward tiers and a handful of completed pledges are attached afterwards;
// pledges do not change the seeded pledged totals.
//
// Projects are created and then updated to their seeded pledged amount,
// backer count and status. Every seeded user gets [DemoPassword].
func Seed(ctx context.Context, users UserRepository, categories CategoryRepository, projects ProjectRepository, hasher PasswordHasher, now time.Time) error {
	log := logger.FromContext(ctx)

	existing, err := categories.GetCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed: listing categories: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("categories", len(existing)).Msg("storage already populated, skipping seed")
		return nil
	}

	categoryIDs := make([]int64, 0, len(seedCategories))
	for _, c := range seedCategories {
		created, err := categories.CreateCategory(ctx, c)
		if err != nil {
			return fmt.Errorf("seed: creating category %q: %w", c.Slug, err)
		}
		categoryIDs = append(categoryIDs, created.ID)
	}

	passwordHash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("seed: hashing demo password: %w", err)
	}

	userIDs := make([]int64, 0, len(seedUsers))
	for _, u := range seedUsers {
		u.PasswordHash = passwordHash
		created, err := users.CreateUserWithPassword(ctx, u)
		if err != nil {
			return fmt.Errorf("seed: creating user %q: %w", u.Email, err)
		}
		userIDs = append(userIDs, created.ID)
	}

	projectIDs := make([]int64, 0, len(seedProjects))
	rewardIDs := make(map[int][]int64, len(seedRewards))
	for i, sp := range seedProjects {
		endDate := now.Add(time.Duration(sp.endsInDays) * 24 * time.Hour)

		created, err := projects.CreateProject(ctx, models.Project{
			Title:        sp.title,
			Subtitle:     sp.subtitle,
			Description:  sp.description,
			Goal:         decimal.RequireFromString(sp.goal),
			DurationDays: sp.durationDays,
			HeroImageURL: sp.heroImageURL,
			CreatorID:    userIDs[sp.creator],
			CategoryID:   categoryIDs[sp.category],
			EndDate:      &endDate,
		})
		if err != nil {
			return fmt.Errorf("seed: creating project %q: %w", sp.title, err)
		}

		pledged := decimal.RequireFromString(sp.pledged)
		status := sp.status
		backerCount := sp.backerCount
		if _, err := projects.UpdateProject(ctx, created.ID, models.ProjectUpdate{
			Pledged:     &pledged,
			Status:      &status,
			BackerCount: &backerCount,
		}); err != nil {
			return fmt.Errorf("seed: updating project %q: %w", sp.title, err)
		}
		projectIDs = append(projectIDs, created.ID)

		for _, sr := range seedRewards[i] {
			reward := models.Reward{
				ProjectID:       created.ID,
				Title:           sr.title,
				Amount:          decimal.RequireFromString(sr.amount),
				Description:     sr.description,
				ShippingRegions: sr.shippingRegions,
			}
			if sr.quantity > 0 {
				quantity := sr.quantity
				reward.Quantity = &quantity
			}
			createdReward, err := projects.CreateReward(ctx, reward)
			if err != nil {
				return fmt.Errorf("seed: creating reward %q for %q: %w", sr.title, sp.title, err)
			}
			rewardIDs[i] = append(rewardIDs[i], createdReward.ID)
		}
	}

	for _, sp := range seedPledges {
		pledge := models.Pledge{
			ProjectID:     projectIDs[sp.project],
			UserID:        userIDs[sp.backer],
			Amount:        decimal.RequireFromString(sp.amount),
			PaymentStatus: models.PaymentStatusCompleted,
		}
		if sp.reward >= 0 {
			rewardID := rewardIDs[sp.project][sp.reward]
			pledge.RewardID = &rewardID
		}
		if _, err := projects.CreatePledge(ctx, pledge); err != nil {
			return fmt.Errorf("seed: creating pledge for %q: %w", seedProjects[sp.project].title, err)
		}
	}

	log.Info().
		Int("categories", len(seedCategories)).
		Int("users", len(seedUsers)).
		Int("projects", len(seedProjects)).
		Int("pledges", len(seedPledges)).
		Msg("storage seeded")

	return nil
}
