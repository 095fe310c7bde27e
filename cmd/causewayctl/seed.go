package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	newsstore "github.com/causewayhq/causeway/internal/app/store/news"
	partnerstore "github.com/causewayhq/causeway/internal/app/store/partners"
	programstore "github.com/causewayhq/causeway/internal/app/store/programs"
	projectstore "github.com/causewayhq/causeway/internal/app/store/projects"
	themestore "github.com/causewayhq/causeway/internal/app/store/themes"
	userstore "github.com/causewayhq/causeway/internal/app/store/users"
	"github.com/causewayhq/causeway/internal/app/system/indexes"
	"github.com/causewayhq/causeway/internal/domain/models"
)

// seed inserts a small, realistic content set through the same stores the
// API uses, so slugs and unique indexes behave exactly like production.
func seed(ctx context.Context, db *mongo.Database) error {
	if err := indexes.EnsureAll(ctx, db); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}

	admin, err := seedAdmin(ctx, db)
	if err != nil {
		return err
	}
	if err := seedProjects(ctx, db); err != nil {
		return err
	}
	if err := seedNews(ctx, db, admin); err != nil {
		return err
	}
	if err := seedPrograms(ctx, db); err != nil {
		return err
	}
	if err := seedPartners(ctx, db); err != nil {
		return err
	}
	return seedThemes(ctx, db)
}

const (
	seedAdminEmail    = "admin@causeway.local"
	seedAdminPassword = "causeway-admin"
)

// seedAdmin guarantees a signed-in starting point for the dashboard. The
// account is reused when it already exists, so reseeding never churns
// credentials.
func seedAdmin(ctx context.Context, db *mongo.Database) (models.User, error) {
	store := userstore.New(db)

	if existing, err := store.GetByEmail(ctx, seedAdminEmail); err == nil {
		return *existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing admin password: %w", err)
	}
	admin, err := store.Create(ctx, models.User{
		Name:         "Causeway Admin",
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("seeding admin user: %w", err)
	}
	fmt.Printf("created %s (password %q, change it after first login)\n", seedAdminEmail, seedAdminPassword)
	return admin, nil
}

func seedNews(ctx context.Context, db *mongo.Database, author models.User) error {
	store := newsstore.New(db)

	articles := []models.News{
		{
			Title:     "Literacy Drive Reaches 1,200 Students",
			Excerpt:   "Six months of mobile reading rooms, by the numbers.",
			Content:   "<p>Our volunteer tutors logged over 4,000 sessions across the Northern Region this term.</p>",
			Category:  models.NewsCatStory,
			Tags:      []string{"education", "impact"},
			Published: true,
			AuthorID:  author.ID,
		},
		{
			Title:     "Three New Wells Online in the Lake District",
			Excerpt:   "Clean water now reaches 3,400 more residents.",
			Content:   "<p>The final pump tests passed this week; maintenance training starts next month.</p>",
			Category:  models.NewsCatAnnouncement,
			Tags:      []string{"health", "water"},
			Published: true,
			AuthorID:  author.ID,
		},
		{
			Title:    "Volunteer Orientation Day",
			Content:  "<p>Draft agenda for the spring orientation. Dates to be confirmed.</p>",
			Category: models.NewsCatEvent,
			AuthorID: author.ID,
		},
	}

	for _, a := range articles {
		if _, err := store.Create(ctx, a); err != nil {
			return fmt.Errorf("seeding article %q: %w", a.Title, err)
		}
	}
	return nil
}

func seedProjects(ctx context.Context, db *mongo.Database) error {
	store := projectstore.New(db)
	start := time.Now().UTC().AddDate(0, -6, 0)

	projects := []models.Project{
		{
			Title:       "Community Literacy Drive",
			Description: "Mobile reading rooms and volunteer tutors for rural districts.",
			Category:    models.ProjectCatEducation,
			Status:      models.ProjectActive,
			Featured:    true,
			Location:    "Northern Region",
			StartDate:   &start,
			Impact:      models.ImpactMetrics{Beneficiaries: 1200, Volunteers: 45, FundsRaised: 18500},
		},
		{
			Title:       "Clean Water Wells",
			Description: "Drilling and maintaining wells in partnership with local councils.",
			Category:    models.ProjectCatHealth,
			Status:      models.ProjectActive,
			Location:    "Lake District",
			Impact:      models.ImpactMetrics{Beneficiaries: 3400, Volunteers: 20, FundsRaised: 52000},
		},
		{
			Title:       "Reforestation Pilot",
			Description: "Native species planting across degraded hillsides.",
			Category:    models.ProjectCatEnvironment,
			Status:      models.ProjectPlanning,
		},
	}

	for _, p := range projects {
		if _, err := store.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}
	return nil
}

func seedPrograms(ctx context.Context, db *mongo.Database) error {
	store := programstore.New(db)

	programs := []models.Program{
		{
			Title:         "Youth Mentorship Circle",
			Description:   "Monthly pairing of students with professional mentors.",
			Category:      models.ProgramCatMentorship,
			Status:        models.ProgramOngoing,
			Beneficiaries: 80,
			Features:      []string{"1:1 mentoring", "career workshops"},
		},
		{
			Title:       "Digital Skills Bootcamp",
			Description: "Eight-week evening course on practical computing.",
			Category:    models.ProgramCatTraining,
			Status:      models.ProgramUpcoming,
		},
	}

	for _, p := range programs {
		if _, err := store.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding program %q: %w", p.Title, err)
		}
	}
	return nil
}

func seedPartners(ctx context.Context, db *mongo.Database) error {
	store := partnerstore.New(db)

	partners := []models.Partner{
		{
			Name:             "Brightline Foundation",
			PartnershipLevel: models.PartnerGold,
			Category:         models.PartnerCatNGO,
			Website:          "https://brightline.example.org",
		},
		{
			Name:             "Harbor Logistics",
			PartnershipLevel: models.PartnerSilver,
			Category:         models.PartnerCatCorporate,
		},
	}

	for _, p := range partners {
		if _, err := store.Create(ctx, p); err != nil {
			return fmt.Errorf("seeding partner %q: %w", p.Name, err)
		}
	}
	return nil
}

func seedThemes(ctx context.Context, db *mongo.Database) error {
	store := themestore.New(db)

	created, err := store.Create(ctx, models.Theme{
		Name:       "Causeway Classic",
		Primary:    "#0f766e",
		Secondary:  "#134e4a",
		Accent:     "#f59e0b",
		Background: "#ffffff",
		Text:       "#1f2937",
	})
	if err != nil {
		return fmt.Errorf("seeding theme: %w", err)
	}
	if _, err := store.Activate(ctx, created.ID); err != nil {
		return fmt.Errorf("activating seeded theme: %w", err)
	}
	return nil
}
