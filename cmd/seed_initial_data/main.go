package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/trivia.json"

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the seed JSON file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	data, err := seedmodels.Load(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}
	log.Info("Successfully loaded seed data",
		zap.Int("categories_loaded", len(data.Categories)),
		zap.Int("drinks_loaded", len(data.Drinks)),
	)

	s := &seeder{
		tx:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		drinks:     repository.NewDrinkDatabaseAdapter(db),
		log:        log,
	}
	if err := s.Seed(ctx, data); err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.")
}

type seeder struct {
	tx         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	drinks     domain.DrinkRepository
	log        *zap.Logger
}

// Seed inserts categories whose type is not yet present together with their
// questions, and drinks whose title is not yet taken, in one transaction.
func (s *seeder) Seed(ctx context.Context, data *seedmodels.SeedData) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.categories.GetAllCategories(ctx)
		if err != nil {
			return fmt.Errorf("error listing categories: %w", err)
		}
		known := make(map[string]bool, len(existing))
		for _, c := range existing {
			known[c.Type] = true
		}

		for _, sc := range data.Categories {
			if known[sc.Type] {
				s.log.Info("Category exists, skipping.", zap.String("type", sc.Type))
				continue
			}
			if err := s.seedCategory(ctx, sc); err != nil {
				return err
			}
			known[sc.Type] = true
		}

		for _, sd := range data.Drinks {
			if err := s.seedDrink(ctx, sd); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *seeder) seedCategory(ctx context.Context, sc seedmodels.SeedCategory) error {
	category := domain.NewCategory(sc.Type)
	if err := s.categories.SaveCategory(ctx, category); err != nil {
		return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
	}
	s.log.Info("Created category.", zap.String("id", category.ID), zap.String("type", category.Type))

	for _, sq := range sc.Questions {
		question := domain.NewQuestion(category.ID, sq.Question, sq.Answer, sq.Difficulty)
		if err := s.questions.SaveQuestion(ctx, question); err != nil {
			return fmt.Errorf("failed to save question '%s': %w", firstN(sq.Question, 50), err)
		}
		s.log.Info("Created question.", zap.String("id", question.ID), zap.String("question_preview", firstN(sq.Question, 20)))
	}
	return nil
}

func (s *seeder) seedDrink(ctx context.Context, sd seedmodels.SeedDrink) error {
	drink := sd.ToDomain()
	found, err := s.drinks.GetDrinkByTitle(ctx, drink.Title)
	if err != nil {
		return fmt.Errorf("error checking drink %s: %w", drink.Title, err)
	}
	if found != nil {
		s.log.Info("Drink exists, skipping.", zap.String("title", drink.Title))
		return nil
	}
	if err := s.drinks.SaveDrink(ctx, drink); err != nil {
		return fmt.Errorf("failed to save drink %s: %w", drink.Title, err)
	}
	s.log.Info("Created drink.", zap.String("id", drink.ID), zap.String("title", drink.Title))
	return nil
}
