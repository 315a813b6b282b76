package app

import (
	"vitrine/internal/auth"
	"vitrine/internal/events"
	"vitrine/internal/repo"
	"vitrine/internal/services"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB             *gorm.DB
	AuthService    *auth.Service
	UserRepo       *repo.UserRepository
	BusinessRepo   *repo.BusinessRepository
	CategoryRepo   *repo.CategoryRepository
	ServiceRepo    *repo.OfferedServiceRepository
	MediaRepo      *repo.MediaRepository
	StorageService *services.StorageService
	Publisher      *events.Publisher
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	// Initialize repositories
	userRepo := repo.NewUserRepository(db)
	businessRepo := repo.NewBusinessRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	serviceRepo := repo.NewOfferedServiceRepository(db)
	mediaRepo := repo.NewMediaRepository(db)

	// Initialize services
	authService := auth.NewService(userRepo)

	// Storage is optional; gallery uploads are disabled without it
	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("Storage service not available, gallery uploads disabled")
		storageService = nil
	}

	// Event publisher is optional; nil is a valid noop publisher
	publisher := events.NewPublisherFromEnv()
	if publisher == nil {
		log.Info().Msg("No kafka brokers configured, domain events disabled")
	}

	return &Services{
		DB:             db,
		AuthService:    authService,
		UserRepo:       userRepo,
		BusinessRepo:   businessRepo,
		CategoryRepo:   categoryRepo,
		ServiceRepo:    serviceRepo,
		MediaRepo:      mediaRepo,
		StorageService: storageService,
		Publisher:      publisher,
	}
}
