// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/ComboLab/combolab-go/internal/application/services"
	"github.com/ComboLab/combolab-go/internal/domain/repositories"
	"github.com/ComboLab/combolab-go/internal/infrastructure/caching/manager"
	"github.com/ComboLab/combolab-go/internal/infrastructure/email"
	"github.com/ComboLab/combolab-go/internal/infrastructure/media"
	"github.com/ComboLab/combolab-go/internal/infrastructure/messaging"
	"github.com/ComboLab/combolab-go/internal/infrastructure/observability/logging"
	persistContent "github.com/ComboLab/combolab-go/internal/infrastructure/persistence/content"
	"github.com/ComboLab/combolab-go/internal/infrastructure/persistence/database"
	persistUser "github.com/ComboLab/combolab-go/internal/infrastructure/persistence/user"
	"github.com/ComboLab/combolab-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application Services (stateless singletons)
	AuthService      *services.AuthService
	GameService      *services.GameService
	CharacterService *services.CharacterService
	ComboService     *services.ComboService
	NotationService  *services.NotationService

	// Repositories
	GameRepo      repositories.GameRepository
	CharacterRepo repositories.CharacterRepository
	ComboRepo     repositories.ComboRepository
	NotationRepo  repositories.NotationRepository
	UserRepo      repositories.UserRepository

	// Infrastructure Dependencies
	Logger         *logging.ChanneledLogger
	CacheManager   *manager.Manager
	DB             *database.DB
	Broadcaster    *messaging.SSEBroadcaster
	ImageProcessor *media.ImageProcessor
	EmailService   email.Service
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, logger *logging.ChanneledLogger, emailService email.Service) *Container {
	cacheManager := manager.NewManager(logger)
	contentCache := cacheManager.Content()

	gameRepo := persistContent.NewGameRepository(db.DB, contentCache, logger)
	characterRepo := persistContent.NewCharacterRepository(db.DB, contentCache, logger)
	comboRepo := persistContent.NewComboRepository(db.DB, contentCache, logger)
	notationRepo := persistContent.NewNotationRepository(db.DB, logger)
	userRepo := persistUser.NewRepository(db.DB, logger)

	broadcaster := messaging.NewSSEBroadcaster(logger)
	notationService := services.NewNotationService(notationRepo, contentCache, logger)

	return &Container{
		AuthService:      services.NewAuthService(userRepo, emailService, logger),
		GameService:      services.NewGameService(gameRepo),
		CharacterService: services.NewCharacterService(characterRepo, gameRepo),
		ComboService:     services.NewComboService(comboRepo, characterRepo, notationService, broadcaster),
		NotationService:  notationService,

		GameRepo:      gameRepo,
		CharacterRepo: characterRepo,
		ComboRepo:     comboRepo,
		NotationRepo:  notationRepo,
		UserRepo:      userRepo,

		Logger:         logger,
		CacheManager:   cacheManager,
		DB:             db,
		Broadcaster:    broadcaster,
		ImageProcessor: media.NewImageProcessor(config.MediaBasePath),
		EmailService:   emailService,
	}
}
