package main

import (
	"log"
	"time"

	"github.com/oceanview/argo-backend-go/internal/api"
	"github.com/oceanview/argo-backend-go/internal/config"
	"github.com/oceanview/argo-backend-go/internal/database"
	"github.com/oceanview/argo-backend-go/internal/handler"
	"github.com/oceanview/argo-backend-go/internal/llm"
	"github.com/oceanview/argo-backend-go/internal/mock"
	"github.com/oceanview/argo-backend-go/internal/repository"
	"github.com/oceanview/argo-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	floatRepo := repository.NewFloatRepository(db)
	trajectoryRepo := repository.NewTrajectoryRepository(db)
	chatRepo := repository.NewChatRepository(db)

	if cfg.SeedDemoData {
		if err := seedDemoData(floatRepo, trajectoryRepo); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	floatService := service.NewFloatService(floatRepo, trajectoryRepo)
	trajectoryService := service.NewTrajectoryService(trajectoryRepo)
	chatService := service.NewChatService(chatRepo, llm.New(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel))

	router := api.SetupRouter(cfg, api.Handlers{
		Float:      handler.NewFloatHandler(floatService),
		Trajectory: handler.NewTrajectoryHandler(trajectoryService),
		Chat:       handler.NewChatHandler(chatService),
		Auth:       handler.NewAuthHandler(cfg),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedDemoData fills an empty database with generated floats so the dashboard
// has something to show out of the box
func seedDemoData(floatRepo *repository.FloatRepository, trajectoryRepo *repository.TrajectoryRepository) error {
	count, err := floatRepo.CountFloats()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	gen := mock.NewGenerator(time.Now().UnixNano())
	for i := 0; i < 5; i++ {
		f := gen.Float(i)
		id, err := floatRepo.InsertFloat(&f)
		if err != nil {
			return err
		}

		points := gen.Trajectory(id, f.DeployedAt, 80+i*20)
		if err := trajectoryRepo.InsertPoints(points); err != nil {
			return err
		}
		if err := floatRepo.UpdateLastContact(id, points[len(points)-1].Timestamp); err != nil {
			return err
		}
	}

	log.Printf("Seeded demo data: 5 floats")
	return nil
}
