package app

import (
	"github.com/gorilla/mux"

	"github.com/BossEl-566/LmBlog-sub001/internal/config"
	"github.com/BossEl-566/LmBlog-sub001/internal/db"
	"github.com/BossEl-566/LmBlog-sub001/internal/handlers"
	"github.com/BossEl-566/LmBlog-sub001/internal/repository"
	"github.com/BossEl-566/LmBlog-sub001/internal/routes"
	"github.com/BossEl-566/LmBlog-sub001/internal/services"
	"github.com/BossEl-566/LmBlog-sub001/internal/storage"
	"github.com/BossEl-566/LmBlog-sub001/internal/validation"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	uploader, err := storage.NewS3Uploader(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	postRepo := repository.NewPostRepo(conn)
	applicationRepo := repository.NewApplicationRepo(conn)
	userRepo := repository.NewUserRepo(conn)

	// Сервисы
	postSvc := services.NewPostService(postRepo)
	applicationSvc := services.NewApplicationService(
		applicationRepo,
		userRepo,
		validation.BioPolicy{Max: cfg.ApplicationBioMax},
	)
	previewSvc := services.NewPreviewService()

	// Хендлеры
	postHandler := handlers.NewPostHandler(postSvc, previewSvc)
	applicationHandler := handlers.NewApplicationHandler(applicationSvc)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, postHandler, applicationHandler, uploadHandler)

	return router, nil
}
