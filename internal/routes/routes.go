package routes

import (
	"github.com/gorilla/mux"

	"github.com/BossEl-566/LmBlog-sub001/internal/handlers"
	"github.com/BossEl-566/LmBlog-sub001/internal/middleware"
	"github.com/BossEl-566/LmBlog-sub001/internal/models"
)

func InitRoutes(
	router *mux.Router,
	postHandler *handlers.PostHandler,
	applicationHandler *handlers.ApplicationHandler,
	uploadHandler *handlers.UploadHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/posts", postHandler.ListPublished).Methods("GET")
	api.HandleFunc("/posts/{id}", postHandler.GetPost).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth)

	// заявку может подать любой залогиненный (читатель)
	protected.HandleFunc("/applications", applicationHandler.SubmitApplication).Methods("POST")

	uploads := protected.PathPrefix("/uploads").Subrouter()
	uploads.Use(middleware.AnyRole(models.RoleAuthor, models.RoleAdmin))
	uploads.HandleFunc("", uploadHandler.UploadImage).Methods("POST")

	authorPosts := protected.PathPrefix("/posts").Subrouter()
	authorPosts.Use(middleware.AnyRole(models.RoleAuthor, models.RoleAdmin))
	authorPosts.HandleFunc("", postHandler.CreatePost).Methods("POST")
	authorPosts.HandleFunc("/{id}", postHandler.UpdatePost).Methods("PUT")
	authorPosts.HandleFunc("/{id}/submit", postHandler.SubmitPost).Methods("POST")

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.OnlyRole(models.RoleAdmin))
	admin.HandleFunc("/posts", postHandler.AdminListPosts).Methods("GET")
	admin.HandleFunc("/posts/preview", postHandler.Preview).Methods("POST")
	admin.HandleFunc("/posts/{id}", postHandler.AdminGetPost).Methods("GET")
	admin.HandleFunc("/posts/{id}", postHandler.DeletePost).Methods("DELETE")
	admin.HandleFunc("/posts/{id}/status", postHandler.ChangeStatus).Methods("POST")
	admin.HandleFunc("/applications", applicationHandler.AdminListApplications).Methods("GET")
	admin.HandleFunc("/applications/{id}", applicationHandler.AdminGetApplication).Methods("GET")
	admin.HandleFunc("/applications/{id}/status", applicationHandler.ReviewApplication).Methods("POST")
}
