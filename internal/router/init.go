package router

import (
	"wardrobe-api/internal/application"
	"wardrobe-api/internal/container"
	pginfra "wardrobe-api/internal/infrastructure/postgres"
	handlers "wardrobe-api/internal/interface/http"
	"wardrobe-api/internal/router/modules"
	"wardrobe-api/pkg/uploads"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(repo, container.GetJWT(), container.GetLogger())
	h := handlers.NewAuthHandler(svc, container.GetLogger(), container.GetRabbitPub(), container.GetConfig())
	return modules.NewAuthModule(h, container.GetJWT())
}

func buildClothingModule() *modules.ClothingModule {
	cfg := container.GetConfig()

	var store uploads.Store
	if cfg.GCSBucket != "" && container.GetGCS() != nil {
		store = uploads.NewGCSStore(container.GetGCS(), cfg.GCSBucket)
	} else {
		store = uploads.NewDiskStore(cfg.UploadsDir, cfg.UploadsBaseURL)
	}

	repo := pginfra.NewClothingRepository(container.GetPGPool())
	svc := application.NewClothingService(repo, container.GetLogger())
	h := handlers.NewClothingHandler(svc, store, container.GetLogger())
	return modules.NewClothingModule(h, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildClothingModule())
	r.Add(modules.NewDebugModule())
}
