package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/tmaxstore/catalog-admin/app/cmd"
	"github.com/tmaxstore/catalog-admin/app/configs"
	"github.com/tmaxstore/catalog-admin/app/repositories"
	"github.com/tmaxstore/catalog-admin/app/routes"
	"github.com/tmaxstore/catalog-admin/app/services"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing: ", err)
	}

	settingRepo := repositories.NewSettingRepository(db)
	themeSvc := services.NewThemeService(settingRepo)
	if err := themeSvc.Load(context.Background()); err != nil {
		log.Printf("Theme load failed, keeping default: %v", err)
	}

	router := routes.NewRouter(db, env, keys, themeSvc)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Admin API starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
