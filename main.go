package main

import (
	"log"
	"net/http"
	"os"

	"github.com/fariowear/go-storefront/app/catalogdata"
	"github.com/fariowear/go-storefront/app/cmd"
	"github.com/fariowear/go-storefront/app/configs"
	"github.com/fariowear/go-storefront/app/models/migrations"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/fariowear/go-storefront/app/routes"
	"github.com/fariowear/go-storefront/app/services"
)

func main() {

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	keys, err := configs.LoadSessionKeysFromEnv(env)
	if err != nil {
		log.Fatal("Session keys failed to load:", err)
	}

	products, err := catalogdata.Load()
	if err != nil {
		log.Fatal("Catalog failed to load:", err)
	}
	log.Printf("✅ Catalog loaded: %d products.", len(products))

	leadDB, err := repositories.OpenLeadStore(env.LeadStorePath)
	if err != nil {
		log.Fatal("Lead store failed to open:", err)
	}
	if err := migrations.AutoMigrate(leadDB); err != nil {
		log.Fatal("Lead store migration failed:", err)
	}

	productRepo := repositories.NewMemoryProductRepository(products)
	leadRepo := repositories.NewLeadRepository(leadDB)
	submitter := services.NewSheetsLeadSubmitter(env.SheetsWebAppURL, leadRepo)

	router := routes.NewRouter(env, keys, productRepo, leadRepo, submitter)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
