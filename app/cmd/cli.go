package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fariowear/go-storefront/app/configs"
	"github.com/fariowear/go-storefront/app/models/migrations"
	"github.com/fariowear/go-storefront/app/repositories"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create the local lead store schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := configs.LoadEnv()
					db, err := repositories.OpenLeadStore(env.LeadStorePath)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:  "leads",
				Usage: "List leads persisted to the local fallback store",
				Action: func(ctx context.Context, c *cli.Command) error {
					env := configs.LoadEnv()
					db, err := repositories.OpenLeadStore(env.LeadStorePath)
					if err != nil {
						return err
					}
					leads, err := repositories.NewLeadRepository(db).GetAll(ctx)
					if err != nil {
						return err
					}
					if len(leads) == 0 {
						fmt.Println("No stored leads.")
						return nil
					}
					for _, lead := range leads {
						fmt.Printf("%s\t%s\t%s\t%s\t%s\t%s\n",
							lead.CreatedAt.Format("2006-01-02 15:04"),
							lead.ID, lead.Name, lead.Email, lead.Phone, lead.Source)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
