package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/project-management/internal/config"
	"github.com/yukikurage/project-management/internal/database"
	"github.com/yukikurage/project-management/internal/logger"
	"github.com/yukikurage/project-management/internal/middleware"
	"github.com/yukikurage/project-management/internal/repository"
	"github.com/yukikurage/project-management/internal/router"
	"github.com/yukikurage/project-management/internal/services"
	"github.com/yukikurage/project-management/internal/views"
	"gorm.io/gorm"
)

const serviceName = "project-management"

var envFile string

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Run the company management web server",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		gin.SetMode(cfg.GinMode)

		store, err := middleware.NewSessionStore(cfg)
		if err != nil {
			log.Fatalw("Failed to create session store", "error", err)
		}

		tmpl, err := views.Load()
		if err != nil {
			log.Fatalw("Failed to parse templates", "error", err)
		}

		r := router.New(router.Deps{
			DB:             db,
			CompanyService: services.NewCompanyService(repository.NewCompanyRepository(db)),
			SessionStore:   store,
			Templates:      tmpl,
			Log:            log,
		})

		addr := ":" + cfg.Port
		log.Infow("Server starting", "addr", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalw("Failed to start server", "error", err)
		}
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, _, err := bootstrap()
		if err != nil {
			return err
		}
		_ = log.Sync()
		return nil
	},
}

// bootstrap loads config, connects to the database and ensures the schema.
// Connection and schema failures are fatal.
func bootstrap() (*config.Config, *logger.Logger, *gorm.DB, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log := logger.New(serviceName, cfg.AppEnv)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalw("Failed to connect to database", "driver", cfg.DBDriver, "error", err)
	}

	if err := database.Migrate(db, log); err != nil {
		log.Fatalw("Failed to create tables", "error", err)
	}

	return cfg, log, db, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
