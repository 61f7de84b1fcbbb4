package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/teamreg/backend/config"
	"github.com/teamreg/backend/internal/event"
	"github.com/teamreg/backend/internal/gql"
	"github.com/teamreg/backend/internal/invoice"
	"github.com/teamreg/backend/internal/note"
	"github.com/teamreg/backend/internal/program"
	"github.com/teamreg/backend/internal/registration"
	"github.com/teamreg/backend/internal/settings"
	"github.com/teamreg/backend/internal/tag"
	"github.com/teamreg/backend/internal/team"
	"github.com/teamreg/backend/internal/user"
	"github.com/teamreg/backend/pkg/logger"
	"github.com/teamreg/backend/routes"
)

func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}
	cfg := config.GetConfig()
	db := config.DB

	zlog := logger.NewForEnvironment(cfg.App.Env)
	defer zlog.Sync()

	if err := db.AutoMigrate(
		&user.UserData{},
		&tag.TagData{},
		&team.TeamData{},
		&program.ProgramData{},
		&event.EventData{},
		&invoice.InvoiceItemData{},
		&registration.RegistrationData{},
		&note.NoteData{},
		&settings.SettingsData{},
	); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	schema, err := gql.NewSchema()
	if err != nil {
		zlog.Fatal("schema build failed", zap.Error(err))
	}

	r := routes.SetupRoutes(cfg, db, &schema, zlog)

	addr := ":" + cfg.App.Port
	zlog.Info("server listening",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env))
	if err := r.Run(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
