package database

import (
	"context"

	"github.com/DedS3t/drinkopoly-backend/platform/config"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func PostgreSQLConnection(cfg config.Database) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.User,
		Addr:     cfg.Addr,
		Password: cfg.Password,
		Database: cfg.Name,
	})
}

// Migrate creates the cards table when missing.
func Migrate(ctx context.Context, db *pg.DB) error {
	err := db.ModelContext(ctx, (*cardRow)(nil)).CreateTable(&orm.CreateTableOptions{
		IfNotExists: true,
	})
	if err != nil {
		return err
	}
	logrus.Debug("cards table ready")
	return nil
}
