package app

import (
	"context"
	"log"
	"time"

	"mutual-book/internal/config"
	"mutual-book/internal/database"
	"mutual-book/internal/database/migration"
	dbpostgres "mutual-book/internal/database/postgres"
	"mutual-book/internal/domain/funnel"
	"mutual-book/internal/mail"
	"mutual-book/internal/pkg/linktoken"
	storagememory "mutual-book/internal/storage/memory"
	storagepostgres "mutual-book/internal/storage/postgres"
	"mutual-book/internal/usecase"
	ucfunnel "mutual-book/internal/usecase/funnel"
	"mutual-book/migrations"
)

// Container owns the process-wide dependencies: config, the optional DB
// pool, the selected store and the funnel usecase. Handlers receive these
// as explicit instances; there are no package singletons.
type Container struct {
	Config config.Config
	DB     database.DB
	Store  funnel.Store
	Funnel usecase.FunnelUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if cfg.Storage.Driver == config.StorageDriverPostgres {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if err := (migration.Runner{FS: migrations.Files}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}

		c.Store = storagepostgres.NewStore(db)
	} else {
		log.Printf("storage: using transient in-memory store, data is lost on restart")
		c.Store = storagememory.New()
	}

	tokens := linktoken.NewService(cfg.Link.Secret, cfg.Link.TTL)

	var dispatcher mail.Dispatcher
	if cfg.Mail.SendGridAPIKey != "" {
		dispatcher = mail.NewSendGridDispatcher(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, cfg.Link.TTL, nil)
	} else {
		log.Printf("mail: SENDGRID_API_KEY not set, dispatching to the log")
		dispatcher = mail.NewLogDispatcher(cfg.Link.TTL, nil)
	}

	svc := ucfunnel.NewService(c.Store, dispatcher, tokens, cfg.App.PublicBaseURL, nil)
	c.Funnel = usecase.NewFunnelUsecase(svc)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
