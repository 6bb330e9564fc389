package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"stay_directory/internal/adapters/observability"
	"stay_directory/internal/domain"
	"stay_directory/internal/shared"
	mysqlrepo "stay_directory/internal/storage/mysql"
)

// Seeds the initial catalog. Existing ids are left untouched so the
// seeder stays safe to re-run against a live store.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	seeds := shared.SeedProperties()
	log.Info().Int("workers", cfg.Workers).Int("properties", len(seeds)).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range seeds {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(prop domain.Property) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := repo.Get(ctx, prop.ID); err == nil {
				log.Info().Str("id", prop.ID).Msg("already present, skipping")
				return
			} else if !errors.Is(err, domain.ErrNotFound) {
				log.Warn().Str("id", prop.ID).Err(err).Msg("existence check failed")
				return
			}

			if err := repo.Upsert(ctx, prop); err != nil {
				log.Warn().Str("id", prop.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("id", prop.ID).Msg("seed ok")
		}(p)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
