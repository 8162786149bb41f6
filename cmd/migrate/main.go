package main

import (
	"database/sql"
	"flag"
	"log"

	"github.com/dddlab/backend/adapters/postgrestore"
	"github.com/dddlab/backend/pkg/config"
	"github.com/dddlab/backend/pkg/logger"
	_ "github.com/lib/pq"
)

func main() {
	down := flag.Int("down", -1, "roll back N migrations, 0 rolls back all of them")
	flag.Parse()

	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN)
	if err != nil {
		applog.Fatalf("cannot open database: %v", err)
	}
	defer db.Close()

	if *down >= 0 {
		n, err := postgrestore.Rollback(db, *down)
		if err != nil {
			applog.Fatal(err)
		}

		applog.Infof("rolled back %d migrations", n)
		return
	}

	n, err := postgrestore.Migrate(db)
	if err != nil {
		applog.Fatal(err)
	}

	applog.Infof("applied %d migrations", n)
}
