// Command ingest loads one or more exported loan tapes (CSV) into the
// store. Pools are created as names are first seen; the whole run is one
// transaction, so a bad tape leaves the database untouched.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"loanpool-backend/internal/adapter/repository/mysql"
	"loanpool-backend/internal/config"
	loanDomain "loanpool-backend/internal/domain/loan"
	poolDomain "loanpool-backend/internal/domain/pool"
	"loanpool-backend/internal/infrastructure/db"
	"loanpool-backend/internal/ingest"
)

func main() {
	migrate := flag.Bool("migrate", true, "create tables before loading")
	flag.Parse()

	log := logrus.New()
	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("usage: ingest [-migrate=false] <tape.csv> [tape2.csv ...]")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	if *migrate {
		if err := gdb.AutoMigrate(&poolDomain.Pool{}, &loanDomain.Loan{}); err != nil {
			log.WithError(err).Fatal("migrate schema")
		}
	}

	var rows []ingest.Row
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			log.WithError(err).Fatalf("open %s", path)
		}
		parsed, err := ingest.ParseCSV(f)
		f.Close()
		if err != nil {
			log.WithError(err).Fatalf("parse %s", path)
		}
		log.WithField("rows", len(parsed)).Infof("parsed %s", path)
		rows = append(rows, parsed...)
	}

	stats, err := ingest.Load(context.Background(), mysql.NewGormUoW(gdb), rows)
	if err != nil {
		log.WithError(err).Fatal("load failed, nothing written")
	}
	log.WithFields(logrus.Fields{
		"pools": stats.PoolsCreated,
		"loans": stats.LoansLoaded,
	}).Info("ingestion complete")
}
