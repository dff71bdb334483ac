package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "loanpool-backend/internal/adapter/http"
	appmw "loanpool-backend/internal/adapter/middleware"
	"loanpool-backend/internal/adapter/repository/mysql"
	"loanpool-backend/internal/config"
	"loanpool-backend/internal/infrastructure/cache"
	"loanpool-backend/internal/infrastructure/db"
	loanuc "loanpool-backend/internal/usecase/loan"
	pooluc "loanpool-backend/internal/usecase/pool"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("open database")
	}

	// The service still works without redis, summaries just aren't cached.
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, summary caching disabled")
		rdb = nil
	}
	summaryTTL := time.Duration(cfg.SummaryTTLSecs) * time.Second

	loanRepo := mysql.NewLoanRepository(gdb)
	poolRepo := mysql.NewPoolRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	lh := httpadp.NewLoanHandler(loanuc.NewUsecase(loanRepo, tx, log))
	ph := httpadp.NewPoolHandler(pooluc.NewUsecase(poolRepo))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	e.GET("/health", h.Health)

	loans := e.Group("/loans")
	loans.GET("/", lh.GetLoans)
	loans.PUT("/", lh.UpdateLoans, appmw.SummaryInvalidate(rdb, log))
	loans.GET("/summary", lh.PortfolioSummary, appmw.SummaryCache(rdb, summaryTTL, log))

	pools := e.Group("/pools")
	pools.GET("/", ph.GetPools)
	pools.GET("/summary", ph.PoolSummary, appmw.SummaryCache(rdb, summaryTTL, log))

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
