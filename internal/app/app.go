package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/neppath/convoybot/internal/config"
	"github.com/neppath/convoybot/internal/discord"
	"github.com/neppath/convoybot/internal/handler"
	"github.com/neppath/convoybot/internal/middleware"
	"github.com/neppath/convoybot/internal/notification"
	"github.com/neppath/convoybot/internal/repository"
	"github.com/neppath/convoybot/internal/router"
	"github.com/neppath/convoybot/internal/scheduler"
	"github.com/neppath/convoybot/internal/service"
	"github.com/neppath/convoybot/internal/truckersmp"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	bot        *discord.Bot
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ConvoyBot",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	boardRepo := repository.NewBoardRepo(a.db)
	claimRepo := repository.NewClaimRepo(a.db)

	session, err := discordgo.New("Bot " + a.cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("init discord session: %w", err)
	}

	notifier := notification.NewDiscordNotifier(session, a.cfg.Discord.StaffLogChannelID, a.log)

	mirror, err := notification.NewTelegramMirror(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init telegram mirror: %w", err)
	}

	tmpClient := truckersmp.NewClient(
		a.cfg.TruckersMP.BaseURL,
		a.cfg.TruckersMP.Timeout,
		a.cfg.TruckersMP.RPS,
	)

	boardService := service.NewBoardService(boardRepo, a.log)
	claimService := service.NewClaimService(claimRepo, boardRepo, notifier, notifier, a.cfg.Scheduler.ClaimTTL, a.log)
	decisionService := service.NewDecisionService(claimRepo, boardRepo, notifier, mirror, a.log)

	a.bot = discord.New(
		session,
		a.cfg.Discord,
		boardService,
		claimService,
		decisionService,
		tmpClient,
		a.log,
	)

	a.scheduler = scheduler.New(
		claimService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(boardService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.bot.Start(ctx); err != nil {
		return fmt.Errorf("start bot: %w", err)
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	if err := a.bot.Stop(); err != nil {
		a.log.Error("close discord session", logger.String("error", err.Error()))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "discord session closed")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
