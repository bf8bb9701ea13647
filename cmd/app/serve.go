package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	blogRepository "ThynxSite/internal/api/blog/repository"
	"ThynxSite/internal/config"
	"ThynxSite/internal/middleware"
	"ThynxSite/internal/seed"
	"ThynxSite/pkg/redis"
	"ThynxSite/pkg/smtp"
	"ThynxSite/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	if rt.env.SeedOnStart {
		seeder := seed.New(blogRepository.New(rt.db, rt.log), utils.New(), rt.log)
		if err := seeder.Run(cmd.Context()); err != nil {
			return err
		}
	}

	var storage fiber.Storage
	if rt.env.Redis.Address != "" {
		redisStorage, err := redis.New(rt.env.Redis, rt.log)
		if err != nil {
			return err
		}
		storage = redisStorage
	}

	server, err := config.NewServer(
		config.WithFiber(config.NewFiber(rt.log)),
		config.WithLogger(rt.log),
		config.WithValidator(config.NewValidator()),
		config.WithDatabase(rt.db),
		config.WithUtils(),
		config.WithSessionStore(storage, rt.env.SessionTTL, rt.env.CookieSecure),
		config.WithSMTPMailer(smtp.New(rt.env.SMTP)),
		config.WithMiddleware(middleware.DefaultConfig()),
		config.WithBcryptUtils(nil),
	)
	if err != nil {
		rt.log.Error(err)
		return err
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Run(rt.env.AppPort)
	}()

	rt.log.Info("Server started successfully")

	select {
	case err := <-errChan:
		if err != nil {
			rt.log.Errorf("Error starting server: %v", err)
		}
		return err
	case <-sigChan:
	}

	rt.log.Info("Shutting down server...")
	return server.Shutdown(shutdownTimeout)
}
