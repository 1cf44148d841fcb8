package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elevateglobal/elevate-wallet/internal/blob"
	"github.com/elevateglobal/elevate-wallet/internal/config"
	"github.com/elevateglobal/elevate-wallet/internal/logger"
	"github.com/elevateglobal/elevate-wallet/internal/mailer"
	"github.com/elevateglobal/elevate-wallet/internal/network/router"
	"github.com/elevateglobal/elevate-wallet/internal/ratelimit"
	"github.com/elevateglobal/elevate-wallet/internal/services"
	"github.com/elevateglobal/elevate-wallet/internal/storage"
	"github.com/elevateglobal/elevate-wallet/internal/worker"
	"github.com/go-redis/redis/v8"
)

const (
	requestLimit  = 60
	requestWindow = time.Minute
)

func Run(config config.Config, storage storage.Storage) {

	attachments, err := blob.NewDiskStore(config.Attachment.Dir, config.Attachment.BaseURL)
	if err != nil {
		logger.Panic("error create attachment store", err.Error())
	}

	var notifier services.Notifier = services.NoopNotifier{}
	if config.Mail.Host != "" {
		notifier = mailer.NewMailer(config.Mail)
	}

	localLimiter := ratelimit.NewLocalLimiter(requestLimit, requestWindow)
	defer localLimiter.Stop()

	var limiter ratelimit.Limiter = localLimiter
	if config.Server.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: config.Server.RedisAddr})
		limiter = ratelimit.NewRedisLimiter(client, requestLimit, requestWindow)
		defer client.Close()
	}

	router := router.NewRouter(config, storage, attachments, notifier, limiter)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// start the maturity payout worker
	worker := worker.NewPayoutWorker(router.Packages, config.Payout)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
