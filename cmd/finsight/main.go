package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"finsight/config"
	"finsight/internal/delivery"
	"finsight/internal/delivery/http"
	"finsight/internal/delivery/http/middleware"
	"finsight/internal/delivery/http/router/handler"
	"finsight/internal/domain/service"
	"finsight/internal/infra/auth"
	"finsight/internal/infra/insight"
	logs "finsight/internal/infra/log"
	"finsight/internal/infra/notification"
	"finsight/internal/infra/oauth"
	"finsight/internal/infra/persistence/postgres"
	"finsight/internal/infra/provider/openfinance"
	"finsight/internal/infra/provider/sales"
	"finsight/internal/infra/provider/sandbox"
	"finsight/internal/infra/pubsub"
	"finsight/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewTransactionRepository,
			postgres.NewUserProfileRepository,
			postgres.NewGoalRepository,
			postgres.NewInsightMessageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			oauth.NewTokenService,
			oauth.NewStateStore,
			newSandboxGenerator,
			sales.New,
			openfinance.New,
			newProviderAdapters,
			insight.NewRemoteGenerators,
			insight.NewLocalGenerator,
			newFirebaseService,
			pubsub.NewEventPublisher,
		),
	)
}

// newSandboxGenerator creates the synthetic data generator from configuration
func newSandboxGenerator(cfg *config.Config) *sandbox.Generator {
	return sandbox.NewGenerator(cfg.Integrations.SandboxData)
}

// newProviderAdapters collects the registered provider adapters in a stable order
func newProviderAdapters(salesAdapter *sales.Adapter, openFinanceAdapter *openfinance.Adapter) []service.ProviderAdapter {
	return []service.ProviderAdapter{
		salesAdapter,
		openFinanceAdapter,
	}
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSyncService,
			impl.NewInsightService,
			impl.NewConnectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIntegrationHandler,
			handler.NewInsightHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
