package main

import (
	"context"
	"log/slog"
	"os"

	"fleetplan/config"
	"fleetplan/internal/delivery"
	"fleetplan/internal/delivery/worker"
	"fleetplan/internal/delivery/worker/handler"
	"fleetplan/internal/domain/service"
	"fleetplan/internal/infra/cache"
	"fleetplan/internal/infra/export"
	logs "fleetplan/internal/infra/log"
	"fleetplan/internal/infra/metrics"
	"fleetplan/internal/infra/persistence/postgres"
	"fleetplan/internal/infra/pubsub"
	"fleetplan/internal/infra/qrcode"
	"fleetplan/internal/infra/solver"
	"fleetplan/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		pubsub.Module,
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
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPlanRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			solver.New,
			cache.New,
			export.NewArtifactStore,
			newQRCodeService,
			newSolveRecorder,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newSolveRecorder(m *metrics.Metrics) service.SolveRecorder {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCVRPPipeline,
			impl.NewPlanningService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
