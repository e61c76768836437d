//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	courier_get "sweets-delivery/internal/handlers/rest/courier_get"
	courier_patch "sweets-delivery/internal/handlers/rest/courier_patch"
	couriers_post "sweets-delivery/internal/handlers/rest/couriers_post"
	orders_assign_post "sweets-delivery/internal/handlers/rest/orders_assign_post"
	orders_complete_post "sweets-delivery/internal/handlers/rest/orders_complete_post"
	orders_post "sweets-delivery/internal/handlers/rest/orders_post"
	"sweets-delivery/internal/handlers/tasks/trip_sweeper"
	"sweets-delivery/internal/pkg/config"

	courierRepo "sweets-delivery/internal/repository/courier"
	orderRepo "sweets-delivery/internal/repository/order"
	tripRepo "sweets-delivery/internal/repository/trip"
	courierService "sweets-delivery/internal/service/courier"
	deliveryService "sweets-delivery/internal/service/delivery"
	orderService "sweets-delivery/internal/service/order"

	"sweets-delivery/pkg/background"
	"sweets-delivery/pkg/logger"
	"sweets-delivery/pkg/querier"
	"sweets-delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceDelivery   ServiceDelivery
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	couriers_post.Service
	courier_patch.Service
	courier_get.Service
}

type ServiceOrder interface {
	orders_post.Service
}

type ServiceDelivery interface {
	orders_assign_post.Service
	orders_complete_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideCourierRepository,
		provideOrderRepository,
		provideTripRepository,

		provideServiceDelivery,
		provideServiceCourier,
		provideServiceOrder,

		provideTripSweeperTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.TripRepository), new(*tripRepo.Repository)),
		wire.Bind(new(courierService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(courierService.TripReevaluator), new(*deliveryService.Delivery)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.TripRepository), new(*tripRepo.Repository)),

		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trip_sweeper.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-completed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideOrderRepository,
		provideTripRepository,

		provideServiceDelivery,

		wire.Bind(new(deliveryService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(deliveryService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(deliveryService.TripRepository), new(*tripRepo.Repository)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideServiceDelivery(
	courierRepository deliveryService.CourierRepository,
	orderRepository deliveryService.OrderRepository,
	tripRepository deliveryService.TripRepository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		courierRepository,
		orderRepository,
		tripRepository,
		txManager,
	)
}

func provideServiceCourier(
	repository courierService.Repository,
	tripRepository courierService.TripRepository,
	orderRepository courierService.OrderRepository,
	reevaluator courierService.TripReevaluator,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, tripRepository, orderRepository, reevaluator, txManager)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Service {
	return orderService.New(repository)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.TripSweepInterval)
}

func provideTripSweeperTask(
	log logger.Logger,
	deliveryService trip_sweeper.Service,
	interval SweepInterval,
) *trip_sweeper.TripSweeper {
	return trip_sweeper.NewTripSweeper(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	tripSweeperTask *trip_sweeper.TripSweeper,
) []background.Task {
	return []background.Task{
		tripSweeperTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
