package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dddlab/backend/adapters/event"
	"github.com/dddlab/backend/adapters/event/listeners"
	"github.com/dddlab/backend/adapters/httpserver"
	"github.com/dddlab/backend/adapters/notificationhub"
	"github.com/dddlab/backend/adapters/postgrestore"
	"github.com/dddlab/backend/adapters/redisstore"
	"github.com/dddlab/backend/adapters/services"
	"github.com/dddlab/backend/domain/notification"
	"github.com/dddlab/backend/pkg/config"
	"github.com/dddlab/backend/pkg/logger"
	"github.com/dddlab/backend/pkg/metrics"
	"github.com/dddlab/backend/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
)

// @title DDD Lab APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customer, product and checkout API.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}
	defer redis.Close()

	// event bus
	dispatcherOpts := []event.Option{
		event.WithLogger(applog),
		event.WithMetrics(metrics.NewDispatcher(prometheus.DefaultRegisterer, "dddlab")),
	}
	if cfg.Dispatcher.ContinueOnError {
		dispatcherOpts = append(dispatcherOpts, event.WithContinueOnError())
	}
	dispatcher := event.NewEventDispatcher(dispatcherOpts...)

	var notificationService notification.Service
	if cfg.NotificationHub.Endpoint != "" {
		hub, err := notificationhub.NewNotificationHub(cfg)
		if err != nil {
			applog.Fatal(err)
		}

		notificationService = hub
	}

	listeners.RegisterAll(dispatcher, listeners.Dependencies{
		Logger:              applog,
		PubSubService:       redisstore.NewBroker(redis),
		ChannelPrefix:       cfg.Events.ChannelPrefix,
		NotificationService: notificationService,
		NotificationSender:  cfg.NotificationHub.Sender,
		NotificationToken:   cfg.NotificationHub.Token,
	})

	server, err := httpserver.New(cfg, applog)
	if err != nil {
		applog.Fatal(err)
	}

	server.EventDispatcher = dispatcher

	// store adapters
	customerStore := postgrestore.NewCustomerStore(db)
	productStore := postgrestore.NewProductStore(db)
	orderStore := postgrestore.NewOrderStore(db)

	// services
	server.CustomerService = services.NewCustomerService(customerStore, dispatcher)
	server.ProductService = services.NewProductService(productStore, dispatcher)
	server.OrderService = services.NewOrderService(orderStore, customerStore, productStore)

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Info("server started!")
	applog.Fatal(http.ListenAndServe(addr, server))
}
