package main

import (
	"context"
	"log"

	"github.com/dddlab/backend/adapters/event"
	"github.com/dddlab/backend/adapters/event/listeners"
	"github.com/dddlab/backend/adapters/postgrestore"
	"github.com/dddlab/backend/adapters/services"
	"github.com/dddlab/backend/domain/customer"
	"github.com/dddlab/backend/pkg/config"
	"github.com/dddlab/backend/pkg/logger"
)

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

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}

	// only the log handlers, seeding must not publish or notify
	dispatcher := event.NewEventDispatcher(event.WithLogger(applog))
	listeners.RegisterAll(dispatcher, listeners.Dependencies{Logger: applog})

	customerService := services.NewCustomerService(postgrestore.NewCustomerStore(db), dispatcher)
	productService := services.NewProductService(postgrestore.NewProductStore(db), dispatcher)

	ctx := context.Background()

	c, err := customerService.Create(ctx, "Customer 1", nil)
	if err != nil {
		applog.Fatalf("cannot create customer: %v", err)
	}

	address := customer.Address{Street: "Street 1", Number: 123, Zip: "13330-250", City: "São Paulo"}
	if _, err := customerService.ChangeAddress(ctx, c.ID, address); err != nil {
		applog.Fatalf("cannot change customer address: %v", err)
	}

	for _, p := range []struct {
		name  string
		price float64
	}{
		{"Product 1", 100},
		{"Product 2", 200},
	} {
		if _, err := productService.Create(ctx, p.name, p.price); err != nil {
			applog.Fatalf("cannot create product: %v", err)
		}
	}

	applog.Info("seed data created successfully")
	applog.Infof("customer id: %s", c.ID)
}
