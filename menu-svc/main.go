package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"restcafe/config"
	httpapi "restcafe/menu-svc/internal/api/http"
	"restcafe/menu-svc/internal/service"
	"restcafe/menu-svc/internal/storage"
)

func buildHandler(ctx context.Context) (http.Handler, *service.Registry, func()) {
	fetchTimeout := config.GetDuration("FETCH_TIMEOUT", 10*time.Second)
	menuClient := storage.NewMenuClient(config.GetEnv("MENU_API_URL", storage.DefaultMenuURL), &http.Client{})

	var publisher service.EventPublisher
	cleanup := func() {}
	if writer := config.NewKafkaWriter(config.WidgetEventsTopic); writer != nil {
		writer.BatchTimeout = 10 * time.Millisecond
		publisher = storage.NewKafkaPublisher(writer)
		cleanup = func() { writer.Close() }
		log.Printf("[menu-svc] publishing widget events to %s", config.WidgetEventsTopic)
	}

	registry := service.NewRegistry(ctx, menuClient, publisher, fetchTimeout)
	registry.ExpireIdle(
		config.GetDuration("WIDGET_IDLE_TTL", 30*time.Minute),
		config.GetDuration("WIDGET_SWEEP_INTERVAL", time.Minute),
	)
	qr := service.DefaultQRGenerator{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")}
	handler := httpapi.NewHandler(registry, qr)

	return httpapi.NewRouter(handler), registry, cleanup
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, registry, cleanup := buildHandler(ctx)
	defer cleanup()
	defer registry.Close()

	httpapi.StartServer(config.GetEnv("MENU_SVC_ADDR", ":8081"), handler)
}
