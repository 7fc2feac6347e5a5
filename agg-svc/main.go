package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	httpapi "restcafe/agg-svc/internal/api/http"
	"restcafe/agg-svc/internal/service"
	"restcafe/agg-svc/internal/storage"
	"restcafe/config"

	"github.com/redis/go-redis/v9"
)

func buildHandler(rdb *redis.Client) (http.Handler, *storage.Store) {
	handler, store := buildHandler(rdb)
	return httpapi.NewRouter(httpapi.NewHandler(store)), store
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	handler, store := buildHandler(rdb)

	if reader := config.NewKafkaReader(config.WidgetEventsTopic, "agg-svc"); reader != nil {
		defer reader.Close()
		go service.NewConsumer(reader, store).Start(ctx)
	} else {
		log.Println("KAFKA_BROKER not set, widget event consumer disabled")
	}

	addr := config.GetEnv("AGG_SVC_ADDR", ":8083")
	server := &http.Server{Addr: addr, Handler: handler}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	log.Printf("Aggregation Service starting on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
