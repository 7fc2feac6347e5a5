package main

import (
	"log"
	"net/http"

	"restcafe/api-gateway/internal/gateway"
	"restcafe/config"

	"github.com/rs/cors"
)

func newHandler() http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:  config.GetEnv("MENU_SVC_URL", "http://localhost:8081"),
		AggSvcURL:   config.GetEnv("AGG_SVC_URL", "http://localhost:8083"),
		FrontendDir: config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, gateway.NewProxyClient())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}

func main() {
	addr := config.GetEnv("GATEWAY_ADDR", ":8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, newHandler()))
}
