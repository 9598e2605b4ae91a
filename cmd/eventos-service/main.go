package main

import (
	"fmt"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/radieske/eventos-service/internal/eventos/auth"
	"github.com/radieske/eventos-service/internal/eventos/grpcapi"
	"github.com/radieske/eventos-service/internal/eventos/httpapi"
	"github.com/radieske/eventos-service/internal/eventos/producer"
	"github.com/radieske/eventos-service/internal/eventos/repo"
	"github.com/radieske/eventos-service/internal/shared/config"
	"github.com/radieske/eventos-service/internal/shared/db"
	"github.com/radieske/eventos-service/internal/shared/kafka"
	"github.com/radieske/eventos-service/internal/shared/logger"
	"github.com/radieske/eventos-service/internal/shared/metrics"
	"github.com/radieske/eventos-service/pkg/eventospb"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// conecta com db Postgres e aplica migrações
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if err := db.MigrateUp(pg); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("postgres connected, schema up to date")

	// writer Kafka pro tópico de mudanças de eventos
	writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicEventoChanges)
	defer writer.Close()
	log.Info("kafka writer ready", zap.String("topic", cfg.TopicEventoChanges))

	// deps
	repository := repo.NewPostgres(pg)
	publ := producer.NewKafkaPublisher(writer, cfg.TopicEventoChanges)
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAlgorithm)

	// métricas Prometheus da API REST
	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "eventos_http_requests_total", Help: "requests por método/rota/status"},
		[]string{"method", "route", "status"},
	)
	prometheus.MustRegister(httpRequests)

	// sobe servidor de métricas e health
	metrics.StartMetricsServer(cfg.MetricsPort, pg.PingContext)
	log.Info("metrics/health server starting", zap.String("addr", ":"+cfg.MetricsPort))

	// gRPC: bind síncrono; porta ocupada derruba o processo na hora,
	// nada de interface secundária morta em silêncio
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatal("grpc listen", zap.String("port", cfg.GRPCPort), zap.Error(err))
	}

	grpcSrv := grpc.NewServer(
		grpc.UnaryInterceptor(grpcapi.AuthUnaryInterceptor(verifier)),
		grpc.NumStreamWorkers(10),
	)
	eventospb.RegisterEventoServiceServer(grpcSrv, grpcapi.NewServer(log, repository))

	go func() {
		log.Info("grpc server listening", zap.String("addr", lis.Addr().String()))
		if err := grpcSrv.Serve(lis); err != nil {
			log.Fatal("grpc server failed", zap.Error(err))
		}
	}()

	// HTTP público no foreground define o ciclo de vida do processo
	api := httpapi.NewServer(log, repository, verifier, publ)
	api.OnRequest = func(method, route string, status int) {
		httpRequests.WithLabelValues(method, route, fmt.Sprintf("%d", status)).Inc()
	}

	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	log.Info("eventos-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
