package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/auth"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/config"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/data"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/db"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/events"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/handler"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/middleware"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/storage"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/validation"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/logging"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/pkg/metadata"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		panic(fmt.Sprintf("cannot create config: %v", err))
	}

	logger, err := logging.NewFromEnv(cfg.Env)
	if err != nil {
		panic(fmt.Sprintf("cannot create logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()
	ctx = logging.ContextWithLogger(ctx, logger)

	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()
	statsCache := cache.NewRedisCache(rdb)
	blocklist := cache.NewTokenBlocklist(rdb)

	s3Client, err := storage.NewClient(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create s3 client", zap.Error(err))
	}
	fileStore := storage.NewFileStore(s3Client, cfg.S3Bucket, cfg.PresignTTL)
	if err := fileStore.EnsureBucket(ctx); err != nil {
		logger.Fatal(ctx, "cannot prepare bucket", zap.String("bucket", cfg.S3Bucket), zap.Error(err))
	}

	producer := events.NewProducer(events.Config{
		Brokers:        cfg.KafkaBrokers,
		EventsTopic:    cfg.KafkaEventsTopic,
		RemindersTopic: cfg.KafkaRemindersTopic,
	})
	defer func() { _ = producer.Close() }()

	teacherRepo := data.NewTeacherRepository(pool)
	classRepo := data.NewClassRepository(pool)
	studentRepo := data.NewStudentRepository(pool)
	examRepo := data.NewExamRepository(pool)
	submissionRepo := data.NewSubmissionRepository(pool)

	validator := validation.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(teacherRepo, auth.NewPasswordHasher(bcrypt.DefaultCost), tokens, blocklist, validator)
	classService := service.NewClassService(classRepo, validator, statsCache)
	studentService := service.NewStudentService(studentRepo, classRepo, examRepo, validator, statsCache)
	examService := service.NewExamService(examRepo, classRepo, validator, statsCache)
	submissionService := service.NewSubmissionService(
		submissionRepo, examRepo, studentRepo, fileStore, producer, statsCache, cfg.MaxUploadBytes,
	)
	gradingService := service.NewGradingService(submissionRepo, validator, producer, statsCache)
	statsService := service.NewStatsService(classRepo, examRepo, studentRepo, submissionRepo, statsCache, cfg.StatsCacheTTL)
	reminderService := service.NewReminderService(submissionRepo, producer, cfg.ReminderAge)

	authMiddleware := middleware.NewAuthMiddleware(tokens, blocklist)
	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, cfg.MaxUploadBytes+(1<<20))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	handler.NewAuthHandler(authService).RegisterRoutes(r, authMiddleware)
	handler.NewClassHandler(classService, studentService, examService).RegisterRoutes(r, authMiddleware)
	handler.NewExamHandler(examService, studentService, submissionService, cfg.MaxUploadBytes).RegisterRoutes(r, authMiddleware)
	handler.NewSubmissionHandler(submissionService, gradingService).RegisterRoutes(r, authMiddleware)
	handler.NewStatsHandler(statsService).RegisterRoutes(r, authMiddleware)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}
	go func() {
		logger.Info(ctx, "starting http server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	interceptor := grpc_middleware.ChainUnaryServer(
		metadata.NewMetadataUnaryInterceptor(),
		logging.NewUnaryLoggingInterceptor(logger),
	)
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logger.Fatal(ctx, "cannot listen for grpc", zap.Error(err))
	}
	go func() {
		logger.Info(ctx, "starting grpc health server", zap.String("addr", listener.Addr().String()))
		if err := grpcServer.Serve(listener); err != nil {
			logger.Error(ctx, "grpc server stopped", zap.Error(err))
		}
	}()

	worker := NewReminderWorker(reminderService, cfg.ReminderInterval)
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	<-ctx.Done()
	logger.Info(ctx, "shutting down")
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "http server forced to shut down", zap.Error(err))
	}
	grpcServer.GracefulStop()
	<-workerDone
	logger.Info(ctx, "server stopped")
}
