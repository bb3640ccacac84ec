package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/delivery/http/controllers"
	"mentor-service/internal/app/delivery/http/middlewares"
	"mentor-service/internal/app/delivery/http/routers"
	"mentor-service/internal/app/drivers/database"
	"mentor-service/internal/app/drivers/logger"
	"mentor-service/internal/app/drivers/messaging"
	"mentor-service/internal/app/drivers/storage"
	"mentor-service/internal/app/services/core/availability"
	"mentor-service/internal/app/services/core/mentors"
	"mentor-service/internal/app/services/shared/events"
	"mentor-service/internal/app/services/shared/locker"
	"mentor-service/internal/app/services/shared/redis"
	minioStorage "mentor-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing mongo database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(ctx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing redis", zap.Error(err))
	}

	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing rabbitMQ", zap.Error(err))
	}

	minioClient, err := storage.NewMinio(ctx, driverConfig, internalConfig.Minio.BucketName, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error initializing minio", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorage(bootstrap.Minio)
	eventPublisher, err := events.NewAvailabilityEventService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.AvailabilityQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Mentor
	mentorRepository := mentors.NewMentorMongoRepository(bootstrap.MongoDB)
	mentorUsecase := mentors.NewMentorUsecase(mentorRepository, storageService, bootstrap.InternalConfig, bootstrap.Logger)
	mentorController := controllers.NewMentorController(bootstrap.Logger, mentorUsecase, bootstrap.InternalConfig)

	// Availability
	sessions := availability.NewSessions(
		mentorRepository.FindAvailability,
		availability.WithStrictValidation(bootstrap.InternalConfig.Availability.StrictValidation),
	)
	availabilityUsecase := availability.NewAvailabilityUsecase(sessions, mentorRepository, lockerService, eventPublisher, bootstrap.InternalConfig, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase, bootstrap.InternalConfig)

	sweeper := availability.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, sessions)
	sweeper.Start()
	bootstrap.WorkerStop = sweeper.Stop

	// Time
	timeController := controllers.NewTimeController(bootstrap.Logger, availability.NewTimeUsecase())

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, availabilityController, timeController, mentorController)
	return nil
}
