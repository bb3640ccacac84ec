package config

import (
	"context"
	"errors"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop, when set, is called first so background sweeps finish before drivers close
	WorkerStop func()
}

// Shutdown stops workers and closes every driver. It keeps going after a
// failed close and returns all errors joined.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error

	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped background workers")
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing MongoDB")
		}
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing Redis")
		}
	}

	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		if err := b.RabbitMQ.Close(); err != nil {
			errs = append(errs, err)
		} else {
			b.Logger.Info("Successfully closing RabbitMQ")
		}
	}

	// Sync on stdout/stderr returns EINVAL on some platforms; that is not a shutdown failure.
	_ = b.Logger.Sync()

	return errors.Join(errs...)
}
