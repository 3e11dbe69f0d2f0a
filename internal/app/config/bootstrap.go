package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// JanitorStop if set is called during Shutdown before the drivers are closed
	JanitorStop func()
	// SessionsClose if set closes every open booking wizard
	SessionsClose func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.JanitorStop != nil {
		b.JanitorStop()
		log.Println("Successfully stopped booking session janitor")
	}

	if b.SessionsClose != nil {
		b.SessionsClose()
		log.Println("Successfully closed booking sessions")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.Logger != nil {
		// Sync on stdout may return EINVAL.
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
