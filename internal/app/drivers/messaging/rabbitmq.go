package messaging

import (
	"log"
	"mado-service/internal/app/config"
	"net"
	"net/url"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "mado-backend"

// NewRabbitMQ dials the broker that receives draft status events.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	amqpURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(amqpURL.String(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s: %s", amqpURL.Host, err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
