// Package rabbitmq publica y consume eventos de pedidos creados.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

const (
	// OrderQueueName cola de pedidos pendientes de preparación.
	OrderQueueName = "orders.placed"
	dlxExchange    = "orders.dlx"
	dlqQueueName   = "orders.placed.dlq"
)

// Setup declara la cola de pedidos con su DLX/DLQ y fija QoS a un mensaje en
// vuelo por consumidor.
func Setup(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(dlxExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declarar DLX: %w", err)
	}
	if _, err := ch.QueueDeclare(dlqQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declarar DLQ: %w", err)
	}
	if err := ch.QueueBind(dlqQueueName, OrderQueueName, dlxExchange, false, nil); err != nil {
		return fmt.Errorf("enlazar DLQ: %w", err)
	}
	if _, err := ch.QueueDeclare(OrderQueueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    dlxExchange,
		"x-dead-letter-routing-key": OrderQueueName,
	}); err != nil {
		return fmt.Errorf("declarar cola de pedidos: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("fijar QoS: %w", err)
	}
	return nil
}

var _ checkout.OrderPublisher = (*Publisher)(nil)

// Publisher implementa checkout.OrderPublisher sobre un canal AMQP.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishOrderPlaced encola el evento de pedido creado como JSON persistente.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, msg dto.OrderPlacedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("serializar evento de pedido: %w", err)
	}
	err = p.ch.PublishWithContext(ctx, "", OrderQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publicar evento de pedido: %w", err)
	}
	return nil
}
