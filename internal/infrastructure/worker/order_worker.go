// Package worker consume los eventos de pedidos creados y ejecuta la
// preparación: descuento de stock y paso del pedido a en proceso.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/infrastructure/rabbitmq"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

const idempotencyTTL = 24 * time.Hour

// OrderWorker consumidor de la cola de pedidos creados. Usa Redis para no
// procesar dos veces el mismo pedido ante reentregas del broker.
type OrderWorker struct {
	channel     *amqp.Channel
	txRunner    checkout.TxRunner
	redisClient *goredis.Client
	log         *logger.Logger
	done        chan struct{}
}

func NewOrderWorker(
	ch *amqp.Channel,
	txRunner checkout.TxRunner,
	redisClient *goredis.Client,
	log *logger.Logger,
) *OrderWorker {
	return &OrderWorker{
		channel:     ch,
		txRunner:    txRunner,
		redisClient: redisClient,
		log:         log,
		done:        make(chan struct{}),
	}
}

// Start arranca el consumo en una goroutine. Parar con Stop o cancelando ctx.
func (w *OrderWorker) Start(ctx context.Context) error {
	msgs, err := w.channel.Consume(rabbitmq.OrderQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("iniciar consumo: %w", err)
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				w.processMessage(ctx, msg)
			case <-w.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	w.log.Info().Msg("worker de pedidos iniciado")
	return nil
}

func (w *OrderWorker) Stop() { close(w.done) }

func (w *OrderWorker) processMessage(ctx context.Context, msg amqp.Delivery) {
	var placed dto.OrderPlacedMessage
	if err := json.Unmarshal(msg.Body, &placed); err != nil {
		w.log.Error().Err(err).Msg("evento de pedido ilegible")
		_ = msg.Nack(false, false)
		return
	}

	log := w.log.With().Str("order_id", placed.OrderID).Str("order_number", placed.OrderNumber).Logger()

	idempotencyKey := "order_processed:" + placed.OrderID
	exists, err := w.redisClient.Exists(ctx, idempotencyKey).Result()
	if err != nil {
		log.Error().Err(err).Msg("comprobar idempotencia")
		_ = msg.Nack(false, true)
		return
	}
	if exists > 0 {
		log.Info().Msg("pedido ya procesado, se omite")
		_ = msg.Ack(false)
		return
	}

	if err := w.processOrder(ctx, placed.OrderID); err != nil {
		log.Error().Err(err).Msg("fallo procesando pedido")
		_ = msg.Nack(false, false) // a la DLQ
		return
	}

	if err := w.redisClient.Set(ctx, idempotencyKey, "1", idempotencyTTL).Err(); err != nil {
		log.Error().Err(err).Msg("marcar idempotencia")
	}

	_ = msg.Ack(false)
	log.Info().Msg("pedido procesado")
}

// processOrder descuenta el stock de cada línea y pasa el pedido a en
// proceso, todo en una transacción. Los pedidos que ya salieron del estado
// nuevo se dejan tal cual.
func (w *OrderWorker) processOrder(ctx context.Context, orderID string) error {
	return w.txRunner.RunOrders(ctx, func(orders repository.OrderRepository, products repository.ProductRepository) error {
		order, err := orders.GetByID(orderID)
		if err != nil {
			return fmt.Errorf("obtener pedido: %w", err)
		}
		if order == nil {
			return fmt.Errorf("pedido no encontrado: %s", orderID)
		}
		if order.Status != entity.OrderStatusNew {
			return nil
		}

		for _, item := range order.Items {
			if item.ProductID == "" {
				continue
			}
			if err := products.DecrementStock(item.ProductID, item.Quantity); err != nil {
				return fmt.Errorf("descontar stock de %s: %w", item.ProductID, err)
			}
		}

		found, err := orders.UpdateStatus(orderID, entity.OrderStatusProcessing, time.Now())
		if err != nil {
			return fmt.Errorf("pasar a en proceso: %w", err)
		}
		if !found {
			return fmt.Errorf("pedido no encontrado al actualizar: %s", orderID)
		}
		return nil
	})
}
