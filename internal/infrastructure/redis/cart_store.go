// Package redis adaptadores sobre Redis: carrito con TTL y marcas de
// idempotencia del worker de pedidos.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// cartTTL tiempo de vida del carrito desde su última modificación.
const cartTTL = 7 * 24 * time.Hour

// CartStore implementa cart.CartStore con un hash por carrito:
// campo = id de producto, valor = cantidad.
type CartStore struct {
	client *goredis.Client
}

func NewCartStore(client *goredis.Client) *CartStore {
	return &CartStore{client: client}
}

func cartKey(key string) string { return "cart:" + key }

// Items devuelve las líneas del carrito como producto → cantidad.
func (s *CartStore) Items(ctx context.Context, key string) (map[string]int, error) {
	raw, err := s.client.HGetAll(ctx, cartKey(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: leer carrito: %w", err)
	}
	items := make(map[string]int, len(raw))
	for productID, v := range raw {
		qty, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		items[productID] = qty
	}
	return items, nil
}

// IncrementItem acumula by unidades en la línea y renueva el TTL.
func (s *CartStore) IncrementItem(ctx context.Context, key, productID string, by int) error {
	k := cartKey(key)
	if err := s.client.HIncrBy(ctx, k, productID, int64(by)).Err(); err != nil {
		return fmt.Errorf("redis: incrementar línea: %w", err)
	}
	return s.touch(ctx, k)
}

// SetItem fija la cantidad de la línea y renueva el TTL.
func (s *CartStore) SetItem(ctx context.Context, key, productID string, qty int) error {
	k := cartKey(key)
	if err := s.client.HSet(ctx, k, productID, qty).Err(); err != nil {
		return fmt.Errorf("redis: fijar línea: %w", err)
	}
	return s.touch(ctx, k)
}

// RemoveItem elimina la línea del producto.
func (s *CartStore) RemoveItem(ctx context.Context, key, productID string) error {
	if err := s.client.HDel(ctx, cartKey(key), productID).Err(); err != nil {
		return fmt.Errorf("redis: eliminar línea: %w", err)
	}
	return nil
}

// Clear elimina el carrito completo.
func (s *CartStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, cartKey(key)).Err(); err != nil {
		return fmt.Errorf("redis: vaciar carrito: %w", err)
	}
	return nil
}

func (s *CartStore) touch(ctx context.Context, fullKey string) error {
	if err := s.client.Expire(ctx, fullKey, cartTTL).Err(); err != nil {
		return fmt.Errorf("redis: renovar ttl: %w", err)
	}
	return nil
}
