package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// RoundRepository announces finished rounds. Results are published, never stored.
type RoundRepository interface {
	Publish(ctx context.Context, result *entity.RoundResult) error
}

type dbRound struct {
	client  *redis.Client
	channel string
}

func NewRoundRepository(client *redis.Client, channel string) RoundRepository {
	return &dbRound{
		client:  client,
		channel: channel,
	}
}

func (that *dbRound) Publish(ctx context.Context, result *entity.RoundResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal round result: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish round result: %w", err)
	}

	return nil
}
