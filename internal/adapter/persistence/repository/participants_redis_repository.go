package repository

import (
	"context"

	"storefront_settlement/internal/domain/entities"
	"storefront_settlement/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	participantsKeyPrefix = "order:participants:"
	participantOwner      = "owner"
	participantPartner    = "partner"
)

// ParticipantsRedisRepository keeps one hash per order with the identities
// allowed to follow it live. The delivery service writes it, the gateway
// reads it.
type ParticipantsRedisRepository struct {
	rdb redis.Cmdable
}

var _ interfaces.IOrderParticipantsRepository = (*ParticipantsRedisRepository)(nil)

func NewParticipantsRedisRepository(rdb redis.Cmdable) *ParticipantsRedisRepository {
	return &ParticipantsRedisRepository{rdb: rdb}
}

func (r *ParticipantsRedisRepository) Get(ctx context.Context, orderID string) (entities.OrderParticipants, error) {
	fields, err := r.rdb.HGetAll(ctx, participantsKeyPrefix+orderID).Result()
	if err != nil {
		return entities.OrderParticipants{}, err
	}
	if len(fields) == 0 {
		return entities.OrderParticipants{}, nil
	}
	return entities.OrderParticipants{
		OrderID: orderID,
		Owner:   fields[participantOwner],
		Partner: fields[participantPartner],
	}, nil
}

func (r *ParticipantsRedisRepository) SetOwner(ctx context.Context, orderID, owner string) error {
	return r.rdb.HSet(ctx, participantsKeyPrefix+orderID, participantOwner, owner).Err()
}

func (r *ParticipantsRedisRepository) SetPartner(ctx context.Context, orderID, partner string) error {
	return r.rdb.HSet(ctx, participantsKeyPrefix+orderID, participantPartner, partner).Err()
}
