package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	OwnerIDKey   contextKey = "owner_id"
	OwnerNameKey contextKey = "owner_name"
)

func SetOwnerContext(ctx context.Context, ownerID uuid.UUID, name string) context.Context {
	ctx = context.WithValue(ctx, OwnerIDKey, ownerID.String())
	ctx = context.WithValue(ctx, OwnerNameKey, name)
	return ctx
}

func GetOwnerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(OwnerIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	str, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	ownerID, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}
	return ownerID, true
}

func GetOwnerNameFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(OwnerNameKey)
	if val == nil {
		return "", false
	}
	name, ok := val.(string)
	return name, ok
}
