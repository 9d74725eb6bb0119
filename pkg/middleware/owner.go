package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"show-scheduler/internal/data/entity"
	"show-scheduler/pkg/utils"
)

// OwnerResolver resolves a theatre owner through the profile -> cached
// owner -> cached user fallback chain. Satisfied by usecase.OwnerService.
type OwnerResolver interface {
	Resolve(ctx context.Context, ownerID, userID uuid.UUID) (*entity.TheatreOwner, error)
}

// OwnerContext resolves the acting theatre owner from the X-Owner-ID
// header (with X-User-ID as the fallback key) and stores the result in
// the request context for the owner-scoped handlers.
func OwnerContext(resolver OwnerResolver, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID := parseIDHeader(r, "X-Owner-ID")
			userID := parseIDHeader(r, "X-User-ID")
			if ownerID == uuid.Nil && userID == uuid.Nil {
				utils.ResponseUnauthorized(w, "Missing owner identity")
				return
			}

			owner, err := resolver.Resolve(r.Context(), ownerID, userID)
			if err != nil {
				logger.Error("Failed to resolve owner",
					zap.String("owner_id", ownerID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if owner == nil {
				utils.ResponseUnauthorized(w, "Unknown theatre owner")
				return
			}

			ctx := utils.SetOwnerContext(r.Context(), owner.ID, owner.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseIDHeader(r *http.Request, name string) uuid.UUID {
	raw := r.Header.Get(name)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
