package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewReservationStore,
		func(s *memstore.ReservationStore) usecase.ReservationStore { return s },
	),
)

// NewReservationStore lives for the whole process; its contents are reported
// and dropped on stop.
func NewReservationStore(lc fx.Lifecycle, logger *slog.Logger) *memstore.ReservationStore {
	store := memstore.NewReservationStore(logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			reservations, err := store.Snapshot(ctx)
			if err != nil {
				return err
			}
			logger.Info("discarding in-memory reservations", slog.Int("count", len(reservations)))
			return nil
		},
	})

	return store
}
