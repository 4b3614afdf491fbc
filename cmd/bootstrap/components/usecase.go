package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseEngineModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewValidator,
)

var usecaseEngineModule = fx.Module("usecase/engine",
	fx.Provide(
		usecase.NewBookingEngine,
	),
)
