//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/memstore"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/tests/common/builder"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Builds the real fx graph with a test config and a fixed clock.
// Returns router, store, clock and fx.App for lifecycle management.
// ------------------------------------------------------------
func buildE2EApp() (*gin.Engine, *memstore.ReservationStore, *clock.MockClock, *fx.App) {
	var (
		router *gin.Engine
		store  *memstore.ReservationStore
	)
	mockClock := clock.NewMockClock(builder.Now)

	app := fx.New(
		fx.Provide(
			config.NewTestConfig,
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Decorate(func(clock.Clock) clock.Clock { return mockClock }),
		fx.Populate(&router, &store),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, store, mockClock, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Store  *memstore.ReservationStore
	Clock  *clock.MockClock
	app    *fx.App
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest gives every test a fresh process: empty store, clock at builder.Now.
func (s *SharedSuite) SetupTest() {
	s.Router, s.Store, s.Clock, s.app = buildE2EApp()
	require.NotNil(s.T(), s.Router, "router setup failed")
	require.NotNil(s.T(), s.Store, "store setup failed")
}

func (s *SharedSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx app", "error", err.Error())
	}
}
