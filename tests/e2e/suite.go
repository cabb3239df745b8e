//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"limited-drop-api/cmd/bootstrap"
	"limited-drop-api/cmd/bootstrap/components"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/tests/common/authtest"
	"limited-drop-api/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite boots the full HTTP app against real postgres and redis.
// Each subtest starts from a truncated, reseeded database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	JWT    *authtest.JWTHelper
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.info(t)
	rd := redisContainer.info(t)

	pool, dbCfg := createDatabase(t, pg)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.Addr = rd.Addr()

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
	s.JWT = authtest.NewJWTHelper(cfg.JWT)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
}

// startApp wires the production modules, swapping in the suite's pool and
// config. Kafka is configured but nothing on the HTTP path writes to it.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		bootstrap.MessagingModule,
		bootstrap.MetricsModule,
		bootstrap.PaymentModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}
