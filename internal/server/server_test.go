package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kanban/internal/auth"
	"kanban/internal/cache"
	"kanban/internal/config"
	"kanban/internal/kanban"
	"kanban/internal/persistence"
	"kanban/internal/server"

	"github.com/DATA-DOG/go-sqlmock"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestNewRouter_AuthEnabled(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret-key"}
	router := server.NewRouter(cfg, kanban.NewStore(kanban.DefaultBoard()), nil)
	token, err := auth.GenerateToken("board-client", cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	// Act & Assert
	assert.Equal(t, http.StatusUnauthorized, get(router, "/api/board", "").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/board", token).Code)
	assert.Equal(t, http.StatusOK, get(router, "/health", "").Code)
}

func TestNewRouter_AuthDisabledAndNoTodos(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := server.NewRouter(&config.Config{}, kanban.NewStore(kanban.DefaultBoard()), nil)

	assert.Equal(t, http.StatusOK, get(router, "/api/board", "").Code)
	assert.Equal(t, http.StatusOK, get(router, "/api/drag", "").Code)
	assert.Equal(t, http.StatusNotFound, get(router, "/api/todos", "").Code)
}

func TestOpenBackends_Memory(t *testing.T) {
	b, err := server.OpenBackends(context.Background(), &config.Config{StorageBackend: config.BackendMemory})

	require.NoError(t, err)
	defer b.Close()
	assert.Nil(t, b.DB)
	assert.Nil(t, b.Redis)
	assert.IsType(t, &persistence.MemoryStore{}, b.Snapshots)
}

func TestOpenBackends_Redis(t *testing.T) {
	// Arrange
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cfg := &config.Config{StorageBackend: config.BackendRedis, RedisAddr: mr.Addr(), SnapshotKey: "kanban-storage"}

	// Act
	b, err := server.OpenBackends(context.Background(), cfg)

	// Assert
	require.NoError(t, err)
	defer b.Close()
	assert.IsType(t, &cache.SnapshotCache{}, b.Snapshots)

	store := persistence.NewBinding(b.Snapshots, cfg.SnapshotKey, time.Second).Attach(context.Background())
	store.AddColumn("Review")
	assert.True(t, mr.Exists("kanban-storage"))
}

func TestOpenBackends_RedisUnreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = server.OpenBackends(context.Background(), &config.Config{StorageBackend: config.BackendRedis, RedisAddr: addr})

	assert.Error(t, err)
}

func TestPostgresBackends_CacheUnreachableClosesDB(t *testing.T) {
	// Arrange
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	mock.ExpectClose()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	// Act
	b, err := server.PostgresBackends(context.Background(), &config.Config{
		StorageBackend: config.BackendPostgres,
		RedisAddr:      addr,
		CacheTTL:       time.Minute,
	}, gormDB)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.NoError(t, mock.ExpectationsWereMet())
}
