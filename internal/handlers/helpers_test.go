package handlers_test

import (
	"EventKeeper/internal/config"
	"EventKeeper/internal/handlers"
	"EventKeeper/internal/middleware"
	"EventKeeper/internal/model"
	"EventKeeper/internal/repo"
	"EventKeeper/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) Create(ctx context.Context, ev *model.Event) error {
	return m.Called(ctx, ev).Error(0)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Event); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) ListByDate(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Event); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, id int64, updates map[string]any) (*model.Event, error) {
	args := m.Called(ctx, id, updates)
	if v, ok := args.Get(0).(*model.Event); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64, cleanup func(images []string)) error {
	return m.Called(ctx, id, cleanup).Error(0)
}

var _ repo.EventRepository = (*mockEventRepo)(nil)

// --- Helpers ---
func newTestRouter(t *testing.T, ur repo.UserRepository, er repo.EventRepository) http.Handler {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:  "test-secret",
		MaxUploadMB: 1,
		UploadDir:   t.TempDir(),
	}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	eventSvc := service.NewEventService(er, ur, logger)
	uploadSvc := service.NewUploadService(cfg.UploadDir, logger)

	h := handlers.NewHandler(userSvc, eventSvc, uploadSvc, logger, cfg)
	return h.Router
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
