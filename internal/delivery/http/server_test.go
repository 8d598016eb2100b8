package http

import (
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"socialnet/config"
	"socialnet/internal/delivery/http/middleware"
	"socialnet/internal/delivery/http/router"
	"socialnet/internal/delivery/http/router/handler"
	mockService "socialnet/internal/mocks/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

type nopLifecycle struct{}

func (nopLifecycle) Append(fx.Hook) {}

func newTestServer(t *testing.T) *httpServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.DiscardHandler)

	routerParams := router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{Logger: logger}),
		UserHandler:     handler.NewUserHandler(handler.UserHandlerParams{Logger: logger}),
		PostHandler:     handler.NewPostHandler(handler.PostHandlerParams{Logger: logger}),
		CommentHandler:  handler.NewCommentHandler(handler.CommentHandlerParams{Logger: logger}),
		ReactionHandler: handler.NewReactionHandler(handler.ReactionHandlerParams{Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(mockService.NewMockTokenCodec(t)),
	}

	srv, err := NewServer(ServerParams{
		Lc:           nopLifecycle{},
		Cfg:          cfg,
		Logger:       logger,
		RouterParams: routerParams,
	})
	require.NoError(t, err)

	return srv.(*httpServer)
}

func TestServer_SecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.server.ServeHTTP(rec, req)

	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
