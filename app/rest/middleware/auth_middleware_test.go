package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Bast8313/soundora/app/domain"
	mock_port "github.com/Bast8313/soundora/app/mocks"
	"github.com/Bast8313/soundora/app/utils/logger"
)

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	identity := &domain.Identity{ID: "user-1", Email: "alice@example.com"}

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(uc *mock_port.MockAuthUsecase)
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid bearer token passes through with user in context",
			authHeader: "Bearer token-abc",
			setupMock: func(uc *mock_port.MockAuthUsecase) {
				uc.EXPECT().
					UserFromToken(gomock.Any(), domain.AccessToken("token-abc")).
					Return(identity, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "raw token without Bearer prefix is accepted",
			authHeader: "token-abc",
			setupMock: func(uc *mock_port.MockAuthUsecase) {
				uc.EXPECT().
					UserFromToken(gomock.Any(), domain.AccessToken("token-abc")).
					Return(identity, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header is rejected without a provider call",
			authHeader: "",
			setupMock: func(uc *mock_port.MockAuthUsecase) {
				uc.EXPECT().UserFromToken(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token maps to 401",
			authHeader: "Bearer token-expired",
			setupMock: func(uc *mock_port.MockAuthUsecase) {
				uc.EXPECT().
					UserFromToken(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAuthError(domain.ErrorKindAuthentication, "token rejected", domain.ErrUnauthorized))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "provider outage maps to 502, not 401",
			authHeader: "Bearer token-abc",
			setupMock: func(uc *mock_port.MockAuthUsecase) {
				uc.EXPECT().
					UserFromToken(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAuthError(domain.ErrorKindNetwork, "connection refused", nil))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := mock_port.NewMockAuthUsecase(ctrl)
			tt.setupMock(uc)

			testLogger, err := logger.New("debug")
			require.NoError(t, err)

			mw := NewAuthMiddleware(uc, testLogger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			nextCalled := false
			handler := mw.RequireAuth()(func(c echo.Context) error {
				nextCalled = true
				return c.NoContent(http.StatusOK)
			})

			err = handler(c)

			if tt.wantNext {
				require.NoError(t, err)
				assert.True(t, nextCalled)
				got, ok := c.Get("user").(*domain.Identity)
				require.True(t, ok)
				assert.Equal(t, identity.ID, got.ID)
			} else {
				require.Error(t, err)
				httpErr, ok := err.(*echo.HTTPError)
				require.True(t, ok)
				assert.Equal(t, tt.wantStatus, httpErr.Code)
				assert.False(t, nextCalled)
			}
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	t.Run("anonymous request passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mock_port.NewMockAuthUsecase(ctrl)
		uc.EXPECT().UserFromToken(gomock.Any(), gomock.Any()).Times(0)

		mw := NewAuthMiddleware(uc, testLogger)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw.OptionalAuth()(func(c echo.Context) error {
			assert.Nil(t, c.Get("user"))
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token does not block the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		uc := mock_port.NewMockAuthUsecase(ctrl)
		uc.EXPECT().
			UserFromToken(gomock.Any(), domain.AccessToken("bad")).
			Return(nil, domain.NewAuthError(domain.ErrorKindAuthentication, "token rejected", domain.ErrUnauthorized))

		mw := NewAuthMiddleware(uc, testLogger)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw.OptionalAuth()(func(c echo.Context) error {
			assert.Nil(t, c.Get("user"))
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
