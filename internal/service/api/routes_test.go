package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/canary-server/internal/pkg/version"
	"github.com/darkkaiser/canary-server/internal/service/api/constants"
	canaryhandler "github.com/darkkaiser/canary-server/internal/service/api/handler/canary"
	systemhandler "github.com/darkkaiser/canary-server/internal/service/api/handler/system"
	"github.com/darkkaiser/canary-server/internal/service/api/model/system"
	"github.com/darkkaiser/canary-server/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// =============================================================================
// Helper Functions
// =============================================================================

func setupTestSystemHandler() *systemhandler.Handler {
	return systemhandler.New(version.Info{
		Version:     "test-version",
		Commit:      "f25b8bf",
		BuildDate:   "2026-10-01",
		BuildNumber: "1",
	})
}

func assertRoutesRegistered(t *testing.T, e *echo.Echo, expected map[string]string) {
	t.Helper()

	for path, method := range expected {
		found := false
		for _, r := range e.Routes() {
			if r.Path == path && r.Method == method {
				found = true
				break
			}
		}
		assert.True(t, found, "라우트 %s %s가 등록되어야 합니다", method, path)
	}
}

// =============================================================================
// Unit Tests: Individual Route Registration Functions
// =============================================================================

func TestRegisterCanaryRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	registerCanaryRoutes(e, canaryhandler.New(&bytes.Buffer{}))

	assertRoutesRegistered(t, e, map[string]string{
		"/canary": http.MethodGet,
		"/fisa1":  http.MethodGet,
	})
}

func TestRegisterSystemRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	registerSystemRoutes(e, setupTestSystemHandler())

	assertRoutesRegistered(t, e, map[string]string{
		"/health":  http.MethodGet,
		"/version": http.MethodGet,
	})
}

func TestRegisterSwaggerRoutes(t *testing.T) {
	t.Parallel()

	t.Run("Swagger UI 접근 가능 확인", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		registerSwaggerRoutes(e)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	})

	t.Run("API 문서에 카나리 엔드포인트 포함", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		registerSwaggerRoutes(e)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		doc := gjson.Parse(rec.Body.String())
		assert.True(t, doc.Get(`paths./canary.get`).Exists())
		assert.True(t, doc.Get(`paths./fisa1.get`).Exists())
		assert.True(t, doc.Get(`paths./health.get`).Exists())
	})
}

// =============================================================================
// Integration Tests: Complete Route Setup
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		path            string
		expectedStatus  int
		expectedConsole string
		verifyResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:            "카나리",
			path:            "/canary",
			expectedStatus:  http.StatusOK,
			expectedConsole: "version1\n",
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, constants.CanaryResponseBody, rec.Body.String())
			},
		},
		{
			name:            "카나리 반복 출력",
			path:            "/fisa1",
			expectedStatus:  http.StatusOK,
			expectedConsole: "reqRes()\ndata 값1\ndata 값2\ndata 값3\ndata 값4\ndata 값5\ndata 값6\ndata 값7\ndata 값8\ndata 값9\ndata 값10\n",
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, constants.CanaryResponseBody, rec.Body.String())
			},
		},
		{
			name:           "Health 체크",
			path:           "/health",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var healthResp system.HealthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &healthResp))
				assert.Equal(t, constants.HealthStatusHealthy, healthResp.Status)
				assert.GreaterOrEqual(t, healthResp.Uptime, int64(0))
			},
		},
		{
			name:           "Version 정보",
			path:           "/version",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var versionResp system.VersionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &versionResp))
				assert.Equal(t, "test-version", versionResp.Version)
				assert.Equal(t, "f25b8bf", versionResp.Commit)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			console := &bytes.Buffer{}

			e := echo.New()
			RegisterRoutes(e, setupTestSystemHandler(), canaryhandler.New(console))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedConsole, console.String())
			tt.verifyResponse(t, rec)
		})
	}
}

// =============================================================================
// Request Limits: 카나리 엔드포인트는 제한 없이 항상 성공해야 합니다.
// =============================================================================

func setupFullServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	RegisterRoutes(e, setupTestSystemHandler(), canaryhandler.New(&bytes.Buffer{}))
	return e
}

// 전역 로거 상태를 바꾸므로 t.Parallel()을 사용하지 않습니다.
func TestRegisterRoutes_CanaryIsNotRateLimited(t *testing.T) {
	testutil.CaptureLog(t)

	const requests = 100 // 버스트(40)를 충분히 초과

	for _, path := range []string{"/canary", "/fisa1"} {
		t.Run(path, func(t *testing.T) {
			e := setupFullServer(t)

			statusCounts := make(map[int]int)
			for i := 0; i < requests; i++ {
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

				statusCounts[rec.Code]++
				assert.Equal(t, constants.CanaryResponseBody, rec.Body.String())
			}

			assert.Equal(t, map[int]int{http.StatusOK: requests}, statusCounts)
		})
	}
}

func TestRegisterRoutes_SystemIsRateLimited(t *testing.T) {
	testutil.CaptureLog(t)

	e := setupFullServer(t)

	statusCounts := make(map[int]int)
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		statusCounts[rec.Code]++

		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get(constants.RetryAfter))
		}
	}

	assert.GreaterOrEqual(t, statusCounts[http.StatusOK], constants.DefaultRateLimitBurst)
	assert.Positive(t, statusCounts[http.StatusTooManyRequests], "버스트를 초과한 요청은 429로 거절되어야 합니다")

	// 시스템 라우트의 버킷이 소진되어도 카나리 엔드포인트는 영향을 받지 않습니다.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/canary", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_BodyLimit_Table(t *testing.T) {
	testutil.CaptureLog(t)

	largeBody := strings.Repeat("a", 129*1024)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{name: "카나리: 본문은 무시", path: "/canary", expectedStatus: http.StatusOK},
		{name: "카나리 반복 출력: 본문은 무시", path: "/fisa1", expectedStatus: http.StatusOK},
		{name: "시스템 라우트: 128KB 초과 시 413", path: "/health", expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupFullServer(t)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, strings.NewReader(largeBody)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, constants.CanaryResponseBody, rec.Body.String())
			}
		})
	}
}
