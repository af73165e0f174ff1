package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lapirenov/backend/internal/api/v1/middleware"
	"github.com/lapirenov/backend/internal/app"
	"github.com/lapirenov/backend/internal/config"
	"github.com/lapirenov/backend/internal/db/models"
	"github.com/lapirenov/backend/internal/db/repos"
	"github.com/lapirenov/backend/internal/services"
	"github.com/lapirenov/backend/internal/uploads"
)

const (
	testAdminEmail    = "admin@lapirenov.fr"
	testAdminPassword = "tres-secret"
)

var dbCounter atomic.Int64

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	uploads   *uploads.Manager
	uploadDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Admin{}))

	uploadDir := t.TempDir()
	manager, err := uploads.NewManager(uploadDir)
	require.NoError(t, err)

	cfg := config.Config{Env: "development", UploadDir: uploadDir}

	return &testEnv{
		app:       app.NewApp(cfg, db, manager),
		db:        db,
		uploads:   manager,
		uploadDir: uploadDir,
	}
}

func (e *testEnv) seedAdmin(t *testing.T) {
	t.Helper()
	auth := services.NewAuthService(repos.NewAdminRepository(e.db))
	_, err := auth.ProvisionAdmin(context.Background(), testAdminEmail, testAdminPassword)
	require.NoError(t, err)
}

// login authenticates the seeded admin and returns the session cookie.
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	resp := e.request(t, jsonRequest(t, fiber.MethodPost, "/api/admin/login", map[string]string{
		"email":    testAdminEmail,
		"password": testAdminPassword,
	}))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in login response")
	return nil
}

func (e *testEnv) request(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

type testFile struct {
	field       string
	name        string
	contentType string
	content     []byte
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, files ...testFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.name+`"`)
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
