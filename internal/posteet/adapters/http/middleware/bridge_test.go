package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posteet/internal/posteet/adapters/http/middleware"
	"posteet/internal/posteet/config"
)

const testCookieName = "access_token"

func cookieConfig() *config.CookieConfig {
	return &config.CookieConfig{
		Name:   testCookieName,
		Secure: "0",
		MaxAge: 3600,
	}
}

// echoAuthApp возвращает приложение, отдающее заголовок Authorization,
// каким его видит нижестоящий обработчик.
func echoAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewCookieToHeader(testCookieName))
	app.Get("/echo", func(c fiber.Ctx) error {
		return c.SendString(c.Get(fiber.HeaderAuthorization))
	})
	return app
}

func TestCookieToHeader(t *testing.T) {
	t.Run("Синтез заголовка из cookie", func(t *testing.T) {
		app := echoAuthApp()

		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Bearer cookie-token", string(body))
	})

	t.Run("Заголовок имеет приоритет над cookie", func(t *testing.T) {
		app := echoAuthApp()

		req := httptest.NewRequest(http.MethodGet, "/echo", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer header-token")
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "cookie-token"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Bearer header-token", string(body))
	})

	t.Run("Без заголовка и cookie запрос проходит без ошибки", func(t *testing.T) {
		app := echoAuthApp()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/echo", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Empty(t, string(body))
	})
}

func findCookie(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestTokenToCookie(t *testing.T) {
	t.Run("Токен переносится из тела в cookie", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"access_token": "issued-token",
				"token_type":   "bearer",
			})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.NotContains(t, payload, "access_token")
		assert.Equal(t, "bearer", payload["token_type"])

		cookie := findCookie(t, resp, testCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "issued-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 3600, cookie.MaxAge)
	})

	t.Run("Ключ token распознается наравне с access_token", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{"token": "plain-token"})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		cookie := findCookie(t, resp, testCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "plain-token", cookie.Value)
	})

	t.Run("Из тела удаляются оба ключа токена", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"access_token": "primary",
				"token":        "secondary",
				"token_type":   "bearer",
			})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.NotContains(t, payload, "access_token")
		assert.NotContains(t, payload, "token")
		assert.Equal(t, "bearer", payload["token_type"])

		cookie := findCookie(t, resp, testCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "primary", cookie.Value)
	})

	t.Run("Пустой access_token уступает ключу token", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"access_token": "",
				"token":        "fallback-token",
			})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.NotContains(t, payload, "access_token")
		assert.NotContains(t, payload, "token")

		cookie := findCookie(t, resp, testCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, "fallback-token", cookie.Value)
	})

	t.Run("Пустой токен проходит без изменений", func(t *testing.T) {
		const raw = `{"access_token":""}`

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return c.Send([]byte(raw))
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("Статус ответа сохраняется", func(t *testing.T) {
		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"access_token": "issued-token"})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NotNil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("JSON без токена проходит байт-в-байт", func(t *testing.T) {
		const raw = `{"message":"no token here","count":3}`

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Get("/data", func(c fiber.Ctx) error {
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return c.Send([]byte(raw))
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/data", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("Невалидный JSON проходит байт-в-байт", func(t *testing.T) {
		const raw = `{"access_token": truncated`

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Get("/broken", func(c fiber.Ctx) error {
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return c.Send([]byte(raw))
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("JSON-массив проходит без изменений", func(t *testing.T) {
		const raw = `[{"access_token":"inside-array"}]`

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Get("/list", func(c fiber.Ctx) error {
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return c.Send([]byte(raw))
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/list", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("Не-JSON ответ проходит без изменений", func(t *testing.T) {
		const raw = "access_token=plain-text"

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Get("/text", func(c fiber.Ctx) error {
			return c.SendString(raw)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/text", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("Нестроковый токен проходит без изменений", func(t *testing.T) {
		const raw = `{"access_token":42}`

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cookieConfig()))
		app.Get("/odd", func(c fiber.Ctx) error {
			c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
			return c.Send([]byte(raw))
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/odd", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, string(body))
		assert.Nil(t, findCookie(t, resp, testCookieName))
	})

	t.Run("Флаг Secure берется из конфигурации", func(t *testing.T) {
		cfg := cookieConfig()
		cfg.Secure = "1"

		app := fiber.New()
		app.Use(middleware.NewTokenToCookie(cfg))
		app.Post("/login", func(c fiber.Ctx) error {
			return c.JSON(fiber.Map{"access_token": "issued-token"})
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		cookie := findCookie(t, resp, testCookieName)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
	})
}

// TestBridgePairRoundTrip проверяет связку мостов: токен, выданный через
// исходящий мост, на следующем запросе возвращается через входящий.
func TestBridgePairRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.NewTokenToCookie(cookieConfig()))
	app.Use(middleware.NewCookieToHeader(testCookieName))
	app.Post("/login", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"access_token": "round-trip-token"})
	})
	app.Get("/echo", func(c fiber.Ctx) error {
		return c.SendString(c.Get(fiber.HeaderAuthorization))
	})

	loginResp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	defer loginResp.Body.Close()

	cookie := findCookie(t, loginResp, testCookieName)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Bearer round-trip-token", string(body))
}
