package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/gogevgelija/gogevgelija-backend/config"
	"github.com/gogevgelija/gogevgelija-backend/internal/auth"
	"github.com/gogevgelija/gogevgelija-backend/internal/i18n"
)

func negotiate(t *testing.T, cfg *config.Config, setup func(c *gin.Context), target string) i18n.Lang {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got i18n.Lang
	r := gin.New()
	r.GET("/probe", func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		Language(cfg)(c)
		got = LangFromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLanguageQueryParamWins(t *testing.T) {
	cfg := &config.Config{DefaultLanguage: "en"}

	lang := negotiate(t, cfg, func(c *gin.Context) {
		c.Set("user", auth.User{Profile: &auth.Profile{Language: "en"}})
		c.Request.Header.Set("Accept-Language", "en-US")
	}, "/probe?lang=mk")

	assert.Equal(t, i18n.LangMK, lang)
}

func TestLanguageProfilePreference(t *testing.T) {
	cfg := &config.Config{DefaultLanguage: "en"}

	lang := negotiate(t, cfg, func(c *gin.Context) {
		c.Set("user", auth.User{Profile: &auth.Profile{Language: "mk"}})
	}, "/probe")

	assert.Equal(t, i18n.LangMK, lang)
}

func TestLanguageAcceptHeader(t *testing.T) {
	cfg := &config.Config{DefaultLanguage: "en"}

	lang := negotiate(t, cfg, func(c *gin.Context) {
		c.Request.Header.Set("Accept-Language", "mk-MK,mk;q=0.9,en;q=0.8")
	}, "/probe")

	assert.Equal(t, i18n.LangMK, lang)
}

func TestLanguageFallsBackToDefault(t *testing.T) {
	assert.Equal(t, i18n.LangEN, negotiate(t, &config.Config{DefaultLanguage: "en"}, nil, "/probe"))
	assert.Equal(t, i18n.LangMK, negotiate(t, &config.Config{DefaultLanguage: "mk"}, nil, "/probe"))
}

func TestLanguageIgnoresUnknownCodes(t *testing.T) {
	cfg := &config.Config{DefaultLanguage: "en"}

	lang := negotiate(t, cfg, func(c *gin.Context) {
		c.Request.Header.Set("Accept-Language", "de-DE,de;q=0.9")
	}, "/probe?lang=fr")

	assert.Equal(t, i18n.LangEN, lang)
}
