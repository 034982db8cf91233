package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aegis-srv/internal/middleware"
	"aegis-srv/internal/model"
	"aegis-srv/internal/settings"
	"aegis-srv/pkg/log"
)

type fakeUseCase struct {
	updateIn settings.UpdateInput
	err      error
}

func (f *fakeUseCase) Get(context.Context) (settings.Settings, error) {
	return settings.Defaults(), f.err
}

func (f *fakeUseCase) Update(_ context.Context, in settings.UpdateInput) (settings.Settings, error) {
	f.updateIn = in
	s := settings.Defaults()
	if in.DefaultMode != nil {
		s.DefaultMode = *in.DefaultMode
	}
	return s, f.err
}

func (f *fakeUseCase) Reset(context.Context) (settings.Settings, error) {
	return settings.Defaults(), f.err
}

func serve(uc settings.UseCase, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup, middleware.New(log.NewNop(), nil, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetSettings(t *testing.T) {
	rec := serve(&fakeUseCase{}, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data settingsResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "both", body.Data.DefaultMode)
	assert.Equal(t, 50, body.Data.MaxResults)
	assert.Equal(t, []string{}, body.Data.TrustedAccounts)
}

func TestUpdateSettings(t *testing.T) {
	t.Run("maps patch fields", func(t *testing.T) {
		uc := &fakeUseCase{}
		rec := serve(uc, http.MethodPut, "/api/v1/settings", `{"default_mode":"piracy","auto_report":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, uc.updateIn.DefaultMode)
		assert.Equal(t, model.ScanModePiracy, *uc.updateIn.DefaultMode)
		require.NotNil(t, uc.updateIn.AutoReport)
		assert.True(t, *uc.updateIn.AutoReport)
		assert.Nil(t, uc.updateIn.MaxResults)
		assert.Nil(t, uc.updateIn.TrustedAccounts)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(&fakeUseCase{}, http.MethodPut, "/api/v1/settings", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		rec := serve(&fakeUseCase{err: settings.ErrInvalidMode}, http.MethodPut, "/api/v1/settings", `{"default_mode":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestResetSettings(t *testing.T) {
	rec := serve(&fakeUseCase{}, http.MethodDelete, "/api/v1/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
