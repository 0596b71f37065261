package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authmw "webeye/internal/api/middleware"
	"webeye/internal/config"
	"webeye/internal/models"
	"webeye/internal/testutil"
	"webeye/internal/utils"
)

type testServer struct {
	t   *testing.T
	cfg *config.Config
	db  *gorm.DB
	srv *Server
}

func newTestServer(t *testing.T, limiter authmw.Limiter) *testServer {
	t.Helper()
	cfg := config.LoadTestConfig()
	db := testutil.SetupTestDB(t)
	return &testServer{t: t, cfg: cfg, db: db, srv: NewServer(cfg, db, limiter)}
}

func (ts *testServer) do(method, path, body, token string, headers ...string) *httptest.ResponseRecorder {
	ts.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) user(email string, role models.UserRole) (*models.User, string) {
	ts.t.Helper()
	user := &models.User{Email: email, Password: "x", Name: email, Role: role}
	require.NoError(ts.t, ts.db.Create(user).Error)
	token, err := utils.GenerateAccessToken(user.UUID, ts.cfg.Auth.SecretKey, time.Hour)
	require.NoError(ts.t, err)
	return user, token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestResources_CreateThenDuplicate(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT","status":"active"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]interface{}](t, rec)
	_, err := uuid.Parse(created["uuid"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "MIT", created["name"])

	rec = ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT","status":"active"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exist")
}

func TestResources_ValidationError(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources", `{"status":"sideways"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[map[string]interface{}](t, rec)
	fields, ok := body["error"].(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "status")
	assert.EqualValues(t, http.StatusBadRequest, body["code"])
}

func TestResources_GetUpdateAndNodes(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[map[string]interface{}](t, rec)["uuid"].(string)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/resources/not-a-uuid", "", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/resources/"+uuid.NewString(), "", "").Code)

	rec = ts.do(http.MethodPatch, "/api/resources/"+id, `{"status":"down"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	updated := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "MIT", updated["name"])
	assert.Equal(t, "down", updated["status"])

	rec = ts.do(http.MethodPost, "/api/resources/nodes", `{"url":"https://mit.edu","resource_uuid":"`+id+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/resources/"+id+"/nodes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	nodes := decode[[]map[string]interface{}](t, rec)
	require.Len(t, nodes, 1)
	assert.Equal(t, "https://mit.edu", nodes[0]["url"])

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/resources/"+uuid.NewString()+"/nodes", "", "").Code)
}

func TestResources_NodeForUnknownResource(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources/nodes", `{"url":"https://mit.edu","resource_uuid":"`+uuid.NewString()+`"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var count int64
	require.NoError(t, ts.db.Model(&models.ResourceNode{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResources_DeleteRequiresAdmin(t *testing.T) {
	ts := newTestServer(t, nil)
	_, member := ts.user("member@example.com", models.UserRoleMember)
	_, admin := ts.user("admin@example.com", models.UserRoleAdmin)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	id := decode[map[string]interface{}](t, rec)["uuid"].(string)

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodDelete, "/api/resources/"+id, "", "").Code)
	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodDelete, "/api/resources/"+id, "", member).Code)
	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/api/resources/"+id, "", admin).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/resources/"+id, "", "").Code)
}

func TestResources_NodeRoutesAcceptTrailingSlash(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	id := decode[map[string]interface{}](t, rec)["uuid"].(string)

	rec = ts.do(http.MethodPost, "/api/resources/nodes/", `{"url":"https://mit.edu","resource_uuid":"`+id+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/resources/nodes/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)
}

func TestResources_RecreateAfterDelete(t *testing.T) {
	ts := newTestServer(t, nil)
	_, admin := ts.user("admin@example.com", models.UserRoleAdmin)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	id := decode[map[string]interface{}](t, rec)["uuid"].(string)
	rec = ts.do(http.MethodPost, "/api/resources/nodes", `{"url":"https://mit.edu","resource_uuid":"`+id+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/api/resources/"+id, "", admin).Code)

	rec = ts.do(http.MethodGet, "/api/resources/nodes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	newID := decode[map[string]interface{}](t, rec)["uuid"].(string)
	assert.NotEqual(t, id, newID)

	rec = ts.do(http.MethodPost, "/api/resources/nodes", `{"url":"https://mit.edu","resource_uuid":"`+newID+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/resources/nodes", "", "")
	nodes := decode[[]map[string]interface{}](t, rec)
	require.Len(t, nodes, 1)
	assert.Equal(t, newID, nodes[0]["resource_uuid"])
}

func TestResources_ZeroLimit(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")

	rec := ts.do(http.MethodGet, "/api/resources/?limit=0", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = ts.do(http.MethodGet, "/api/resources/", "", "")
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)
}

func TestReports_Flow(t *testing.T) {
	ts := newTestServer(t, nil)
	_, member := ts.user("member@example.com", models.UserRoleMember)
	_, admin := ts.user("admin@example.com", models.UserRoleAdmin)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	resourceID := decode[map[string]interface{}](t, rec)["uuid"].(string)

	body := `{"resource_uuid":"` + resourceID + `","status":"down","text":"no login","is_moderated":true}`
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, "/api/reports/", body, "").Code)

	rec = ts.do(http.MethodPost, "/api/reports/", body, member)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	report := decode[map[string]interface{}](t, rec)
	assert.NotEmpty(t, report["uuid"])
	assert.Equal(t, false, report["is_moderated"])
	reportID := report["uuid"].(string)

	rec = ts.do(http.MethodPost, "/api/reports/", `{"resource_uuid":"`+uuid.NewString()+`","status":"down"}`, member)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodGet, "/api/reports/", "", member).Code)

	rec = ts.do(http.MethodGet, "/api/reports/?is_moderated=false", "", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	listed := decode[[]map[string]interface{}](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, "MIT", listed[0]["resource_name"])

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/reports/?is_moderated=maybe", "", admin).Code)

	// not public until moderated
	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID+"/reports", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = ts.do(http.MethodPatch, "/api/reports/"+reportID, `{"is_moderated":true}`, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[map[string]interface{}](t, rec)
	assert.Equal(t, true, patched["is_moderated"])
	assert.Equal(t, "no login", patched["text"])

	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID+"/reports", "", "")
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = ts.do(http.MethodGet, "/api/reports/"+reportID, "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, resourceID, decode[map[string]interface{}](t, rec)["resource_uuid"])

	assert.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/api/reports/"+reportID, "", admin).Code)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/reports/"+reportID, "", admin).Code)
}

type denyAfter struct{ n int }

func (d *denyAfter) Allow(context.Context, string) (bool, error) {
	d.n--
	return d.n >= 0, nil
}

func TestReports_RateLimited(t *testing.T) {
	ts := newTestServer(t, &denyAfter{n: 1})
	_, member := ts.user("member@example.com", models.UserRoleMember)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	resourceID := decode[map[string]interface{}](t, rec)["uuid"].(string)
	body := `{"resource_uuid":"` + resourceID + `","status":"down"}`

	assert.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/reports/", body, member).Code)
	assert.Equal(t, http.StatusTooManyRequests, ts.do(http.MethodPost, "/api/reports/", body, member).Code)
}

func TestAuth_RegisterLoginAndMe(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/auth/users/", `{"email":"ann@example.com","password":"password1","name":"Ann"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	rec = ts.do(http.MethodPost, "/api/auth/users/", `{"email":"ann@example.com","password":"password1"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form := url.Values{"username": {"ann@example.com"}, "password": {"password1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login/access-token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	ts.srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decode[map[string]string](t, rec)
	assert.Equal(t, "bearer", token["token_type"])

	rec = ts.do(http.MethodPost, "/api/auth/login/access-token", `{"email":"ann@example.com","password":"nope"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/api/auth/users/me", "", token["access_token"])
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "ann@example.com", me["email"])
	assert.Equal(t, false, me["is_admin"])

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/auth/users/me", "", "").Code)
}

func TestAuth_TelegramLink(t *testing.T) {
	ts := newTestServer(t, nil)
	user, token := ts.user("ann@example.com", models.UserRoleMember)

	rec := ts.do(http.MethodGet, "/api/auth/users/telegram/generate_token", "", token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	botToken := decode[map[string]interface{}](t, rec)["token"].(string)

	body := `{"token":"` + botToken + `","chat_id":99}`
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodPost, "/api/auth/users/telegram/verify", body, "").Code)

	rec = ts.do(http.MethodPost, "/api/auth/users/telegram/verify", body, "", authmw.BotSecretHeader, ts.cfg.Bot.Secret)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var stored models.User
	require.NoError(t, ts.db.First(&stored, "uuid = ?", user.UUID).Error)
	require.NotNil(t, stored.TelegramChatID)
	assert.Equal(t, int64(99), *stored.TelegramChatID)

	rec = ts.do(http.MethodPost, "/api/auth/users/telegram/verify", body, "", authmw.BotSecretHeader, ts.cfg.Bot.Secret)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubscriptionsAndReviews(t *testing.T) {
	ts := newTestServer(t, nil)
	_, token := ts.user("ann@example.com", models.UserRoleMember)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	resourceID := decode[map[string]interface{}](t, rec)["uuid"].(string)

	rec = ts.do(http.MethodPost, "/api/subscriptions/", `{"resource_uuid":"`+resourceID+`"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	subID := decode[map[string]interface{}](t, rec)["uuid"].(string)

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodPost, "/api/subscriptions/", `{"resource_uuid":"`+resourceID+`"}`, token).Code)

	rec = ts.do(http.MethodPatch, "/api/subscriptions/"+subID, `{"is_active":false}`, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["is_active"])

	rec = ts.do(http.MethodGet, "/api/auth/users/me/subscriptions?resource_uuid="+resourceID, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = ts.do(http.MethodPost, "/api/reviews/", `{"resource_uuid":"`+resourceID+`","rating":4,"text":"ok"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID, "", "")
	assert.EqualValues(t, 4, decode[map[string]interface{}](t, rec)["rating"])

	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID+"/reviews", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reviews := decode[[]map[string]interface{}](t, rec)
	require.Len(t, reviews, 1)
	assert.Equal(t, "ann@example.com", reviews[0]["user_name"])
}

func TestStats_ChecksAndExport(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodPost, "/api/resources/", `{"name":"MIT"}`, "")
	resourceID := decode[map[string]interface{}](t, rec)["uuid"].(string)
	require.NoError(t, ts.db.Create(&models.Check{NodeUUID: uuid.NewString(), ResourceUUID: resourceID, OK: true, StatusCode: 200}).Error)

	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID+"/stats/checks?timedelta=600&max_count=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	buckets := decode[[]map[string]interface{}](t, rec)
	require.Len(t, buckets, 3)
	assert.EqualValues(t, 1, buckets[2]["total"])

	assert.Equal(t, http.StatusBadRequest, ts.do(http.MethodGet, "/api/resources/"+resourceID+"/stats/checks?timedelta=10", "", "").Code)

	rec = ts.do(http.MethodGet, "/api/resources/"+resourceID+"/stats/export", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
