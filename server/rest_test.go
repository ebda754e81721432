package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedintake/pkg/domain"
)

func apiCall(t *testing.T, srv *Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	res := map[string]any{}
	if strings.HasPrefix(strings.TrimSpace(w.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w.Code, res
}

const fullFormJSON = `{"requester_email":"u@x.com","requester_name":"Jane","feed_name":"%s",
"source_system":"Epic","vendor_name":"Press Ganey","target_table":"silver.pg","data_owner_email":"o@x.com",
"file_name_pattern":"PG_{YYYYMMDD}.csv","landing_zone_path":"/mnt/landing/pg/","file_format":"CSV",
"schedule_frequency":"Daily"}`

func TestAPI_Lifecycle(t *testing.T) {
	srv, _ := setupIntegration(t, 10)

	code, res := apiCall(t, srv, "POST", "/api/v1/requests", `{"action":"draft","form":{"requester_email":"u@x.com"}}`)
	require.Equal(t, http.StatusCreated, code)
	id, ok := res["id"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^REQ_\d{14}_[0-9a-f]{8}$`, id)
	assert.Equal(t, "http://intake.example.com/requests/"+id, res["url"])
	assert.Equal(t, "draft", res["status"])
	assert.Equal(t, "06:00", res["schedule_time"])
	assert.Equal(t, true, res["header_row"])

	code, res = apiCall(t, srv, "PUT", "/api/v1/requests/"+id,
		fmt.Sprintf(`{"action":"submit","form":%s}`, fmt.Sprintf(fullFormJSON, "Feed A")))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "submitted", res["status"])
	assert.Equal(t, ",", res["delimiter"])

	code, res = apiCall(t, srv, "POST", "/api/v1/requests/"+id+"/complete", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "complete", res["status"])

	code, res = apiCall(t, srv, "PUT", "/api/v1/requests/"+id, `{"action":"submit","form":{"requester_email":"u@x.com","feed_name":"Feed B"}}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, res["error"], domain.ErrLocked.Error())

	code, res = apiCall(t, srv, "GET", "/api/v1/requests/"+id, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Feed A", res["feed_name"])
	assert.Equal(t, "complete", res["status"])
}

func TestAPI_Errors(t *testing.T) {
	srv, svc := setupIntegration(t, 10)
	ctx := context.Background()

	t.Run("submit with missing fields", func(t *testing.T) {
		code, res := apiCall(t, srv, "POST", "/api/v1/requests", `{"action":"submit","form":{"requester_email":"u@x.com","feed_name":"x"}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, res["error"], "please fill in required fields")
		missing, ok := res["missing"].([]any)
		require.True(t, ok)
		assert.Contains(t, missing, "Vendor")
		assert.NotContains(t, missing, "Feed Name")
	})

	t.Run("draft without email", func(t *testing.T) {
		code, res := apiCall(t, srv, "POST", "/api/v1/requests", `{"action":"draft","form":{"feed_name":"x"}}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, []any{"Requester Email"}, res["missing"])
	})

	t.Run("not found", func(t *testing.T) {
		code, _ := apiCall(t, srv, "GET", "/api/v1/requests/REQ_missing", "")
		assert.Equal(t, http.StatusNotFound, code)
		code, _ = apiCall(t, srv, "POST", "/api/v1/requests/REQ_missing/complete", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("complete of draft", func(t *testing.T) {
		draft, err := svc.SaveDraft(ctx, domain.Form{RequesterEmail: "u@x.com"}, "")
		require.NoError(t, err)
		code, res := apiCall(t, srv, "POST", "/api/v1/requests/"+draft.ID+"/complete", "")
		assert.Equal(t, http.StatusConflict, code)
		assert.Contains(t, res["error"], "from draft to complete")
	})

	t.Run("bad action and body", func(t *testing.T) {
		code, res := apiCall(t, srv, "POST", "/api/v1/requests", `{"action":"publish","form":{}}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, res["error"], "invalid action")

		code, _ = apiCall(t, srv, "POST", "/api/v1/requests", `{bad json`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("storage failure is not exposed", func(t *testing.T) {
		im := testIntake()
		im.GetFunc = func(ctx context.Context, id string) (*domain.Request, error) {
			return nil, &domain.StorageError{Op: "get", Err: errors.New("database disk image is malformed")}
		}
		srv := New(testConfig(":8080", 10), im, nil, "test", false)
		code, res := apiCall(t, srv, "GET", "/api/v1/requests/REQ_1", "")
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "storage failure, please try again", res["error"])
	})
}

func TestAPI_List(t *testing.T) {
	srv, svc := setupIntegration(t, 10)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "a@x.com", "b@x.com"} {
		_, err := svc.SaveDraft(ctx, domain.Form{RequesterEmail: email}, "")
		require.NoError(t, err)
	}

	list := func(path string) (int, []map[string]any) {
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
		var res []map[string]any
		if w.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		}
		return w.Code, res
	}

	code, res := list("/api/v1/requests?email=a@x.com")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res, 2)
	for _, r := range res {
		assert.Equal(t, "a@x.com", r["requester_email"])
	}

	code, res = list("/api/v1/requests")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res, 3)

	code, res = list("/api/v1/requests?limit=1")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res, 1)

	code, res = list("/api/v1/requests?email=nobody@x.com")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, res)

	code, _ = list("/api/v1/requests?limit=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestErrorStatus(t *testing.T) {
	tbl := []struct {
		err  error
		code int
	}{
		{&domain.ValidationError{Missing: []string{"Feed Name"}}, http.StatusUnprocessableEntity},
		{fmt.Errorf("get request x: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("submit x: %w", domain.ErrLocked), http.StatusConflict},
		{fmt.Errorf("draft x: %w", &domain.TransitionError{From: domain.StatusSubmitted, To: domain.StatusDraft}), http.StatusConflict},
		{&domain.StorageError{Op: "update", Err: errors.New("disk full")}, http.StatusInternalServerError},
		{errors.New("something else"), http.StatusInternalServerError},
	}
	for i, tt := range tbl {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			assert.Equal(t, tt.code, errorStatus(tt.err))
		})
	}
}
