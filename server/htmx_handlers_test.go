package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedintake/pkg/domain"
)

func postForm(srv *Server, path string, values url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func getPage(srv *Server, path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, http.NoBody)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func fullValues(name string) url.Values {
	return url.Values{
		"requester_email": {"u@x.com"}, "requester_name": {"Jane"}, "feed_name": {name},
		"source_system": {"Epic"}, "vendor_name": {"Press Ganey"}, "target_table": {"silver.pg"},
		"data_owner_email": {"o@x.com"}, "file_name_pattern": {"PG_{YYYYMMDD}.csv"},
		"landing_zone_path": {"/mnt/landing/pg/"}, "file_format": {"Pipe-Delimited"},
		"schedule_frequency": {"Daily"}, "header_row": {"no"},
	}
}

func TestServer_formPageHandler(t *testing.T) {
	srv, svc := setupIntegration(t, 10)

	t.Run("empty email", func(t *testing.T) {
		w := getPage(srv, "/", false)
		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, "New request")
		assert.Contains(t, body, `name="feed_name"`)
		assert.Contains(t, body, "Feed Name *")
		assert.Contains(t, body, `value="06:00"`)
		assert.Contains(t, body, "Enter your email to see previous requests")
		assert.NotContains(t, body, "Mark Complete")
	})

	t.Run("with previous requests", func(t *testing.T) {
		_, err := svc.SaveDraft(context.Background(), domain.Form{RequesterEmail: "u@x.com", FeedName: "My Feed"}, "")
		require.NoError(t, err)

		w := getPage(srv, "/?email=u@x.com", false)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "📝 My Feed")
		assert.Contains(t, w.Body.String(), `value="u@x.com"`)
	})

	t.Run("htmx gets only the form", func(t *testing.T) {
		w := getPage(srv, "/", true)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `id="request-form"`)
		assert.NotContains(t, w.Body.String(), "<html")
	})
}

func TestServer_saveFormHandler(t *testing.T) {
	srv, svc := setupIntegration(t, 10)
	ctx := context.Background()

	t.Run("draft redirects to request page", func(t *testing.T) {
		w := postForm(srv, "/requests", url.Values{"requester_email": {"u@x.com"}, "action": {"draft"}}, false)
		require.Equal(t, http.StatusSeeOther, w.Code)
		location := w.Header().Get("Location")
		assert.Regexp(t, `^/requests/REQ_\d{14}_[0-9a-f]{8}\?done=draft$`, location)

		page := getPage(srv, location, false)
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Draft saved! Request ID: REQ_")
		assert.Contains(t, page.Body.String(), "📝 Unnamed")
	})

	t.Run("htmx submit returns form and sidebar", func(t *testing.T) {
		values := fullValues("Feed A")
		values.Set("action", "submit")
		w := postForm(srv, "/requests", values, true)
		require.Equal(t, http.StatusOK, w.Code)

		pushed := w.Header().Get("HX-Push-Url")
		require.True(t, strings.HasPrefix(pushed, "/requests/REQ_"))
		body := w.Body.String()
		assert.Contains(t, body, "Request submitted!")
		assert.Contains(t, body, "Next step: write your SQL code and commit it to Git.")
		assert.Contains(t, body, "Mark Complete")
		assert.Contains(t, body, `hx-swap-oob="true"`)
		assert.Contains(t, body, "📤 Feed A")

		stored, err := svc.Get(ctx, strings.TrimPrefix(pushed, "/requests/"))
		require.NoError(t, err)
		assert.Equal(t, domain.StatusSubmitted, stored.Status)
		assert.Equal(t, "|", stored.Delimiter)
		assert.False(t, stored.HeaderRow)
	})

	t.Run("submit with missing fields keeps entered values", func(t *testing.T) {
		values := url.Values{"requester_email": {"m@x.com"}, "feed_name": {"Half Done"}, "action": {"submit"}}
		w := postForm(srv, "/requests", values, true)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "please fill in required fields")
		assert.Contains(t, body, `value="Half Done"`)

		res, err := svc.LoadPrevious(ctx, "m@x.com")
		require.NoError(t, err)
		assert.Empty(t, res, "nothing persisted")
	})

	t.Run("locked request", func(t *testing.T) {
		req, err := svc.Submit(ctx, domain.Form{RequesterEmail: "u@x.com", RequesterName: "Jane", FeedName: "Locked Feed",
			SourceSystem: "s", VendorName: "v", TargetTable: "t", DataOwnerEmail: "o@x.com", FileNamePattern: "p",
			LandingZonePath: "/l", FileFormat: "CSV", ScheduleFrequency: "Weekly"}, "")
		require.NoError(t, err)
		_, err = svc.MarkComplete(ctx, req.ID)
		require.NoError(t, err)

		values := fullValues("Changed")
		values.Set("action", "draft")
		w := postForm(srv, "/requests/"+req.ID, values, false)
		assert.Equal(t, http.StatusConflict, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "locked for editing")
		assert.Contains(t, body, `value="Locked Feed"`)
		assert.NotContains(t, body, `value="Changed"`)

		stored, err := svc.Get(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "Locked Feed", stored.FeedName)

		page := getPage(srv, "/requests/"+req.ID, false)
		assert.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "fieldset disabled")
		assert.NotContains(t, page.Body.String(), "Save Draft")
		assert.NotContains(t, page.Body.String(), "Mark Complete")
	})

	t.Run("markup-like values kept and escaped", func(t *testing.T) {
		values := url.Values{"requester_email": {"u@x.com"}, "file_name_pattern": {"UCLA_<YYYYMMDD>.csv"},
			"notes": {"rows where a<b and c>d"}, "action": {"draft"}}
		w := postForm(srv, "/requests", values, false)
		require.Equal(t, http.StatusSeeOther, w.Code)

		page := getPage(srv, w.Header().Get("Location"), true)
		require.Equal(t, http.StatusOK, page.Code)
		body := page.Body.String()
		assert.Contains(t, body, "UCLA_&lt;YYYYMMDD&gt;.csv")
		assert.Contains(t, body, "rows where a&lt;b and c&gt;d")
		assert.NotContains(t, body, "<YYYYMMDD>")

		id := strings.TrimSuffix(strings.TrimPrefix(w.Header().Get("Location"), "/requests/"), "?done=draft")
		stored, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "UCLA_<YYYYMMDD>.csv", stored.FileNamePattern)
		assert.Equal(t, "rows where a<b and c>d", stored.Notes)
	})

	t.Run("unknown action", func(t *testing.T) {
		w := postForm(srv, "/requests", url.Values{"requester_email": {"u@x.com"}, "action": {"publish"}}, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		w := postForm(srv, "/requests/REQ_missing", url.Values{"requester_email": {"u@x.com"}, "action": {"draft"}}, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_completeFormHandler(t *testing.T) {
	srv, svc := setupIntegration(t, 10)
	ctx := context.Background()

	draft, err := svc.SaveDraft(ctx, domain.Form{RequesterEmail: "u@x.com", FeedName: "Draft Feed"}, "")
	require.NoError(t, err)

	t.Run("draft can't be completed", func(t *testing.T) {
		w := postForm(srv, "/requests/"+draft.ID+"/complete", url.Values{}, true)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `value="Draft Feed"`)
	})

	t.Run("submitted is completed", func(t *testing.T) {
		values := fullValues("Draft Feed")
		values.Set("action", "submit")
		w := postForm(srv, "/requests/"+draft.ID, values, false)
		require.Equal(t, http.StatusSeeOther, w.Code)

		w = postForm(srv, "/requests/"+draft.ID+"/complete", url.Values{}, false)
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/requests/"+draft.ID+"?done=complete", w.Header().Get("Location"))

		page := getPage(srv, w.Header().Get("Location"), false)
		assert.Contains(t, page.Body.String(), "Request marked as complete!")
		assert.Contains(t, page.Body.String(), "✅ Draft Feed")
	})

	t.Run("not found", func(t *testing.T) {
		w := postForm(srv, "/requests/REQ_missing/complete", url.Values{}, false)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stored request loaded once on failure", func(t *testing.T) {
		im := testIntake()
		im.MarkCompleteFunc = func(ctx context.Context, id string) (*domain.Request, error) {
			return nil, &domain.TransitionError{From: domain.StatusDraft, To: domain.StatusComplete}
		}
		im.GetFunc = func(ctx context.Context, id string) (*domain.Request, error) {
			return &domain.Request{ID: id, Status: domain.StatusDraft, RequesterEmail: "u@x.com", FeedName: "Mocked Feed"}, nil
		}
		im.LoadPreviousFunc = func(ctx context.Context, email string) ([]domain.Request, error) {
			return nil, nil
		}
		srv := New(testConfig(":8080", 10), im, nil, "test", false)

		w := postForm(srv, "/requests/REQ_1/complete", url.Values{}, true)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `value="Mocked Feed"`)
		assert.Len(t, im.GetCalls(), 1)
		assert.Len(t, im.MarkCompleteCalls(), 1)
	})
}

func TestServer_requestsListHandler(t *testing.T) {
	srv, svc := setupIntegration(t, 2)
	ctx := context.Background()

	for _, name := range []string{"one", "two", "three"} {
		_, err := svc.SaveDraft(ctx, domain.Form{RequesterEmail: "u@x.com", FeedName: name}, "")
		require.NoError(t, err)
	}

	w := getPage(srv, "/requests?email=u@x.com", true)
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "three")
	assert.Contains(t, body, "two")
	assert.NotContains(t, body, ">📝 one<", "limited by recent_limit")
	assert.Contains(t, body, "showing 2 of 3")
	assert.NotContains(t, body, "hx-swap-oob")

	w = getPage(srv, "/requests?email=nobody@x.com", true)
	assert.Contains(t, w.Body.String(), "No previous requests found")

	t.Run("storage failure", func(t *testing.T) {
		im := testIntake()
		im.LoadPreviousFunc = func(ctx context.Context, email string) ([]domain.Request, error) {
			return nil, &domain.StorageError{Op: "query by email", Err: errors.New("locked")}
		}
		srv := New(testConfig(":8080", 10), im, nil, "test", false)
		w := getPage(srv, "/requests?email=u@x.com", true)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "locked")
	})
}

func TestServer_requestPageHandler(t *testing.T) {
	srv, _ := setupIntegration(t, 10)

	w := getPage(srv, "/requests/REQ_missing", false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFormFromValues(t *testing.T) {
	form := formFromValues(url.Values{"requester_email": {"u@x.com"}, "feed_name": {"f"}, "notes": {"n"}})
	assert.Equal(t, "u@x.com", form.RequesterEmail)
	assert.Equal(t, "f", form.FeedName)
	assert.Equal(t, "n", form.Notes)
	assert.Nil(t, form.HeaderRow)

	form = formFromValues(url.Values{"header_row": {"yes"}})
	require.NotNil(t, form.HeaderRow)
	assert.True(t, *form.HeaderRow)

	form = formFromValues(url.Values{"header_row": {"No"}})
	require.NotNil(t, form.HeaderRow)
	assert.False(t, *form.HeaderRow)
}

func TestActionMessage(t *testing.T) {
	assert.Equal(t, "Draft saved! Request ID: REQ_1", actionMessage("draft", "REQ_1"))
	assert.Equal(t, "Request submitted! Request ID: REQ_1", actionMessage("submit", "REQ_1"))
	assert.Equal(t, "Request marked as complete! Request ID: REQ_1", actionMessage("complete", "REQ_1"))
	assert.Empty(t, actionMessage("", "REQ_1"))
}
