package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginInstallsToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status":"success","data":{"token":"tok-123","user":{"id":"u1","name":"Ana"}}}`)
		case "/api/v1/shopping/":
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"status":"success","data":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := New(server.URL)
	session, err := c.Login(context.Background(), "ana@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)

	_, err = c.ListShopping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestRequestIDHeaderSet(t *testing.T) {
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":[]}`)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListShopping(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
}

func TestErrorEnvelopeDecoded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusGone)
		fmt.Fprint(w, `{"error":"Invite expired","code":"INVITE_EXPIRED"}`)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.InviteInfo(context.Background(), "h1", "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invite expired")
	assert.Contains(t, err.Error(), "410")
}

func TestPlainTextErrorHandled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream unavailable")
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ListShopping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestCheckoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/create-checkout-session", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"url":"https://pay.example.com/cs_123"}`)
	}))
	defer server.Close()

	c := New(server.URL)
	url, err := c.CheckoutURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", url)
}

func TestSubscribeShoppingDeliversSnapshots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/shopping/stream", r.URL.Path)
		w.Header().Set("Content-Type", "text/event-stream")

		flusher := w.(http.Flusher)
		for _, items := range [][]ShoppingItem{
			{{ID: "s1", Name: "Milk"}},
			{{ID: "s1", Name: "Milk"}, {ID: "s2", Name: "Eggs", Done: true}},
		} {
			payload, _ := json.Marshal(map[string]any{"collection": "shopping", "items": items})
			fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := New(server.URL)
	snapshots, err := c.SubscribeShopping(ctx)
	require.NoError(t, err)

	first := <-snapshots
	require.Len(t, first, 1)
	assert.Equal(t, "Milk", first[0].Name)

	second := <-snapshots
	require.Len(t, second, 2)
	assert.True(t, second[1].Done)
}

func TestTaskRecurrenceDecodedFromServerShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":[{
			"id":"t1",
			"title":"Water the plants",
			"dueDate":"2024-01-01",
			"completed":false,
			"recurrence":{
				"frequency":"WEEKLY",
				"interval":2,
				"weekDays":[1,3],
				"endCondition":"ON_DATE",
				"endDate":"2024-06-30"
			}
		}]}`)
	}))
	defer server.Close()

	c := New(server.URL)
	tasks, err := c.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	rule := tasks[0].Recurrence
	require.NotNil(t, rule)
	assert.Equal(t, "WEEKLY", rule.Frequency)
	assert.Equal(t, 2, rule.Interval)
	assert.Equal(t, []int{1, 3}, rule.WeekDays)
	assert.Equal(t, "ON_DATE", rule.EndCondition, "end condition must survive decoding")
	assert.Equal(t, "2024-06-30", rule.EndDate)
}

func TestShoppingItemDecodedFromServerShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"success","data":[{
			"id":"s1","name":"Milk","category":"dairy","quantity":"2","unit":"l","completed":false
		}]}`)
	}))
	defer server.Close()

	c := New(server.URL)
	items, err := c.ListShopping(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Quantity)
	assert.Equal(t, "l", items[0].Unit)
}

func TestShoppingSessionEndToEnd(t *testing.T) {
	var created []map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/shopping/" {
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			created = append(created, body)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"status":"success","data":{"id":"srv-1","name":"Milk"}}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL)
	session := c.NewShoppingSession()

	item := ShoppingItem{ID: "local-1", Name: "Milk", Category: "dairy", Quantity: "1", Unit: "l"}
	session.Add(context.Background(), item)

	view := session.View()
	require.Len(t, view, 1, "visible before the request resolves")

	session.Wait()
	require.Len(t, created, 1)
	assert.Equal(t, "Milk", created[0]["name"])
	assert.Equal(t, "1", created[0]["quantity"])
	assert.Equal(t, "l", created[0]["unit"], "optional fields reach the server")
	assert.Len(t, session.View(), 1)
}
