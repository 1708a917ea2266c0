package truckersmp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neppath/convoybot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient(srv.URL, 2*time.Second, 100)
	c.strategy.Delay = time.Millisecond
	return c
}

func TestClient_Event_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/123", r.URL.Path)
		assert.Contains(t, r.Header.Get("User-Agent"), "NepPath")
		fmt.Fprint(w, `{"error":false,"response":{
			"id":123,"name":"Winter Convoy","game":"ets2",
			"server":{"id":1,"name":"Event Server"},
			"departure":{"location":"Depot","city":"Calais"},
			"arrive":{"location":"Quarry","city":"Duisburg"},
			"meetup_at":"2025-12-13 19:30:00","start_at":"2025-12-13 20:00:00",
			"vtc":{"id":77,"name":"NepPath"}}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	event, err := c.Event(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, "Winter Convoy", event.Name)
	assert.Equal(t, "Calais", event.Departure.City)
	assert.Equal(t, "Duisburg", event.Arrive.City)
	assert.Equal(t, "NepPath", event.VTC.Name)
}

func TestClient_Event_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":true,"response":null}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.Event(context.Background(), 123)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Event_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	_, err := c.Event(context.Background(), 123)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Event_RetriesOnFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"error":false,"response":{"id":123,"name":"Winter Convoy"}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	event, err := c.Event(context.Background(), 123)

	require.NoError(t, err)
	assert.Equal(t, "Winter Convoy", event.Name)
	assert.Equal(t, 2, calls)
}

func TestClient_VTC_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vtc/77", r.URL.Path)
		fmt.Fprint(w, `{"error":false,"response":{
			"id":77,"name":"NepPath","tag":"NPT","members_count":1200,
			"recruitment":"Open","verified":true}}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	vtc, err := c.VTC(context.Background(), 77)

	require.NoError(t, err)
	assert.Equal(t, "NepPath", vtc.Name)
	assert.Equal(t, 1200, vtc.MembersCount)
	assert.True(t, vtc.Verified)
}

func TestClient_Events_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		fmt.Fprint(w, `{"error":false,"response":[
			{"id":1,"name":"Convoy A","vtc":{"id":77,"name":"NepPath"}},
			{"id":2,"name":"Convoy B","vtc":{"id":88,"name":"Other"}}]}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)

	events, err := c.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Convoy A", events[0].Name)
}

func TestDLCMap_Names(t *testing.T) {
	m := DLCMap{"304212": "Scandinavia", "558244": "Vive la France"}

	names := m.Names()

	assert.Len(t, names, 2)
	assert.Contains(t, names, "Scandinavia")
	assert.Contains(t, names, "Vive la France")
}
