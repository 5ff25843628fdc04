package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageRoutes_OccupyLookupVacate(t *testing.T) {
	ts := newTestServer(t)
	pid := createPlasmid(t, ts)

	loc := url.PathEscape("freezer 1 box 2")
	status, _ := ts.authed(t, http.MethodPut, "/storage/"+loc, map[string]string{"entry": pid, "host": "DH5a"})
	assert.Equal(t, http.StatusOK, status)

	status, body := ts.authed(t, http.MethodGet, "/storage/loc/"+loc, nil)
	assert.Equal(t, http.StatusOK, status)

	var msg struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Host string `json:"host"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &msg))
	assert.Equal(t, "storageLocationContent", msg.Type)
	assert.Equal(t, pid, msg.ID)
	assert.Equal(t, "DH5a", msg.Host)

	status, _ = ts.authed(t, http.MethodDelete, "/storage/"+loc, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = ts.authed(t, http.MethodGet, "/storage/loc/"+loc, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Storage location is empty")
}

func TestStorageRoutes_OccupyValidationAndConflict(t *testing.T) {
	ts := newTestServer(t)
	pid := createPlasmid(t, ts)

	// entry and host are mandatory
	status, _ := ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": "", "host": "DH5a"})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": pid, "host": ""})
	assert.Equal(t, http.StatusBadRequest, status)

	// unknown plasmid
	status, _ = ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": "pXX99", "host": "DH5a"})
	assert.Equal(t, http.StatusNotFound, status)

	// double occupancy
	status, _ = ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": pid, "host": "DH5a"})
	assert.Equal(t, http.StatusOK, status)
	status, _ = ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": pid, "host": "TOP10"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestStorageRoutes_LocationsFor(t *testing.T) {
	ts := newTestServer(t)
	pid := createPlasmid(t, ts)

	status, _ := ts.authed(t, http.MethodPut, "/storage/spot1", map[string]string{"entry": pid, "host": "DH5a"})
	assert.Equal(t, http.StatusOK, status)
	status, _ = ts.authed(t, http.MethodPut, "/storage/spot2", map[string]string{"entry": pid, "host": "TOP10"})
	assert.Equal(t, http.StatusOK, status)

	status, body := ts.authed(t, http.MethodGet, "/storage/id/"+pid, nil)
	assert.Equal(t, http.StatusOK, status)

	var msg struct {
		Type      string `json:"type"`
		Locations []struct {
			Location string `json:"location"`
			Host     string `json:"host"`
		} `json:"locations"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &msg))
	assert.Equal(t, "storageLocationList", msg.Type)
	assert.Len(t, msg.Locations, 2)
}
