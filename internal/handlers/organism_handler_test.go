package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clonestore/internal/model"
)

func createOrganism(t *testing.T, ts *testServer, payload map[string]any) string {
	t.Helper()
	status, body := ts.authed(t, http.MethodPost, "/organism", payload)
	assert.Equal(t, http.StatusOK, status)

	var msg struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &msg))
	assert.NotEmpty(t, msg.ID)
	return msg.ID
}

func newOrganismPayload(creator, initials string) map[string]any {
	return map[string]any{
		"createdBy":      creator,
		"initials":       initials,
		"organism":       "E. coli DH5a",
		"resistance":     "amp",
		"timeOfCreation": time.Now().Unix(),
	}
}

func TestOrganismRoutes_CreateAndGet(t *testing.T) {
	ts := newTestServer(t)

	pid := createPlasmid(t, ts)

	payload := newOrganismPayload("Grace Hopper", "GH")
	payload["plasmid"] = pid
	payload["storageLocation"] = "freezer 2 box 4"
	id := createOrganism(t, ts, payload)

	status, body := ts.authed(t, http.MethodGet, "/organism/"+id, nil)
	assert.Equal(t, http.StatusOK, status)

	var msg struct {
		Type     string              `json:"type"`
		Organism model.Microorganism `json:"microorganism"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &msg))
	assert.Equal(t, "microorganism", msg.Type)
	assert.Equal(t, pid, msg.Organism.PlasmidID())
	assert.Equal(t, "freezer 2 box 4", msg.Organism.Location())
	assert.False(t, msg.Organism.Destroyed)
}

func TestOrganismRoutes_DanglingPlasmid(t *testing.T) {
	ts := newTestServer(t)

	payload := newOrganismPayload("Grace Hopper", "GH")
	payload["plasmid"] = "pXX99"
	status, _ := ts.authed(t, http.MethodPost, "/organism", payload)
	assert.Equal(t, http.StatusConflict, status)
}

func TestOrganismRoutes_Relocate(t *testing.T) {
	ts := newTestServer(t)

	payload := newOrganismPayload("Grace Hopper", "GH")
	payload["storageLocation"] = "rack A"
	id := createOrganism(t, ts, payload)

	status, _ := ts.authed(t, http.MethodPut, "/organism/"+id+"/storageLocation", map[string]string{"newLocation": "rack B"})
	assert.Equal(t, http.StatusOK, status)

	status, body := ts.authed(t, http.MethodGet, "/organism/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "rack B")

	// empty target is a validation error
	status, _ = ts.authed(t, http.MethodPut, "/organism/"+id+"/storageLocation", map[string]string{"newLocation": ""})
	assert.Equal(t, http.StatusBadRequest, status)

	// occupied target is a conflict
	other := newOrganismPayload("Ada Lovelace", "AL")
	other["storageLocation"] = "rack C"
	otherID := createOrganism(t, ts, other)
	status, _ = ts.authed(t, http.MethodPut, "/organism/"+otherID+"/storageLocation", map[string]string{"newLocation": "rack B"})
	assert.Equal(t, http.StatusConflict, status)
}

func TestOrganismRoutes_ArchiveKeepsLocation(t *testing.T) {
	ts := newTestServer(t)

	payload := newOrganismPayload("Grace Hopper", "GH")
	payload["storageLocation"] = "freezer 4 box 1"
	id := createOrganism(t, ts, payload)

	status, _ := ts.authed(t, http.MethodDelete, "/organism/"+id, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body := ts.authed(t, http.MethodGet, "/organism/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"archived":true`)
	assert.Contains(t, body, "freezer 4 box 1")
}
