package commands

import (
	"clonestore/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
)

type relocateRequest struct {
	NewLocation string `json:"newLocation"`
}

type moveCmd struct{}

func (moveCmd) Name() string        { return "move" }
func (moveCmd) Description() string { return "Move an organism or generic object to a new location" }
func (moveCmd) Usage() string       { return "move <id> <new-location...>" }

func (moveCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	id := args[0]
	route, err := routeForID(id)
	if err != nil {
		return err
	}
	if route == "plasmid" {
		return fmt.Errorf("plasmids live in storage slots, not on the record; use the storage API")
	}
	newLocation := strings.Join(args[1:], " ")
	token, err := (fs.TokenStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/" + route + "/" + id + "/storageLocation"
	resp, body, err := api.PutJSON(endpoint, relocateRequest{NewLocation: newLocation}, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Moved %s to %s\n", id, newLocation)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("no object with identifier %s", id)
	case http.StatusConflict:
		return fmt.Errorf("location %q is already occupied", newLocation)
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(moveCmd{}) }
