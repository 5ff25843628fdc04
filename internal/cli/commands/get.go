package commands

import (
	"bytes"
	"clonestore/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
	"clonestore/internal/model"
)

// routeForID maps an object identifier to its entity route by type tag.
func routeForID(id string) (string, error) {
	if id == "" {
		return "", ErrUsage
	}
	switch string(id[0]) {
	case model.TagPlasmid:
		return "plasmid", nil
	case model.TagMicroorganism:
		return "organism", nil
	case model.TagGeneric:
		return "generic", nil
	default:
		return "", fmt.Errorf("unknown type tag in identifier %q", id)
	}
}

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Fetch an object by its identifier" }
func (getCmd) Usage() string       { return "get <id>" }

func (getCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]
	route, err := routeForID(id)
	if err != nil {
		return err
	}
	token, err := (fs.TokenStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/" + route + "/" + id
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("no object with identifier %s", id)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		pretty.Write(body)
	}
	fmt.Fprintln(Out, pretty.String())
	return nil
}

func init() { RegisterCmd(getCmd{}) }
