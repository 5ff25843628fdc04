package commands

import (
	"clonestore/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
	"clonestore/internal/model"
)

type searchResultResponse struct {
	Type    string               `json:"type"`
	Results []model.SearchResult `json:"results"`
}

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Search the catalog (modes: id, creator, description, any)" }
func (searchCmd) Usage() string       { return "search <mode> <query...>" }

func (searchCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	mode := args[0]
	query := strings.Join(args[1:], " ")
	token, err := (fs.TokenStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/search/" + url.PathEscape(mode) +
		"?query=" + url.QueryEscape(query)
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var sr searchResultResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(sr.Results) == 0 {
		fmt.Fprintln(Out, "No results")
		return nil
	}
	for _, r := range sr.Results {
		fmt.Fprintf(Out, "%-10s %-14s %-20s %s\n", r.ID, r.Type, r.CreatedBy, r.Description)
	}
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
