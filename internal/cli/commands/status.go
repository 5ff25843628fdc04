package commands

import (
	"clonestore/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
)

type serverInfoResponse struct {
	Type    string `json:"type"`
	Version string `json:"version"`
}

type printerStatusResponse struct {
	Type   string `json:"type"`
	Online bool   `json:"online"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server version and printer status" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, _ []string) error {
	base := strings.TrimRight(cfg.ServerURL, "/")

	resp, body, err := api.GetJSON(base+"/", "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var info serverInfoResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Server: %s %s\n", info.Type, info.Version)

	token, err := (fs.TokenStore{}).Load()
	if err != nil {
		fmt.Fprintln(Out, "Printer: unknown (not logged in)")
		return nil
	}
	resp, body, err = api.GetJSON(base+"/print", token)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(Out, "Printer: unavailable (%s)\n", strings.TrimSpace(string(body)))
		return nil
	}
	var ps printerStatusResponse
	if err := json.Unmarshal(body, &ps); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if ps.Online {
		fmt.Fprintln(Out, "Printer: online")
	} else {
		fmt.Fprintln(Out, "Printer: offline")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
