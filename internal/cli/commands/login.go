package commands

import (
	"clonestore/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
)

type authRequest struct {
	Token string `json:"token"`
}

type sessionTokenResponse struct {
	Type         string `json:"type"`
	SessionToken string `json:"sessionToken"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Exchange the access token for a session token" }
func (loginCmd) Usage() string       { return "login <access-token>" }

func (loginCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/auth"
	resp, body, err := api.PostJSON(endpoint, authRequest{Token: args[0]}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusForbidden {
		return errors.New("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var st sessionTokenResponse
	if err := json.Unmarshal(body, &st); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := (fs.TokenStore{}).Save(st.SessionToken); err != nil {
		return fmt.Errorf("saving session token: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
