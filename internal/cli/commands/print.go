package commands

import (
	"clonestore/internal/config"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"clonestore/internal/cli/api"
	"clonestore/internal/cli/repo/fs"
)

type printCmd struct{}

func (printCmd) Name() string        { return "print" }
func (printCmd) Description() string { return "Print a label for an object on the lab printer" }
func (printCmd) Usage() string       { return "print <id> [copies]" }

func (printCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]
	if _, err := routeForID(id); err != nil {
		return err
	}
	copies := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return ErrUsage
		}
		copies = n
	}
	token, err := (fs.TokenStore{}).Load()
	if err != nil {
		return fmt.Errorf("not logged in: %w", err)
	}
	endpoint := fmt.Sprintf("%s/print/%s/%s?copies=%d",
		strings.TrimRight(cfg.ServerURL, "/"), string(id[0]), id, copies)
	resp, body, err := api.PostJSON(endpoint, nil, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Printed %d label(s) for %s\n", copies, id)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("no object with identifier %s", id)
	case http.StatusBadGateway:
		return fmt.Errorf("printer unreachable: %s", strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(printCmd{}) }
