package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
)

const callTimeout = 5 * time.Second

func cmdLoadStatus(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		res, err := deps.Invoker.Execute(ctx, domain.CommandStatus, "")
		if err != nil {
			return statusLoadedMsg{err: err}
		}
		if !res.Success() {
			return statusLoadedMsg{err: callFailure(res)}
		}

		var st serverStatus
		if err := json.Unmarshal(res.Response.Body, &st); err != nil {
			return statusLoadedMsg{err: fmt.Errorf("decode status: %w", err)}
		}
		return statusLoadedMsg{status: st}
	}
}

func cmdLoadLibrary(deps Deps) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		res, err := deps.Invoker.Execute(ctx, domain.CommandLibrary, "")
		if err != nil {
			return libraryLoadedMsg{err: err}
		}
		if !res.Success() {
			return libraryLoadedMsg{err: callFailure(res)}
		}

		var doc struct {
			Sounds []string `json:"sounds"`
		}
		if err := json.Unmarshal(res.Response.Body, &doc); err != nil {
			return libraryLoadedMsg{err: fmt.Errorf("decode library: %w", err)}
		}
		return libraryLoadedMsg{sounds: doc.Sounds}
	}
}

func cmdInvoke(deps Deps, cmd domain.Command, arg string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()

		res, err := deps.Invoker.Execute(ctx, cmd, arg)
		if err == nil && !res.Success() {
			err = callFailure(res)
		}
		return callDoneMsg{cmd: cmd, res: res, err: err}
	}
}

func callFailure(res domain.CallResult) error {
	if res.Error != nil {
		return fmt.Errorf("%s: %s", res.Error.Kind, res.Error.Message)
	}
	return fmt.Errorf("server returned %d", res.StatusCode)
}
