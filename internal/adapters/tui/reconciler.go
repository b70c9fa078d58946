package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/compass/internal/core/domain"
	"go.trai.ch/compass/internal/core/ports"
)

// Reconciler implements ports.Reconciler by sending messages to a running program.
type Reconciler struct {
	send func(tea.Msg)
}

// NewReconciler creates a Reconciler delivering to send, typically (*tea.Program).Send.
func NewReconciler(send func(tea.Msg)) *Reconciler {
	return &Reconciler{send: send}
}

// OnLoadingChange forwards the loading state.
func (r *Reconciler) OnLoadingChange(loading bool) {
	r.send(MsgLoading{Loading: loading})
}

// OnSuccess forwards the payload.
func (r *Reconciler) OnSuccess(payload *domain.Payload) {
	r.send(MsgSuccess{Payload: payload})
}

// OnError forwards the banner message.
func (r *Reconciler) OnError(message string) {
	r.send(MsgError{Message: message})
}

// SearchFunc runs a search, reporting to r.
type SearchFunc func(ctx context.Context, r ports.Reconciler) error

// Run shows m while search runs in the background and returns once the user quits.
// The search is cancelled if the user quits first; its error is returned otherwise.
func Run(ctx context.Context, m *Model, search SearchFunc, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	done := make(chan error, 1)
	go func() {
		err := search(ctx, NewReconciler(program.Send))
		program.Send(MsgDone{})
		done <- err
	}()

	_, runErr := program.Run()
	cancel()
	searchErr := <-done

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}
	if errors.Is(searchErr, context.Canceled) && !m.Done {
		return nil
	}
	return searchErr
}
