package command

import (
	"errors"
	"iranscbot/internal/core/domain"
	"iranscbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
	order    []string
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")

	if _, ok := r.commands[handler.GetCommand()]; !ok {
		r.order = append(r.order, handler.GetCommand())
	}
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

// ListCommands returns the registered commands in registration order. Names are returned without the leading slash,
// the way the platform's command menu expects them.
func (r *Registry) ListCommands() []domain.CommandInfo {
	infos := make([]domain.CommandInfo, 0, len(r.order))

	for _, name := range r.order {
		infos = append(infos, domain.CommandInfo{
			Command:     strings.TrimPrefix(name, "/"),
			Description: r.commands[name].Description(),
		})
	}

	return infos
}
