package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/controller"
	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/posts"
	"github.com/rshade/postview/internal/state"
)

// appEnv is the state shared by every command of one root command instance.
type appEnv struct {
	cfg       *config.Config
	ephemeral bool

	// isTerminal is swapped in tests.
	isTerminal func(w io.Writer) bool
}

// loadConfig reads the config file and applies the persistent flag overrides.
// Flags win over env, which wins over the file.
func (e *appEnv) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(configPathFlag(cmd))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("state-dir") {
		cfg.State.Dir, _ = flags.GetString("state-dir")
	}
	if flags.Changed("posts") {
		cfg.Posts.Count, _ = flags.GetInt("posts")
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return validateErr
	}

	e.ephemeral, _ = flags.GetBool("ephemeral")
	e.cfg = cfg
	return nil
}

// openViewStore returns the view store selected by config and flags.
func (e *appEnv) openViewStore() (*state.ViewStore, error) {
	if e.ephemeral {
		return state.NewViewStore(state.NewMemStore()), nil
	}

	dir, err := e.cfg.ResolveStateDir()
	if err != nil {
		return nil, fmt.Errorf("resolving state directory: %w", err)
	}
	kv, err := state.NewFileStore(dir)
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}
	return state.NewViewStore(kv), nil
}

// source returns the post collection.
func (e *appEnv) source() posts.Source {
	return posts.NewStaticSource(e.cfg.Posts.Count)
}

// session is a controller bound to a bridge and a sink.
type session struct {
	ctrl   *controller.Controller
	bridge *controller.Bridge
	store  *state.ViewStore
}

// newSession restores the persisted state and binds bridge to the controller.
// sink may be nil.
func (e *appEnv) newSession(ctx context.Context, bridge *controller.Bridge, sink controller.Sink) (*session, error) {
	store, err := e.openViewStore()
	if err != nil {
		return nil, err
	}

	items := e.source().Posts()
	ctrl := controller.New(ctx, items, store, sink)
	controller.Bind(bridge, ctrl)

	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("component", "cli").
		Int("posts", len(items)).
		Str("state_location", store.Location()).
		Msg("session ready")

	return &session{ctrl: ctrl, bridge: bridge, store: store}, nil
}
