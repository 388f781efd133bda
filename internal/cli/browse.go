package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/controller"
	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/render"
	"github.com/rshade/postview/internal/tui"
)

// newBrowseCmd creates the interactive browse command.
func newBrowseCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse posts in an interactive terminal UI",
		Long: `Opens a full-screen list of posts.

  ←/h  →/l      previous / next page
  home/g end/G  first / last page
  s             toggle newest / oldest first
  n             cycle page size
  ↑/k ↓/j       move the selection
  enter, esc    open / close the selected post
  ?             full help
  q             quit

When stdout is not a terminal the current page is printed as with "postview list".
Logs go to ~/.postview/postview.log unless logging.file is set.`,
		Annotations: map[string]string{annotationFileLogging: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !env.isTerminal(cmd.OutOrStdout()) {
				logger := logging.FromContext(ctx)
				logger.Debug().Str("component", "cli").Msg("stdout is not a terminal, printing list")
				return runList(ctx, cmd, env, ListFlags{Output: render.FormatText})
			}

			bridge := controller.NewBridge()
			model := tui.NewBrowseModel(ctx, bridge)
			sess, err := env.newSession(ctx, bridge, model)
			if err != nil {
				return err
			}
			sess.ctrl.Render(ctx)

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running browser: %w", err)
			}
			return nil
		},
	}
}
