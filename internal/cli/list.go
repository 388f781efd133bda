package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/controller"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/render"
)

// newListCmd creates the non-interactive list command.
func newListCmd(env *appEnv) *cobra.Command {
	var flags ListFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the current page of posts",
		Long: `Prints one page of posts with its pagination control and status line.

--page, --page-size and --sort are applied exactly like the matching keys in
"postview browse", so the resulting view state is persisted and picked up by
the next run. Changing the page size or sort order returns to page 1 before
--page is applied.`,
		Example: `  # Print the persisted page
  postview list

  # Jump to the last page (clamped)
  postview list --page 9999

  # JSON for scripts
  postview list --page-size 50 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := flags.Validate(cmd); err != nil {
				return err
			}
			return runList(cmd.Context(), cmd, env, flags)
		},
	}

	flags.bind(cmd)
	return cmd
}

// runList applies the changed flags through the bridge and prints the result.
func runList(ctx context.Context, cmd *cobra.Command, env *appEnv, flags ListFlags) error {
	snap := &render.Snapshot{}
	sess, err := env.newSession(ctx, controller.NewBridge(), snap)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("sort") {
		order, _ := pagination.ParseSortOrder(flags.Sort)
		sess.bridge.ChangeSortOrder(ctx, order)
	}
	if changed("page-size") {
		sess.bridge.ChangePageSize(ctx, flags.PageSize)
	}
	if changed("page") {
		sess.bridge.RequestPage(ctx, flags.Page)
	}

	sess.ctrl.Render(ctx)
	return writeSnapshot(cmd.OutOrStdout(), env, snap, flags.Output, sess.ctrl.State().Offset())
}

func writeSnapshot(w io.Writer, env *appEnv, snap *render.Snapshot, output string, offset int) error {
	if output == render.FormatJSON {
		return render.WriteJSON(w, snap)
	}
	return render.WriteText(w, snap, render.TextOptions{
		Styled: env.isTerminal(w),
		Offset: offset,
	})
}
