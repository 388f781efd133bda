package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/render"
)

// stateReport is the JSON shape of "state show".
type stateReport struct {
	Location  string               `json:"location"`
	Persisted bool                 `json:"persisted"`
	State     pagination.ViewState `json:"state"`
}

func newStateShowCmd(env *appEnv) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the persisted view state",
		Long: `Shows the persisted page, page size and sort order. When nothing valid is
stored the defaults that the next run would start from are shown instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			store, err := env.openViewStore()
			if err != nil {
				return err
			}

			v, ok := store.Load(cmd.Context())
			if !ok {
				v = pagination.DefaultViewState()
			}
			report := stateReport{Location: store.Location(), Persisted: ok, State: v}

			out := cmd.OutOrStdout()
			if output == render.FormatJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(report); encErr != nil {
					return fmt.Errorf("encoding state: %w", encErr)
				}
				return nil
			}

			source := "persisted"
			if !ok {
				source = "default"
			}
			_, _ = fmt.Fprintf(out, "Location:        %s\n", report.Location)
			_, _ = fmt.Fprintf(out, "Source:          %s\n", source)
			_, _ = fmt.Fprintf(out, "Current page:    %d\n", v.CurrentPage)
			_, _ = fmt.Fprintf(out, "Posts per page:  %d\n", v.PostsPerPage)
			_, _ = fmt.Fprintf(out, "Sort order:      %s\n", v.SortOrder)
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func newStateResetCmd(env *appEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted view state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := env.openViewStore()
			if err != nil {
				return err
			}
			if resetErr := store.Reset(cmd.Context()); resetErr != nil {
				return resetErr
			}
			cmd.Printf("View state reset (%s)\n", store.Location())
			return nil
		},
	}
}
