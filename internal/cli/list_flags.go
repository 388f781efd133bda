package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/render"
)

// ErrInvalidOutput is returned for an unknown --output value.
var ErrInvalidOutput = errors.New("output must be 'text' or 'json'")

// ListFlags holds the list command flags. Zero values mean "not given".
type ListFlags struct {
	// Page is the 1-based page to show; out-of-range pages are clamped.
	Page int

	// PageSize must be one of pagination.AllowedPageSizes.
	PageSize int

	// Sort is "newest" or "oldest".
	Sort string

	// Output is "text" or "json".
	Output string
}

// bind registers the flags on cmd.
func (f *ListFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.Page, "page", 0, "page to show, clamped to the available pages")
	cmd.Flags().IntVar(&f.PageSize, "page-size", 0,
		fmt.Sprintf("posts per page (one of %s)", joinInts(pagination.AllowedPageSizes)))
	cmd.Flags().StringVar(&f.Sort, "sort", "", "sort order: newest or oldest")
	addOutputFlag(cmd, &f.Output)
}

// Validate rejects values the controller would refuse. It runs before any state is
// touched so a bad flag never half-applies.
func (f ListFlags) Validate(cmd *cobra.Command) error {
	if cmd.Flags().Changed("page") && f.Page < pagination.MinPage {
		return fmt.Errorf("%w: got %d", pagination.ErrInvalidPage, f.Page)
	}
	if cmd.Flags().Changed("page-size") && !pagination.IsAllowedPageSize(f.PageSize) {
		return fmt.Errorf("%w: got %d (allowed: %s)",
			pagination.ErrInvalidPageSize, f.PageSize, joinInts(pagination.AllowedPageSizes))
	}
	if cmd.Flags().Changed("sort") {
		if _, err := pagination.ParseSortOrder(f.Sort); err != nil {
			return err
		}
	}
	return validateOutput(f.Output)
}

// addOutputFlag registers --output.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "output", render.FormatText, "output format: text or json")
}

func validateOutput(output string) error {
	switch output {
	case render.FormatText, render.FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, output)
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
