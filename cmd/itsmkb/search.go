package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/request"
	"github.com/kailas-cloud/itsmkb/internal/domain/search/sorting"
)

func newSearchCmd(c *cli) *cobra.Command {
	var (
		types    []string
		tags     []string
		severity string
		status   string
		sortBy   string
		order    string
		limit    int
		offset   int
	)
	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Full-text search with filters, sorting and pagination",
		Long: `Search ranks items containing every query term by relevance, applies the
type, tag, severity and status filters, sorts and paginates.
Without --sort-by the configured default applies; "relevance" keeps the ranking.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.Request{
				Query:     strings.Join(args, " "),
				ITSMTypes: parseTypes(types),
				Tags:      tags,
				Severity:  severity,
				Status:    status,
				SortBy:    sorting.Field(sortBy),
				Limit:     limit,
				Offset:    offset,
			}
			if order != "" {
				req.SortOrder = sorting.ParseOrder(order)
			}
			return writeJSON(cmd.OutOrStdout(), c.app.search.Search(cmd.Context(), req))
		},
	}
	cmd.Flags().StringSliceVar(&types, "type", nil, "ITSM type filter (repeatable, any of)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag filter (repeatable, any of)")
	cmd.Flags().StringVar(&severity, "severity", "", "severity filter")
	cmd.Flags().StringVar(&status, "status", "", "status filter")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "created_at, updated_at, title, itsm_type, severity or relevance")
	cmd.Flags().StringVar(&order, "order", "", "asc or desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (0: no pagination)")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	return cmd
}

// parseTypes resolves category names case-insensitively. Unknown names are
// kept verbatim so they match nothing.
func parseTypes(raw []string) []itsm.Type {
	out := make([]itsm.Type, 0, len(raw))
	for _, r := range raw {
		if t, err := itsm.Parse(r); err == nil {
			out = append(out, t)
			continue
		}
		out = append(out, itsm.Type(r))
	}
	return out
}

func newQueryCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "query <query>",
		Short:   "Search with an inline query such as \"tag:apache AND type:Incident 503\"",
		Example: `  itsmkb query "tag:apache severity:high status:resolved timeout"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page := c.app.search.AdvancedSearch(cmd.Context(), strings.Join(args, " "))
			return writeJSON(cmd.OutOrStdout(), page)
		},
	}
}

func newFacetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Count items per type, tag, severity and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.search.Facets(cmd.Context(), nil))
		},
	}
}

func newSuggestCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Suggest titles and tags containing the input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := c.app.search.Suggestions(cmd.Context(), strings.Join(args, " "), limit)
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum suggestions (default: search.suggestion_limit)")
	return cmd
}

func newSimilarCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "similar <id>",
		Short: "Find items similar to the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.search.FindSimilar(cmd.Context(), args[0], limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum results (default: search.similar_limit)")
	return cmd
}
