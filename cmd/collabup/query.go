package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0Anshu1/collabup-be/internal/transport/response"
	recommenduc "github.com/0Anshu1/collabup-be/internal/usecase/recommend"
)

func newQueryCmd(opts *rootOptions) *cobra.Command {
	var (
		topN    int
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "query <text>...",
		Short: "Rank records against a query and print the result",
		Example: `  collabup query machine learning bangalore
  collabup query --top-n 3 "react developer"
  collabup query --explain "fintech mentor"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			return runQuery(ctx, a.recommend, strings.Join(args, " "), topN, explain, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&topN, "top-n", "n", 0, "Maximum results per record type (default from config)")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print categorized tokens and sample scores instead of results")

	return cmd
}

func runQuery(
	ctx context.Context, svc *recommenduc.Service, text string, topN int, explain bool, out io.Writer,
) error {
	var v any
	if explain {
		report := svc.Debug(ctx, text)
		v = response.Debug(&report)
	} else {
		res, err := svc.Recommend(ctx, text, topN)
		if err != nil {
			return fmt.Errorf("recommend: %w", err)
		}
		v = response.Recommendation(&res)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
