package cmd

import (
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/theopenlane/iocscope/internal/lookup"
)

// classifyCmd classifies an input and prints its lookup links
var classifyCmd = &cobra.Command{
	Use:   "classify <input...>",
	Short: "classify an indicator and list its lookup links",
	Long: `Classify an indicator (domain, IPv4, URL, email, hash or free text), print its
defanged form and every lookup link for its type. Multiple arguments are joined
with spaces and classified as one input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd.OutOrStdout(), strings.Join(args, " "), classifyOptions{
			JSON:       k.Bool("json"),
			Categories: k.Strings("category"),
			Stagger:    k.Duration("stagger"),
		})
	},
}

// classifyOptions control a single classify run
type classifyOptions struct {
	JSON       bool
	Categories []string
	Stagger    time.Duration
}

// init registers the classify command and its flags on the root command
func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().Bool("json", false, "output the lookup report as JSON")
	classifyCmd.Flags().StringSlice("category", nil, "only include sources in these categories (repeatable)")
	classifyCmd.Flags().Duration("stagger", lookup.DefaultStagger, "delay between links in the open-all schedule")
}

// runClassify plans the lookup for input and writes it to w
func runClassify(w io.Writer, input string, opts classifyOptions) error {
	planner := lookup.New(
		lookup.WithStagger(opts.Stagger),
		lookup.WithCategories(opts.Categories...),
	)

	report := planner.Plan(input)

	if opts.JSON {
		return writeJSON(w, report)
	}

	renderReport(w, report)

	return nil
}
