package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	classifyuc "github.com/kailas-cloud/itsmkb/internal/usecase/classify"
)

// textFlags are the title/content inputs shared by the classifier commands.
type textFlags struct {
	title   string
	content string
}

func (f *textFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "item title")
	cmd.Flags().StringVar(&f.content, "content", "", "item content")
}

// resolve lets positional arguments stand in for --title and --content.
func (f *textFlags) resolve(args []string) (string, string) {
	title, content := f.title, f.content
	if title == "" && len(args) > 0 {
		title = args[0]
	}
	if content == "" && len(args) > 1 {
		content = strings.Join(args[1:], " ")
	}
	return title, content
}

// classifyOutput adds the confidence level and the threshold below which
// text falls back to Other.
type classifyOutput struct {
	classifyuc.Result
	Level     classifyuc.Level `json:"level"`
	Threshold float64          `json:"threshold"`
}

func newClassifyCmd(c *cli) *cobra.Command {
	var f textFlags
	cmd := &cobra.Command{
		Use:   "classify [title] [content...]",
		Short: "Classify text into an ITSM category",
		Long: `Classify scores the title and content against every classification rule
and prints the winning category, its confidence and per-category scores.
Text that scores below the configured threshold is classified as Other.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, content := f.resolve(args)
			res := c.app.classifier.Classify(title, content)
			return writeJSON(cmd.OutOrStdout(), classifyOutput{
				Result:    res,
				Level:     classifyuc.ConfidenceLevel(res.Confidence),
				Threshold: c.app.classifier.Threshold(),
			})
		},
	}
	f.register(cmd)
	return cmd
}

func newSuggestTypeCmd(c *cli) *cobra.Command {
	var (
		f         textFlags
		threshold float64
	)
	cmd := &cobra.Command{
		Use:   "suggest-type [title] [content...]",
		Short: "List every ITSM category scoring at or above a threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := threshold
			if !cmd.Flags().Changed("threshold") {
				t = c.app.cfg.Classifier.SuggestThreshold
			}
			if t < 0 || t > 1 {
				return fmt.Errorf("threshold must be between 0 and 1, got %v", t)
			}
			title, content := f.resolve(args)
			return writeJSON(cmd.OutOrStdout(), c.app.classifier.SuggestITSMType(title, content, t))
		},
	}
	f.register(cmd)
	cmd.Flags().Float64Var(&threshold, "threshold", classifyuc.DefaultSuggestThreshold, "minimum score (default: classifier.suggest_threshold)")
	return cmd
}

func newExplainCmd(c *cli) *cobra.Command {
	var f textFlags
	cmd := &cobra.Command{
		Use:   "explain [title] [content...]",
		Short: "Show which keywords of each rule matched",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, content := f.resolve(args)
			return writeJSON(cmd.OutOrStdout(), c.app.classifier.MatchingDetails(title, content))
		},
	}
	f.register(cmd)
	return cmd
}

func newTypesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Describe the ITSM categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.classifier.TypeDescriptions())
		},
	}
}
