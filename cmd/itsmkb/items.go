package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/domain/itsm"
	"github.com/kailas-cloud/itsmkb/internal/domain/knowledge"
	"github.com/kailas-cloud/itsmkb/internal/logger"
)

func newAddCmd(c *cli) *cobra.Command {
	var (
		item     knowledge.Item
		itsmType string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create or replace a knowledge item",
		Long: `Add saves an item. Without --id a new item is created with a generated ID;
with an existing --id the item is replaced and keeps its creation time.
Without --type the item is classified automatically when classifier.auto_classify is on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if itsmType != "" {
				t, err := itsm.Parse(itsmType)
				if err != nil {
					return err
				}
				item.ITSMType = t
			}
			saved, err := c.app.knowledge.Save(cmd.Context(), item)
			if err != nil {
				return fmt.Errorf("save item: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), saved)
		},
	}
	cmd.Flags().StringVar(&item.ID, "id", "", "item ID (empty: create)")
	cmd.Flags().StringVar(&item.Title, "title", "", "item title (required)")
	cmd.Flags().StringVar(&item.Content, "content", "", "item content")
	cmd.Flags().StringVar(&itsmType, "type", "", "ITSM type (empty: auto-classify)")
	cmd.Flags().StringSliceVar(&item.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVar(&item.Severity, "severity", "", "critical, high, medium or low")
	cmd.Flags().StringVar(&item.Status, "status", "", "free-form status")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a knowledge item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.knowledge.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
		},
	}
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the knowledge base with a JSON array of items",
		Long:  `Import reads a JSON array of items from file, or from stdin when file is "-" or omitted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			in, err := openInput(cmd, path)
			if err != nil {
				return err
			}
			defer in.Close() //nolint:errcheck // read-only

			n, err := c.app.knowledge.Import(cmd.Context(), in)
			if err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Debug("import read", zap.String("source", path), zap.Int("items", n))
			return writeJSON(cmd.OutOrStdout(), map[string]int{"imported": n})
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write every knowledge item as a JSON array",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) == 0 || args[0] == "-" {
				return c.app.knowledge.Export(cmd.Context(), cmd.OutOrStdout())
			}
			f, err := os.Create(filepath.Clean(args[0]))
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer func() {
				err = errors.Join(err, f.Close())
			}()
			if err := c.app.knowledge.Export(cmd.Context(), f); err != nil {
				return err
			}
			logger.FromContext(cmd.Context()).Debug("export written", zap.String("path", args[0]))
			return nil
		},
	}
}

func newClearCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every knowledge item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear the knowledge base without --yes")
			}
			if err := c.app.knowledge.Clear(cmd.Context()); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]bool{"cleared": true})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm removal")
	return cmd
}

func newInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the item count and stored size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := c.app.knowledge.Info(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	}
}
