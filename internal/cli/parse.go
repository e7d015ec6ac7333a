package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/config"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/paths"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/script"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <base|file.txt>",
		Short: "Parse an annotated script and show its words and tags",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasSuffix(path, ".txt") {
		pp, err := paths.Resolve(path, config.Default())
		if err != nil {
			return err
		}
		path = pp.Script
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	doc := script.Parse(string(text))

	if outputJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Script: %s\n", path)
	cmd.Printf("Words: %d, Tags: %d\n", len(doc.Words), len(doc.Tags))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tKIND\tVALUE\tLINE\tPARAGRAPH")
	for _, tag := range doc.Tags {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n",
			tag.WordIndex, tag.Kind, tag.Value, tag.LineIndex, tag.ParagraphIndex)
	}
	w.Flush()

	for _, warning := range doc.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}
	return nil
}
