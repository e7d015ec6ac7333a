package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gracie007-cloud/automatic-lip-syncing/internal/config"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/paths"
	"github.com/gracie007-cloud/automatic-lip-syncing/internal/tools"
)

var checkStrict bool

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check external tool availability",
		RunE:  runCheck,
	}

	cmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when required tools are missing")

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfgPath, err := paths.ConfigFile()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	infos := tools.Probe(cmd.Context(), cfg.ToolOverrides())

	if outputJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printCheckTable(cmd, infos)
	}

	if checkStrict {
		var missing []string
		for _, info := range infos {
			if tools.Required(info.Name) && !info.Available {
				missing = append(missing, info.Name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("required tool(s) unavailable: %s", strings.Join(missing, ", "))
		}
	}
	return nil
}

func printCheckTable(cmd *cobra.Command, infos []tools.ToolInfo) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("TOOL")+"\t"+headerStyle.Render("STATUS")+"\tVERSION\tPATH")
	for _, info := range infos {
		status := "ok"
		if !info.Available {
			status = "missing"
		} else if info.Error != "" {
			status = "error"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			info.Name,
			toolStatusStyle(status).Render(status),
			info.Version,
			info.Path,
		)
	}
	w.Flush()
}
