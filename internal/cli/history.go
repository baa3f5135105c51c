package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghtyrant/sinfonia-server/internal/domain"
	"github.com/ghtyrant/sinfonia-server/internal/infra/calllog"
)

func historyCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent calls, newest first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()

			recs, err := calllog.NewJSONLog(app.root).List(limit)
			if err != nil {
				return err
			}

			return printHistory(os.Stdout, recs, app.cfg.Output.Format)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")

	return cmd
}

func printHistory(w io.Writer, recs []domain.CallRecord, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	}

	if len(recs) == 0 {
		fmt.Fprintln(w, "No calls recorded yet.")
		return nil
	}

	for _, r := range recs {
		outcome := fmt.Sprintf("%d", r.StatusCode)
		if r.ErrorKind != "" {
			outcome = r.ErrorKind
		}
		fmt.Fprintf(w, "%s  %-10s %-4s %-40s %s (%dms)\n",
			r.At.Format("2006-01-02 15:04:05"), r.Command, r.Method, r.URL, outcome, r.LatencyMS)
	}
	return nil
}
