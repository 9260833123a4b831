package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// DayInfo describes a registered day.
type DayInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// NewDaysCommand creates the days command.
func NewDaysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "days",
		Short:         "List available days",
		Args:          rootOpts.positional(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]DayInfo, 0, rootOpts.Registry.Len())
			for _, d := range rootOpts.Registry.Days() {
				infos = append(infos, DayInfo{Name: d.Name, Title: d.Title})
			}
			if rootOpts.Format == "json" {
				return rootOpts.formatter(cmd).Success(infos)
			}
			return outputDaysText(cmd.OutOrStdout(), infos)
		},
	}
}

func outputDaysText(w io.Writer, infos []DayInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Title)
	}
	return tw.Flush()
}
