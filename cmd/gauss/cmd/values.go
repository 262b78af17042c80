package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/utils/timex"
)

// parseValue reads a command-line value: now, today, an ISO value or a
// length-detected format
func parseValue(s string) (timex.Temporal, error) {
	switch strings.ToLower(s) {
	case "now":
		return svc.Now(), nil
	case "today":
		return svc.Today(), nil
	}
	if v, err := timex.ParseISO(s); err == nil {
		return v, nil
	}
	return timex.ParseAuto(s)
}

func printValue(w io.Writer, v any) {
	switch v := v.(type) {
	case timex.Temporal:
		fmt.Fprintln(w, v.String())
	case []string:
		fmt.Fprintln(w, strings.Join(v, ", "))
	default:
		fmt.Fprintln(w, v)
	}
}

// splitList splits comma-separated flag values
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
