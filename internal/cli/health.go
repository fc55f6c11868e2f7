package cli

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long: `Check that the server is up and has a dictionary loaded.

With --wait the check is repeated until the server answers or the duration
passes, which is useful right after starting the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			check := func() error {
				return client.Get("/api/v1/health", &result)
			}
			if wait > 0 {
				const interval = 250 * time.Millisecond
				err := retry.Do(check,
					retry.Attempts(uint(wait/interval)+1),
					retry.Delay(interval),
					retry.DelayType(retry.FixedDelay),
					retry.LastErrorOnly(true),
				)
				if err != nil {
					return err
				}
			} else if err := check(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			if result.Status != "ok" {
				return fmt.Errorf("server status is %q", result.Status)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying until the server answers, up to this long")

	return cmd
}
