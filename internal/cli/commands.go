package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/restdemo/internal/session"
	"github.com/MrSnakeDoc/restdemo/internal/ui"
)

func newHealthCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the backend health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			var sess session.Session
			if !sess.Probe(cmd.Context(), c) {
				writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s unreachable", c.BaseURL()))
				return errUnhealthy
			}
			writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s healthy", c.BaseURL()))
			return nil
		},
	}
}

func newInfoCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the backend name, version and endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			info, err := c.FetchInfo(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeLine(out, fmt.Sprintf("%s %s", info.Name, info.Version))
			for _, ep := range info.Endpoints {
				writeLine(out, "  "+ep)
			}
			return nil
		},
	}
}

func newFetchCommand(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the backend record once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.newClient()
			if err != nil {
				return err
			}

			var sess session.Session
			fetchErr := sess.Fetch(cmd.Context(), c)
			if errors.Is(fetchErr, session.ErrFetchInFlight) {
				return fetchErr
			}

			if asJSON {
				if err := renderJSON(cmd, sess.State()); err != nil {
					return err
				}
			} else {
				renderState(cmd.OutOrStdout(), sess.State())
			}
			return fetchErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the record as JSON")
	return cmd
}

func newUICommand(flags *globalFlags, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Interactive terminal frontend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.IsTerminal() {
				return errors.New("ui requires an interactive terminal")
			}
			c, err := flags.newClient()
			if err != nil {
				return err
			}
			return ui.Run(cmd.Context(), ui.Options{
				Backend:    c,
				Session:    &session.Session{},
				BackendURL: c.BaseURL(),
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func renderJSON(cmd *cobra.Command, st session.State) error {
	rec, ok := st.Record()
	if !ok {
		return nil
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
