package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sealstore/internal/app"
	"sealstore/internal/store"
)

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Build every configured store and report on it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := opts.load(cmd, func(cfg *app.Config) error {
				// -p fills in passphrases the environment did not provide.
				for i := range cfg.Stores {
					sc := &cfg.Stores[i]
					if sc.Kind == string(store.KindEncryptedMemory) && sc.Passphrase == "" {
						sc.Passphrase = opts.passphrase
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			defer w.Close()

			status, err := app.New(w).Check()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tEMPTY\tFINGERPRINT")
			for _, s := range status {
				fp := s.Fingerprint
				if fp == "" {
					fp = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", s.Name, s.Kind, s.Empty, fp)
			}
			return tw.Flush()
		},
	}
}
