package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sealstore/internal/app"
	"sealstore/internal/domain"
)

func sealCmd(opts *options) *cobra.Command {
	var (
		storeName string
		inPath    string
		where     map[string]string
	)

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Save JSON records into a store and print them read back",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("failed to read records: %w", err)
			}
			records, err := app.DecodeRecords(data)
			if err != nil {
				return err
			}

			w, err := opts.load(cmd, func(cfg *app.Config) error {
				sc, ok := cfg.Store(storeName)
				if !ok {
					return fmt.Errorf("%w: store %q is not configured", domain.ErrNotFound, storeName)
				}
				if opts.passphrase != "" {
					sc.Passphrase = opts.passphrase
				}
				// Other stores may lack passphrases; only the target is built.
				cfg.Stores = []app.StoreConfig{*sc}
				return nil
			})
			if err != nil {
				return err
			}
			defer w.Close()

			a := app.New(w)
			out, err := a.Seal(storeName, records)
			if err != nil {
				return err
			}

			if len(where) > 0 {
				filter := domain.ReadFilter{Where: make(map[string]any, len(where))}
				for k, v := range where {
					filter.Where[k] = v
				}
				if out, err = a.Find(storeName, filter); err != nil {
					return err
				}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&storeName, "store", "", "name of the store to save into")
	cmd.Flags().StringVar(&inPath, "in", "", "JSON file holding an array of records")
	cmd.Flags().StringToStringVar(&where, "where", nil, "print only records whose field equals the value (memory stores)")
	_ = cmd.MarkFlagRequired("store")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
