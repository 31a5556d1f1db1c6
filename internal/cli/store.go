package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maheshsubedi/grahas/pkg/store"
)

// storeCommand creates the store command for managing saved birth records.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage saved birth records",
		Long: `Manage saved birth records.

A record holds a validated birth moment plus the ayanamsa and house system it
should be computed in. Charts are never stored; 'store show' recomputes them
on demand.`,
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())
	cmd.AddCommand(c.storeDeleteCommand())

	return cmd
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	var (
		birth       birthFlags
		frame       frameFlags
		name        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a birth record",
		Example: `  grahas store save --name "Suresh" --date 1990-05-15 --time 14:30 --zone Asia/Kathmandu --lat 27.7172 --lon 85.3240`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive || !birth.provided() {
				filled, err := runBirthForm(cmd.Context(), birth)
				if err != nil {
					return err
				}
				birth = filled
			}

			moment, err := birth.moment()
			if err != nil {
				return err
			}
			ayanamsa, system, err := frame.resolve()
			if err != nil {
				return err
			}

			record, err := store.New(name, moment, ayanamsa.String(), system.String())
			if err != nil {
				return err
			}

			s, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.Save(cmd.Context(), record); err != nil {
				return fmt.Errorf("save record: %w", err)
			}

			printSuccess("Saved %q", record.Name)
			printDetail("ID: %s", record.ID)
			return nil
		},
	}

	birth.register(cmd)
	frame.register(cmd, c.Config)
	cmd.Flags().StringVarP(&name, "name", "n", "", "record name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "enter birth data interactively")

	return cmd
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved birth records",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			records, err := s.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list records: %w", err)
			}

			if len(records) == 0 {
				printInfo("No saved records")
				return nil
			}

			fmt.Println(renderRecords(records))
			printDetail("%d record(s)", len(records))
			return nil
		},
	}
}

// storeShowCommand creates the "store show" subcommand. It recomputes the
// chart in the record's saved frame.
func (c *CLI) storeShowCommand() *cobra.Command {
	var (
		jsonOut bool
		noCache bool
		dataDir string
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Recompute and display a saved record's chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.loadRecord(cmd, args[0])
			if err != nil {
				return err
			}

			frame := frameFlags{
				ayanamsa:    record.Ayanamsa,
				houseSystem: record.HouseSystem,
				dataDir:     dataDir,
			}
			ayanamsa, system, err := frame.resolve()
			if err != nil {
				return fmt.Errorf("record %s has an unusable frame: %w", shortID(record.ID), err)
			}

			natal, mode, cached, err := c.computeChart(cmd.Context(), record.Moment, ayanamsa, system, dataDir, noCache)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(natal)
			}
			printKeyValue("Record", record.Name)
			printNewline()
			fmt.Println(renderChart(natal))
			printProvenance(mode, cached)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the chart as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "ephemeris coefficient directory (overrides config)")

	return cmd
}

// storeDeleteCommand creates the "store delete" subcommand.
func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved birth record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.newStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			record, err := findRecord(cmd, s, args[0])
			if err != nil {
				return err
			}

			if err := s.Delete(cmd.Context(), record.ID); err != nil {
				return fmt.Errorf("delete record: %w", err)
			}
			printSuccess("Deleted %q", record.Name)
			return nil
		},
	}
}

// loadRecord opens the configured store, resolves arg to a record and closes
// the store again. For commands that need one record, not a store handle.
func (c *CLI) loadRecord(cmd *cobra.Command, arg string) (*store.Record, error) {
	s, err := c.newStore(cmd)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()
	return findRecord(cmd, s, arg)
}

// findRecord resolves an ID argument to a record. Full UUIDs resolve
// directly; anything else matches a unique name or ID prefix.
func findRecord(cmd *cobra.Command, s store.Store, arg string) (*store.Record, error) {
	record, err := s.Get(cmd.Context(), arg)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	records, err := s.List(cmd.Context())
	if err != nil {
		return nil, err
	}

	var matches []*store.Record
	for _, r := range records {
		if r.Name == arg || (len(arg) >= 4 && len(r.ID) >= len(arg) && r.ID[:len(arg)] == arg) {
			matches = append(matches, r)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no record matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%q is ambiguous: %d records match", arg, len(matches))
	}
}
