package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"inventoryviewer/internal/config"
	"inventoryviewer/internal/loader"
	"inventoryviewer/internal/repository/sqlite"
	"inventoryviewer/internal/service"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type importFlags struct {
	dbPath string
	dryRun bool
}

func newImportCmd(global *globalFlags) *cobra.Command {
	flags := &importFlags{}

	cmd := &cobra.Command{
		Use:   "import <snapshot.yaml>",
		Short: "Replace the store contents with a YAML inventory snapshot",
		Long: `Import a YAML inventory snapshot into the SQLite store.

The snapshot is validated first: ids must be positive and unique per kind,
every reference must resolve, and cable terminations must use a supported
type and point at an existing port or interface. The import runs in a
single transaction and replaces everything previously imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := global.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("db") {
				cfg.Database.Path = flags.dbPath
			}

			if flags.dryRun {
				snap, err := loader.LoadFile(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %s modules, %s cables\n", args[0],
					humanize.Comma(int64(len(snap.Modules))), humanize.Comma(int64(len(snap.Cables))))
				return nil
			}

			logger, err := cfg.Log.BuildLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			repo, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer repo.Close()

			return runImport(cmd.Context(), cmd.OutOrStdout(), repo, service.NewSnapshotService(repo, logger), args[0])
		},
	}

	cmd.Flags().StringVar(&flags.dbPath, "db", config.DefaultDBPath, "SQLite database path")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "validate the snapshot without importing it")

	return cmd
}

func runImport(ctx context.Context, out io.Writer, repo *sqlite.Repository, svc *service.SnapshotService, path string) error {
	info, err := svc.ImportFile(ctx, path)
	if err != nil {
		return err
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Imported %s modules and %s cables from %s\n",
		humanize.Comma(int64(info.Modules)), humanize.Comma(int64(info.Cables)), info.Source)

	tables := make([]string, 0, len(stats))
	for table := range stats {
		tables = append(tables, table)
	}
	sort.Strings(tables)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, table := range tables {
		fmt.Fprintf(tw, "  %s\t%s\n", table, humanize.Comma(int64(stats[table])))
	}
	return tw.Flush()
}
