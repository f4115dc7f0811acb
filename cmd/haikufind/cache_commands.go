package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"haikufind/internal/catalog"
	"haikufind/internal/services"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the haiku cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheShowCommand(ctx))
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	var onlyUnused bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached haiku",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				records, err := store.List(cmd.Context(), onlyUnused)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Cache is empty")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), haikuTable(records))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&onlyUnused, "unused", false, "Show only haiku not yet published")
	return cmd
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <signature>",
		Short: "Show one cached haiku by signature or signature prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				sig, err := resolveSignature(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				record, err := store.GetBySignature(cmd.Context(), sig)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, record.Haiku.Text())
				fmt.Fprintln(out)
				fmt.Fprintln(out, detailTable(record))
				return nil
			})
		},
	}
}

// resolveSignature expands a signature prefix (as shown by `cache list`) to
// the full stored signature. Full-length signatures pass through untouched.
func resolveSignature(ctx context.Context, store *catalog.Store, arg string) (string, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if len(arg) == 64 {
		return arg, nil
	}
	if arg == "" {
		return "", services.Wrap(services.ErrNotFound, "cache", "show", "empty signature", nil)
	}

	records, err := store.List(ctx, false)
	if err != nil {
		return "", err
	}
	var match string
	for _, record := range records {
		if !strings.HasPrefix(record.Signature, arg) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("signature prefix %q is ambiguous; use more characters", arg)
		}
		match = record.Signature
	}
	if match == "" {
		return "", services.Wrap(services.ErrNotFound, "cache", "show",
			fmt.Sprintf("no haiku with signature %s", arg), nil)
	}
	return match, nil
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), statsTable(stats))
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached haiku",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached haiku\n", removed)
				return nil
			})
		},
	}
}

func shortSignature(sig string) string {
	if len(sig) <= 12 {
		return sig
	}
	return sig[:12]
}
