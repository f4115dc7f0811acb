package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"haikufind/internal/catalog"
	"haikufind/internal/haiku"
	"haikufind/internal/publisher"
	"haikufind/internal/services"
)

func newPostCommand(ctx *commandContext) *cobra.Command {
	var noAttrib bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Pick one cached haiku and publish it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			return ctx.withStore(func(store *catalog.Store) error {
				record, err := store.PickUnused(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if record == nil {
					fmt.Fprintln(out, "No unused haiku found. Run 'haikufind scan' first, or add more lyrics.")
					return nil
				}

				include := cfg.Publisher.Attribution && !noAttrib
				text := haiku.ComposeText(record.Haiku, include)

				if dryRun || cfg.Publisher.DryRun {
					fmt.Fprintln(out, "Dry run; this is what would be posted:")
					fmt.Fprintln(out)
					fmt.Fprintln(out, text)
					fmt.Fprintln(out)
					if err := store.MarkPublished(cmd.Context(), record.Signature, "", time.Now()); err != nil {
						return err
					}
					fmt.Fprintln(out, "Marked as used in the local cache.")
					return nil
				}

				svc, err := publisher.NewService(cfg)
				if err != nil {
					return err
				}
				if !svc.Enabled() {
					return services.Wrap(services.ErrConfiguration, "publisher", "post",
						"publishing is disabled; enable [publisher] in config or use --dry-run", nil)
				}

				externalID, err := svc.Publish(cmd.Context(), text)
				if err != nil {
					return err
				}
				if err := store.MarkPublished(cmd.Context(), record.Signature, externalID, time.Now()); err != nil {
					return err
				}

				fmt.Fprintf(out, "Published haiku. Post ID: %s\n", externalID)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noAttrib, "no-attrib", false, "Do not include the attribution line")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compose and mark used without posting")
	return cmd
}
