package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curaious/linkfinder/internal/config"
	"github.com/curaious/linkfinder/internal/perrors"
	"github.com/curaious/linkfinder/internal/services"
	"github.com/curaious/linkfinder/internal/services/links"
)

var findLinksCmd = &cobra.Command{
	Use:   "find-links <imageUrl>",
	Short: "Run the link extraction script once and print its results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.ReadConfig()
		svc := services.NewServices(conf)

		return findLinks(cmd, svc.Links, args[0])
	},
}

func findLinks(cmd *cobra.Command, svc *links.LinksService, imageURL string) error {
	results, err := svc.FindLinks(cmd.Context(), &links.FindLinksRequest{ImageURL: imageURL})
	if err != nil {
		var perr perrors.Err
		if errors.As(err, &perr) && perr.Details != nil && *perr.Details != "" {
			return fmt.Errorf("%s: %s", perr.Err, *perr.Details)
		}
		return err
	}

	body, err := links.Encode(results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return err
}

func init() {
	findLinksCmd.SilenceUsage = true
	rootCmd.AddCommand(findLinksCmd)
}
