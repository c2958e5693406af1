package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkahoots/beauty-bot/internal/skin"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show [skin-type]",
		Short: "Show products or the daily schedule for a skin type",
		Long:  "Show recommended products for a skin type. Without an argument, lists all skin types.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().BoolP("schedule", "s", false, "Show the daily schedule and tips instead of products")
	cmd.Flags().Bool("readme", false, "Show how to pick your skin type")

	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	renderer := ui.NewRenderer(a.cfg.UI.RenderMarkdown, a.cfg.UI.ColoredOutput, a.cfg.UI.WordWrap)

	if readme, _ := cmd.Flags().GetBool("readme"); readme {
		fmt.Println(renderer.Render("# How to Pick Your Skin Type\n\n" + skin.Instructions()))
		return nil
	}

	if len(args) == 0 {
		fmt.Println(renderer.Render(ui.TypesMarkdown(skin.Catalog())))
		return nil
	}

	t, err := skin.Parse(args[0])
	if err != nil {
		return err
	}
	p, err := skin.Lookup(t)
	if err != nil {
		return err
	}

	if schedule, _ := cmd.Flags().GetBool("schedule"); schedule {
		fmt.Println(renderer.Render(ui.ScheduleMarkdown(p)))
		return nil
	}
	fmt.Println(renderer.Render(ui.ProfileMarkdown(p, a.cfg.Content.ImageDir)))
	return nil
}
