package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkahoots/beauty-bot/internal/reminder"
	"github.com/nkahoots/beauty-bot/internal/scheduler"
	"github.com/nkahoots/beauty-bot/internal/skin"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Set a reminder and wait for it in the foreground",
		Long: "Set a one-shot skincare reminder and keep running until it fires.\n" +
			"The reminder is lost if the command is interrupted before then.",
		RunE: runRemind,
	}

	cmd.Flags().StringP("skin", "s", "", "Skin type: Dry, Oily, Combination, Sensitive (required)")
	cmd.Flags().StringP("date", "d", "", "Date in MM-DD format (required)")
	cmd.Flags().StringP("time", "t", "", "Time in HH:MM format, 12-hour clock (required)")
	cmd.Flags().StringP("meridiem", "m", reminder.AM, "AM or PM")
	cmd.Flags().BoolP("yes", "y", false, "Move a past time to the following day, or a passed date to next year, without asking")

	cmd.MarkFlagRequired("skin")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")

	rootCmd.AddCommand(cmd)
}

func runRemind(cmd *cobra.Command, _ []string) error {
	skinName, _ := cmd.Flags().GetString("skin")
	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	meridiem, _ := cmd.Flags().GetString("meridiem")
	yes, _ := cmd.Flags().GetBool("yes")

	t, err := skin.Parse(skinName)
	if err != nil {
		return err
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	formatter := ui.NewFormatter(a.cfg.UI.ColoredOutput)

	var sinks scheduler.MultiNotifier
	if a.cfg.Notify.Terminal {
		sinks = append(sinks, ui.NewNotificationBox(os.Stdout, formatter))
	}
	sinks = append(sinks, a.remoteNotifiers()...)

	sched := scheduler.New(sinks, a.schedulerOptions()...)
	defer sched.Stop()

	confirm := scheduler.AlwaysRollForward
	if !yes {
		confirm = scheduler.ConfirmFunc(func(q string) bool {
			return ui.Confirm(q, a.cfg.UI.ColoredOutput)
		})
	}

	req := reminder.Request{Date: date, Time: clock, Meridiem: meridiem}
	h, err := sched.Schedule(cmd.Context(), t, req, confirm)
	if errors.Is(err, reminder.ErrPastTimeDeclined) {
		fmt.Println(formatter.FormatSystem("No reminder set."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(formatter.FormatSuccess(fmt.Sprintf("Reminder set for %s. Waiting... (Ctrl+C to cancel)",
		h.At.Format("Mon Jan 2 2006, 3:04 PM"))))

	select {
	case <-h.Done():
	case <-cmd.Context().Done():
		fmt.Println(formatter.FormatSystem("\nInterrupted. The reminder was not delivered."))
	}
	return nil
}
