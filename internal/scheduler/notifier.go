package scheduler

import (
	"errors"
	"fmt"

	"github.com/nkahoots/beauty-bot/internal/skin"
)

// NotificationTitle is the title of every reminder notification.
const NotificationTitle = "Reminder"

// Notifier displays a message to the user.
type Notifier interface {
	ShowMessage(title, body string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, body string) error

func (f NotifierFunc) ShowMessage(title, body string) error {
	return f(title, body)
}

// MultiNotifier fans a message out to every sink. All sinks are tried even
// if one fails.
type MultiNotifier []Notifier

func (m MultiNotifier) ShowMessage(title, body string) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.ShowMessage(title, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Message builds the reminder notification for a skin type.
func Message(t skin.SkinType) (title, body string) {
	body = "Consistency is key for healthy, glowing skin! 🌟\n" +
		fmt.Sprintf("You're one day closer to turning your %s skin into healthier, radiant skin!", t.Label())
	return NotificationTitle, body
}
