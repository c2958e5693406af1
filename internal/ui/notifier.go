package ui

import (
	"fmt"
	"io"
	"sync"
)

// NotificationBox prints notifications as a boxed message. It satisfies
// scheduler.Notifier and is safe to call from timer goroutines.
type NotificationBox struct {
	mu        sync.Mutex
	out       io.Writer
	formatter *Formatter
}

func NewNotificationBox(out io.Writer, formatter *Formatter) *NotificationBox {
	return &NotificationBox{out: out, formatter: formatter}
}

func (n *NotificationBox) ShowMessage(title, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, err := fmt.Fprintf(n.out, "\n%s\n\n", n.formatter.FormatBox("🔔 "+title, body))
	return err
}
