package repl

import (
	"github.com/nkahoots/beauty-bot/internal/skin"
	"github.com/nkahoots/beauty-bot/internal/ui"
)

// withoutReadline closes readline while fn drives the terminal directly,
// then restores it.
func (r *REPL) withoutReadline(fn func()) {
	r.mu.Lock()
	if r.rl != nil {
		r.rl.Close()
		r.rl = nil
	}
	r.mu.Unlock()

	fn()

	if newRl, err := setupReadline(); err == nil {
		r.mu.Lock()
		r.rl = newRl
		r.mu.Unlock()
	}
	r.refreshPrompt()
}

func (r *REPL) choose(question string, labels []string) (string, error) {
	var answer string
	var err error
	r.withoutReadline(func() {
		answer, err = ui.Choose(question, labels, r.config.UI.ColoredOutput)
	})
	return answer, err
}

func (r *REPL) confirm(question string) bool {
	var ok bool
	r.withoutReadline(func() {
		ok = ui.Confirm(question, r.config.UI.ColoredOutput)
	})
	return ok
}

func (r *REPL) chooseSkinType() (skin.SkinType, error) {
	profiles := skin.Catalog()
	items := make([]ui.MenuItem, len(profiles))
	for i, p := range profiles {
		items[i] = ui.MenuItem{Label: p.Type.Label(), Detail: p.Summary}
	}

	var answer string
	var err error
	r.withoutReadline(func() {
		answer, err = ui.NewMenu("Select your skin type", items, r.config.UI.ColoredOutput).Run()
	})
	if err != nil {
		return "", err
	}
	return skin.Parse(answer)
}
