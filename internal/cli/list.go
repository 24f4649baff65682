package cli

import (
	"context"
	"fmt"

	"github.com/Makepad-fr/tada-remote/internal/listvm"
	"github.com/Makepad-fr/tada-remote/internal/model"
	"github.com/Makepad-fr/tada-remote/internal/ui"
	"github.com/charmbracelet/x/ansi"
)

// maxTitleWidth is the widest title printed by flatLines, in terminal cells.
const maxTitleWidth = 80

func (a *app) doInteractive(ctx context.Context) int {
	session, code := a.authorize()
	if code != 0 {
		return code
	}
	vm, err := a.viewModel()
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	outcome, err := runInteractive(ctx, vm, session)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if outcome.SignedOut {
		ui.OK("signed out")
	}
	return 0
}

func (a *app) doList(ctx context.Context) int {
	vm, code := a.ready(ctx)
	if code != 0 {
		return code
	}
	printList(vm)
	return 0
}

func (a *app) doAdd(ctx context.Context, title string) int {
	vm, code := a.ready(ctx)
	if code != 0 {
		return code
	}
	vm.SetDraft(title)
	if _, err := vm.Add(ctx); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK("added")
	printList(vm)
	return 0
}

func (a *app) doRemove(ctx context.Context, id int) int {
	vm, code := a.ready(ctx)
	if code != 0 {
		return code
	}
	if _, err := vm.Remove(ctx, id); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK("removed")
	printList(vm)
	return 0
}

// -------------- rendering helpers --------------

func printList(vm *listvm.ViewModel) {
	t := ui.Current()
	items := vm.Items()
	done, pending := model.Stats(items)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Shown"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, done+pending, 28)))
	lines = append(lines, "")
	lines = append(lines, flatLines(items)...)
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `tada add \"Buy milk\"`"))
	ui.Panel(lines)
}

func flatLines(items []model.Item) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
		}
		title := ansi.Truncate(it.Title, maxTitleWidth, "...")
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%4d", it.ID)), box, title))
	}
	return out
}
