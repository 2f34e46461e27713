package main

import (
	"fmt"
	"slices"
)

// action is a backend-neutral user intent. Each host adapter maps its own
// key events onto these.
type action int

const (
	actionUp action = iota
	actionDown
	actionSelect
	actionInfo
	actionBack
)

// view is what a demo screen shows and how it reacts to input.
type view interface {
	Title() string
	Lines() []string
	// Act reports whether the view consumed a.
	Act(a action) bool
}

type GamesPresenter interface {
	ShowGames(games []string)
}

type GamePresenter interface {
	ShowGame(name string)
}

type TextPresenter interface {
	ShowText(lines []string)
}

// listView shows selectable rows.
type listView struct {
	title    string
	items    []string
	cursor   int
	onSelect func(item string)
}

func (v *listView) Title() string { return v.title }

func (v *listView) ShowGames(games []string) {
	v.items = slices.Clone(games)
	v.cursor = 0
}

func (v *listView) Lines() []string {
	lines := make([]string, len(v.items))
	for i, item := range v.items {
		prefix := "  "
		if i == v.cursor {
			prefix = "> "
		}
		lines[i] = prefix + item
	}
	return lines
}

func (v *listView) Act(a action) bool {
	switch a {
	case actionUp:
		v.cursor = max(v.cursor-1, 0)
		return true
	case actionDown:
		v.cursor = min(v.cursor+1, max(len(v.items)-1, 0))
		return true
	case actionSelect:
		if len(v.items) > 0 && v.onSelect != nil {
			v.onSelect(v.items[v.cursor])
		}
		return true
	}
	return false
}

// detailView shows one game.
type detailView struct {
	game   string
	onInfo func()
	onBack func()
}

func (v *detailView) Title() string { return v.game }

func (v *detailView) ShowGame(name string) {
	v.game = name
}

func (v *detailView) Lines() []string {
	return []string{
		fmt.Sprintf("Selected: %s", v.game),
		"",
		"i: info   esc: back",
	}
}

func (v *detailView) Act(a action) bool {
	switch a {
	case actionInfo:
		if v.onInfo != nil {
			v.onInfo()
		}
		return true
	case actionBack:
		if v.onBack != nil {
			v.onBack()
			return true
		}
	}
	return false
}

// textView shows static lines.
type textView struct {
	title  string
	lines  []string
	onBack func()
}

func (v *textView) Title() string { return v.title }

func (v *textView) ShowText(lines []string) {
	v.lines = slices.Clone(lines)
}

func (v *textView) Lines() []string {
	return v.lines
}

func (v *textView) Act(a action) bool {
	if a == actionBack && v.onBack != nil {
		v.onBack()
		return true
	}
	return false
}
