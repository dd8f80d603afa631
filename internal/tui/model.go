// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the terminal front end: two word inputs, a category row,
// and the generated idea cards.
package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/ideaspark/internal/spark"
	"github.com/pdiddy/ideaspark/pkg/types"
)

type focusArea int

const (
	focusWord1 focusArea = iota
	focusWord2
	focusCategory
	focusCount
)

// ideasMsg carries a finished generation back into the event loop.
type ideasMsg struct {
	result types.IdeaResult
	err    error
}

// Model is the Bubble Tea model.
type Model struct {
	ctx      context.Context
	producer *spark.Producer
	rand     *rand.Rand

	session    spark.Session
	categories []types.CategoryInfo
	inputs     [2]textinput.Model
	spinner    spinner.Model

	focus  focusArea
	cursor int
	width  int
	err    error
}

// New returns a model bound to producer. A nil r uses the global source.
func New(ctx context.Context, producer *spark.Producer, r *rand.Rand) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		ctx:        ctx,
		producer:   producer,
		rand:       r,
		categories: types.Categories(),
	}
	for i, ph := range []string{"ocean", "robot"} {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 64
		ti.Width = 24
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	m.spinner = sp
	return m
}

// Session returns a copy of the current session state.
func (m Model) Session() spark.Session { return m.session }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ideasMsg:
		if msg.err != nil {
			m.session.Abort()
			m.err = msg.err
			return m, nil
		}
		m.session.Finish(msg.result)
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+r":
		m.shuffleFocused()
		return m, nil
	case "ctrl+x":
		m.session.ShuffleBoth(m.rand)
		m.syncInputs()
		return m, nil
	case "ctrl+n":
		return m.reset()
	case "ctrl+g":
		return m.generate()
	}

	if m.focus == focusCategory {
		return m.handleCategoryKey(msg)
	}

	if msg.Type == tea.KeyEnter {
		return m.generate()
	}

	i := int(m.focus)
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	if i == 0 {
		m.session.SetWord1(m.inputs[0].Value())
	} else {
		m.session.SetWord2(m.inputs[1].Value())
	}
	return m, cmd
}

func (m Model) handleCategoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "left", "h":
		m.cursor = (m.cursor + len(m.categories) - 1) % len(m.categories)
	case "right", "l":
		m.cursor = (m.cursor + 1) % len(m.categories)
	case "enter", " ":
		m.selectCategory(m.cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(m.categories) {
			m.cursor = int(key[0] - '1')
			m.selectCategory(m.cursor)
		}
	}
	return m, nil
}

func (m *Model) selectCategory(i int) {
	if err := m.session.SelectCategory(string(m.categories[i].ID)); err != nil {
		m.err = err
	}
}

func (m Model) setFocus(f focusArea) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if int(f) == i {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

func (m *Model) shuffleFocused() {
	switch m.focus {
	case focusWord1:
		m.session.ShuffleWord1(m.rand)
	case focusWord2:
		m.session.ShuffleWord2(m.rand)
	default:
		m.session.ShuffleBoth(m.rand)
	}
	m.syncInputs()
}

func (m *Model) syncInputs() {
	m.inputs[0].SetValue(m.session.Word1)
	m.inputs[1].SetValue(m.session.Word2)
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.session.Reset()
	m.syncInputs()
	m.err = nil
	return m.setFocus(focusWord1)
}

// generate is ignored while a request is in flight or input is incomplete.
func (m Model) generate() (tea.Model, tea.Cmd) {
	req, err := m.session.Begin()
	if err != nil {
		return m, nil
	}
	m.err = nil

	ctx, producer := m.ctx, m.producer
	run := func() tea.Msg {
		res, err := producer.Produce(ctx, req)
		return ideasMsg{result: res, err: err}
	}
	return m, tea.Batch(run, m.spinner.Tick)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("✨ IdeaSpark"))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render("Transform two words into endless possibilities"))
	b.WriteString("\n\n")

	labels := [2]string{"First Concept", "Second Concept"}
	for i := range m.inputs {
		label := labelStyle
		if int(m.focus) == i {
			label = focusedLabel
		}
		fmt.Fprintf(&b, "%s\n%s\n\n", label.Render(labels[i]), m.inputs[i].View())
	}

	label := labelStyle
	if m.focus == focusCategory {
		label = focusedLabel
	}
	b.WriteString(label.Render("Choose Your Creative Direction"))
	b.WriteString("\n")
	b.WriteString(m.categoryRow())
	b.WriteString("\n\n")

	switch {
	case m.session.Loading:
		fmt.Fprintf(&b, "%s Generating Ideas...\n", m.spinner.View())
	case m.session.CanGenerate():
		b.WriteString(buttonStyle.Render("Generate Ideas"))
		b.WriteString("\n")
	default:
		b.WriteString(disabledButton.Render("Generate Ideas"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if entries := m.session.Entries(); len(entries) > 0 {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Your Creative Ideas"))
		b.WriteString("\n\n")
		b.WriteString(m.ideaCards(entries))
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("tab focus • ctrl+r shuffle • ctrl+x shuffle both • ctrl+g generate • ctrl+n start over • esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) categoryRow() string {
	chips := make([]string, len(m.categories))
	for i, info := range m.categories {
		style := chipStyle
		if info.ID == m.session.Category {
			style = style.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(accent(info)).
				BorderForeground(accent(info))
		}
		if m.focus == focusCategory && i == m.cursor {
			style = style.BorderForeground(lipgloss.Color("#F59E0B"))
		}
		chips[i] = style.Render(info.Icon + " " + info.Name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) ideaCards(entries []types.IdeaEntry) string {
	border := defaultAccent
	if info, ok := types.LookupCategory(m.session.Category); ok {
		border = accent(info)
	}
	style := cardStyle.BorderForeground(border)
	if m.width > 4 {
		style = style.Width(m.width - 4)
	}

	var b strings.Builder
	for i, e := range entries {
		body := ideaTitle.Render(fmt.Sprintf("%d. %s", i+1, e.Title))
		if e.Description != "" {
			body += "\n" + e.Description
		}
		b.WriteString(style.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, producer *spark.Producer, r *rand.Rand, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(ctx, producer, r), opts...).Run()
	return err
}
