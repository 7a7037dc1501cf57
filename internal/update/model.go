package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/tasklist/internal/tasks"
)

type Focus string

const (
	FocusInput Focus = "input"
	FocusList  Focus = "list"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	SwitchFocus string
	Toggle      string
	Delete      string
	ClearAll    string
	Palette     string
	Help        string
	Quit        string
}

type ConfirmState struct {
	Active bool
	Prompt string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the bubbletea program state. Store is the only place tasks are
// mutated; everything shown on screen is derived from it at View time.
type Model struct {
	Store       *tasks.Store
	Focus       Focus
	Cursor      int
	Confirm     ConfirmState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	// Err is set when a store write failed; the program quits with it.
	Err error

	ctx          context.Context
	input        textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
	textWidth    int
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type AddTaskMsg struct {
	Text string
}

type ToggleTaskMsg struct {
	ID int64
}

type DeleteTaskMsg struct {
	ID int64
}

// ClearAllMsg asks for confirmation before anything is removed.
type ClearAllMsg struct{}

type ConfirmClearMsg struct {
	Confirmed bool
}

func NewModel(store *tasks.Store) Model {
	return NewModelWithConfig(context.Background(), store, DefaultRuntimeConfig())
}

func NewModelWithConfig(ctx context.Context, store *tasks.Store, cfg RuntimeConfig) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Store: store,
		Focus: FocusInput,
		Keys: GlobalKeyMap{
			SwitchFocus: "tab",
			Toggle:      " ",
			Delete:      "d",
			ClearAll:    "C",
			Palette:     "/",
			Help:        "?",
			Quit:        "q",
		},
		ctx:       ctx,
		textWidth: 40,
	}
	m.initBubbleComponents(cfg)
	return m
}

func (m *Model) initBubbleComponents(cfg RuntimeConfig) {
	limit := cfg.InputLimit
	if limit <= 0 {
		limit = DefaultRuntimeConfig().InputLimit
	}
	m.input = textinput.New()
	m.input.Prompt = "add> "
	m.input.Placeholder = "What needs to be done?"
	m.input.CharLimit = limit
	m.input.Width = 48
	m.input.Focus()

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

// InputValue is the current content of the text-entry field.
func (m Model) InputValue() string {
	return m.input.Value()
}
