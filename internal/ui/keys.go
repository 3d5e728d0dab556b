package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause         key.Binding
	Reset         key.Binding
	StiffnessDown key.Binding
	StiffnessUp   key.Binding
	DampingDown   key.Binding
	DampingUp     key.Binding
	TangentsDown  key.Binding
	TangentsUp    key.Binding
	SamplesDown   key.Binding
	SamplesUp     key.Binding
	Snapshot      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		StiffnessDown: key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "stiffness")),
		StiffnessUp:   key.NewBinding(key.WithKeys("S")),
		DampingDown:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d/D", "damping")),
		DampingUp:     key.NewBinding(key.WithKeys("D")),
		TangentsDown:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t/T", "tangents")),
		TangentsUp:    key.NewBinding(key.WithKeys("T")),
		SamplesDown:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n/N", "resolution")),
		SamplesUp:     key.NewBinding(key.WithKeys("N")),
		Snapshot:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:          key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.StiffnessDown, k.DampingDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Reset, k.Snapshot},
		{k.StiffnessDown, k.DampingDown},
		{k.TangentsDown, k.SamplesDown},
		{k.Help, k.Quit},
	}
}
