package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizdeck/internal/ui/theme"
)

// OptionList renders the answer options of a single question. In live
// mode the chosen option carries a persistent marker and can be changed
// at any time; in review mode the correct option and a wrong choice are
// colored instead.
type OptionList struct {
	Options      []string
	Cursor       int
	ChosenIndex  int // -1 when unanswered
	CorrectIndex int
	Review       bool
}

// NewOptionList creates an option list with the cursor on the chosen
// option, or the first option when unanswered.
func NewOptionList(options []string, chosenIndex, correctIndex int, review bool) OptionList {
	cursor := chosenIndex
	if cursor < 0 {
		cursor = 0
	}
	return OptionList{
		Options:      options,
		Cursor:       cursor,
		ChosenIndex:  chosenIndex,
		CorrectIndex: correctIndex,
		Review:       review,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor. Choosing is the owning screen's job since it
// has side effects beyond this component.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Review {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Choose marks the option under the cursor as the chosen answer.
func (o *OptionList) Choose() {
	o.ChosenIndex = o.Cursor
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := optionLabel(i)
		prefix := "  "
		if !o.Review && i == o.Cursor {
			prefix = "▸ "
		}

		marker := "○"
		if i == o.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case o.Review && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Review && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Review:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == o.ChosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

func optionLabel(i int) string {
	return string(rune('A' + i))
}
