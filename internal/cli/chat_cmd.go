package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/asifrahman/gradus/internal/assistant"
	"github.com/asifrahman/gradus/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [MESSAGE]",
		Short: "Talk to the study planning assistant",
		Long: "Without arguments, opens an interactive chat session.\n" +
			"With a message argument, sends it and prints the reply.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				reply, err := app.Chat.Send(context.Background(), app.UserID, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Println(reply)
				return nil
			}

			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("interactive chat needs a terminal; pass the message as an argument instead")
			}

			p := tea.NewProgram(newChatModel(app))
			_, err := p.Run()
			return err
		},
	}
}

// chatModel is the bubbletea Model for the interactive assistant session.
type chatModel struct {
	input    textinput.Model
	app      *App
	waiting  bool
	quitting bool
}

type chatOpenedMsg struct {
	messages []assistant.Message
	err      error
}

type chatReplyMsg struct {
	user  string
	reply string
	err   error
}

func newChatModel(app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return chatModel{input: ti, app: app}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg {
		msgs, err := m.app.Chat.OpenSession(context.Background(), m.app.UserID)
		return chatOpenedMsg{messages: msgs, err: err}
	})
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case chatOpenedMsg:
		if msg.err != nil {
			return m, tea.Sequence(tea.Println(formatter.StyleRed.Render(msg.err.Error())), tea.Quit)
		}
		var lines []string
		for _, am := range msg.messages {
			lines = append(lines, renderChatMessage(am.Role, am.Content))
		}
		return m, tea.Println(strings.Join(lines, "\n"))

	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			return m, tea.Println(formatter.StyleRed.Render("error: " + msg.err.Error()))
		}
		return m, tea.Println(renderChatMessage(assistant.RoleAssistant, msg.reply))

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			content := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if content == "" {
				return m, nil
			}
			if content == "exit" || content == "quit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.waiting = true
			app := m.app
			return m, tea.Sequence(
				tea.Println(renderChatMessage(assistant.RoleUser, content)),
				func() tea.Msg {
					reply, err := app.Chat.Send(context.Background(), app.UserID, content)
					return chatReplyMsg{user: content, reply: reply, err: err}
				},
			)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Bye.") + "\n"
	}
	if m.waiting {
		return formatter.Dim("thinking...")
	}
	return formatter.StylePurple.Render("you") + " " + formatter.Dim("❯") + " " + m.input.View()
}

func renderChatMessage(role, content string) string {
	if role == assistant.RoleUser {
		return formatter.StylePurple.Render("you ❯ ") + content
	}
	return formatter.StyleGreen.Render("assistant ❯ ") + "\n" + content + "\n"
}
