package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rosmesh/rosidl-runtime/msg/sensor"
	"github.com/rosmesh/rosidl-runtime/rcl"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	topicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	rosCtx   *rcl.Context
	pub      *rcl.Publisher[sensor.Temperature]
	sub      *rcl.Subscription[sensor.Temperature]
	topic    string
	input    textinput.Model
	received []string
	sent     int
}

type receivedMsg struct {
	reading *sensor.Temperature
	err     error
}

func runInteractive(topic string) error {
	rosCtx, err := rcl.NewContext(os.Args)
	if err != nil {
		return err
	}
	defer rosCtx.Shutdown()

	node, err := rosCtx.NewNode("topic_tui")
	if err != nil {
		return err
	}
	sub, err := rcl.NewSubscription[sensor.Temperature](node, topic)
	if err != nil {
		return err
	}
	defer sub.Close()
	pub, err := rcl.NewPublisher[sensor.Temperature](node, topic)
	if err != nil {
		return err
	}

	input := textinput.New()
	input.Placeholder = "temperature in °C"
	input.Focus()
	input.CharLimit = 16
	input.Width = 24

	m := interactiveModel{
		rosCtx: rosCtx,
		pub:    pub,
		sub:    sub,
		topic:  pub.Topic(),
		input:  input,
	}

	_, err = tea.NewProgram(m).Run()
	return err
}

func waitForReading(sub *rcl.Subscription[sensor.Temperature]) tea.Cmd {
	return func() tea.Msg {
		reading, err := sub.Next(context.Background())
		return receivedMsg{reading: reading, err: err}
	}
}

func (m interactiveModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForReading(m.sub))
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			value, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64)
			if err != nil {
				m.err = fmt.Errorf("not a number: %q", m.input.Value())
				return m, nil
			}
			now := time.Now()
			reading := sensor.Temperature{
				Stamp:   sensor.Stamp{Sec: int32(now.Unix()), Nanosec: uint32(now.Nanosecond())},
				Celsius: value,
			}
			if err := m.pub.Publish(&reading); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.sent++
			m.input.Reset()
			return m, nil
		}
	case receivedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		line := fmt.Sprintf("%.2f°C at %d.%09d",
			msg.reading.Celsius, msg.reading.Stamp.Sec, msg.reading.Stamp.Nanosec)
		m.received = append(m.received, line)
		if len(m.received) > 10 {
			m.received = m.received[len(m.received)-10:]
		}
		return m, waitForReading(m.sub)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("topic"))
	b.WriteString("  ")
	b.WriteString(topicStyle.Render(m.topic))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.received) == 0 {
		b.WriteString(helpStyle.Render("no messages received yet"))
		b.WriteString("\n")
	}
	for _, line := range m.received {
		b.WriteString(msgStyle.Render("  " + line))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("sent %d · enter to publish · esc to quit", m.sent)))
	b.WriteString("\n")
	return b.String()
}
