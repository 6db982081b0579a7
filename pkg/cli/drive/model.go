// Package drive is a keyboard driving TUI.
package drive

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robotalks/whill.go/pkg/whill"
	"github.com/robotalks/whill.go/pkg/whill/data"
)

// Speed limits in % of full joystick deflection.
const (
	SpeedMin     = 10
	SpeedMax     = 100
	SpeedStep    = 10
	DefaultSpeed = 20
)

// refreshInterval is how often telemetry is redrawn.
const refreshInterval = 200 * time.Millisecond

// Driver is the part of whill.Device used by the TUI.
type Driver interface {
	SendJoystick(front, side int) (int, error)
	SendVelocity(front, side int16) (int, error)
	SetPower(on bool) (int, error)
	Telemetry() data.Telemetry
}

// Motion converts a key direction (-1, 0, 1 per axis) at speed % into
// command arguments. Velocity is scaled asymmetrically, reverse being
// slower than forward.
func Motion(ctl whill.ControlType, speed, dirFront, dirSide int) (front, side int) {
	front, side = dirFront*speed, dirSide*speed
	if ctl != whill.ControlVelocity {
		return front, side
	}
	side = side * 15 / 2
	if front > 0 {
		front *= 15
	} else {
		front *= 5
	}
	return front, side
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model.
type Model struct {
	dev       Driver
	control   whill.ControlType
	speed     int
	front     int
	side      int
	telemetry data.Telemetry
	err       error
	quitting  bool
}

// NewModel creates the model.
func NewModel(dev Driver) *Model {
	return &Model{dev: dev, speed: DefaultSpeed, telemetry: dev.Telemetry()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.telemetry = m.dev.Telemetry()
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.drive(0, 0)
		if _, err := m.dev.SetPower(false); err != nil {
			m.err = err
		}
		return m, tea.Quit
	case "u":
		m.speed = min(m.speed+SpeedStep, SpeedMax)
	case "d":
		m.speed = max(m.speed-SpeedStep, SpeedMin)
	case "j":
		m.control = whill.ControlJoystick
	case "v":
		m.control = whill.ControlVelocity
	case "up":
		m.drive(1, 0)
	case "down":
		m.drive(-1, 0)
	case "left":
		m.drive(0, -1)
	case "right":
		m.drive(0, 1)
	default:
		m.drive(0, 0)
	}
	return m, nil
}

func (m *Model) drive(dirFront, dirSide int) {
	m.front, m.side = Motion(m.control, m.speed, dirFront, dirSide)
	var err error
	if m.control == whill.ControlVelocity {
		_, err = m.dev.SendVelocity(int16(m.front), int16(m.side))
	} else {
		_, err = m.dev.SendJoystick(m.front, m.side)
	}
	m.err = err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#414868"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#414868")).Padding(0, 1)
)

func row(label, format string, args ...interface{}) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label), valueStyle.Render(fmt.Sprintf(format, args...)))
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Powered off.\n"
	}
	t := m.telemetry
	rows := []string{
		titleStyle.Render("WHILL"),
		row("control", "%s", m.control),
		row("speed", "%d%%", m.speed),
		row("command", "%d, %d", m.front, m.side),
		row("joystick", "%d, %d", t.Joy.Front, t.Joy.Side),
		row("battery", "%d%% %.0fmA", t.Battery.Level, t.Battery.Current),
		row("motors", "R %.2fkm/h  L %.2fkm/h", t.RightMotor.Speed, t.LeftMotor.Speed),
		row("mode", "%d  error %d", t.SpeedModeIndicator, t.ErrorCode),
	}
	if m.err != nil {
		rows = append(rows, errorStyle.Render(m.err.Error()))
	}
	help := helpStyle.Render(strings.Join([]string{
		"arrows drive", "space stop", "u/d speed ±10%", "j joystick", "v velocity", "q power off",
	}, " · "))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n" + help + "\n"
}

// Run powers the device on and runs the TUI until quit.
func Run(dev *whill.Device) error {
	if _, err := dev.SendPowerOn(); err != nil {
		return fmt.Errorf("power on: %w", err)
	}
	_, err := tea.NewProgram(NewModel(dev), tea.WithAltScreen()).Run()
	return err
}
