// Package ui provides terminal UI helpers for the index advisor CLI.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dshills/IndexAdvisor/core"
)

// Styles for the wizard
var (
	wizardDocStyle      = lipgloss.NewStyle().Margin(1, 2)
	wizardSelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	wizardItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	wizardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	wizardHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	wizardErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// WizardStep represents the current step in the wizard
type WizardStep int

const (
	// StepVectorCount asks how many vectors will be stored
	StepVectorCount WizardStep = iota
	// StepDimensions asks for the vector dimensionality
	StepDimensions
	// StepLatency asks for the latency target
	StepLatency
	// StepMemoryBudget asks for the per-node memory budget
	StepMemoryBudget
	// StepQPSTarget asks for the expected query rate
	StepQPSTarget
	// StepUseCase asks for the primary use case
	StepUseCase
	// StepGPU asks whether GPUs are available
	StepGPU
	// StepConfirm shows the gathered requirement and confirms
	StepConfirm
)

// latencyChoice pairs a display label with the latency target it stands for
type latencyChoice struct {
	Label string
	MS    float64
}

var latencyChoices = []latencyChoice{
	{"< 10ms (real-time)", 10},
	{"< 30ms (interactive)", 30},
	{"< 50ms (responsive)", 50},
	{"< 100ms (acceptable)", 100},
	{"> 100ms (batch)", 200},
}

var gpuChoices = []string{"No", "Yes"}

// WizardModel is the bubbletea model for the requirement wizard
type WizardModel struct {
	// Current step
	CurrentStep WizardStep

	// Text inputs
	VectorsInput    textinput.Model
	DimensionsInput textinput.Model
	MemoryInput     textinput.Model
	QPSInput        textinput.Model

	// Select cursors
	LatencyCursor int
	UseCaseCursor int
	GPUCursor     int

	// Final state
	Requirement core.Requirement
	Quitting    bool
	Confirmed   bool
	Error       string
}

// NewWizardModel creates a new wizard model
func NewWizardModel() *WizardModel {
	vectorsInput := textinput.New()
	vectorsInput.Placeholder = "e.g. 1000000"
	vectorsInput.Width = 20
	vectorsInput.Focus()

	dimensionsInput := textinput.New()
	dimensionsInput.Placeholder = "e.g. 768"
	dimensionsInput.Width = 20

	memoryInput := textinput.New()
	memoryInput.Width = 20
	memoryInput.SetValue("32")

	qpsInput := textinput.New()
	qpsInput.Width = 20
	qpsInput.SetValue("1000")

	return &WizardModel{
		CurrentStep:     StepVectorCount,
		VectorsInput:    vectorsInput,
		DimensionsInput: dimensionsInput,
		MemoryInput:     memoryInput,
		QPSInput:        qpsInput,
	}
}

// Init implements tea.Model
func (*WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}

	// Forward other messages to the active text input
	var cmd tea.Cmd
	switch m.CurrentStep {
	case StepVectorCount:
		m.VectorsInput, cmd = m.VectorsInput.Update(msg)
	case StepDimensions:
		m.DimensionsInput, cmd = m.DimensionsInput.Update(msg)
	case StepMemoryBudget:
		m.MemoryInput, cmd = m.MemoryInput.Update(msg)
	case StepQPSTarget:
		m.QPSInput, cmd = m.QPSInput.Update(msg)
	case StepLatency, StepUseCase, StepGPU, StepConfirm:
		// No text inputs active in these steps
	}

	return m, cmd
}

func (m *WizardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "ctrl+c":
		m.Quitting = true
		m.Confirmed = false
		return m, tea.Quit
	case "esc":
		// Go back to previous step
		if m.CurrentStep > StepVectorCount {
			m.Error = ""
			m.CurrentStep--
			return m, m.focusStep()
		}
		return m, nil
	}

	// Handle step-specific keys
	switch m.CurrentStep {
	case StepVectorCount:
		return m.handleTextKeys(&m.VectorsInput, msg, m.commitVectors)
	case StepDimensions:
		return m.handleTextKeys(&m.DimensionsInput, msg, m.commitDimensions)
	case StepLatency:
		return m.handleLatencyKeys(key)
	case StepMemoryBudget:
		return m.handleTextKeys(&m.MemoryInput, msg, m.commitMemory)
	case StepQPSTarget:
		return m.handleTextKeys(&m.QPSInput, msg, m.commitQPS)
	case StepUseCase:
		return m.handleUseCaseKeys(key)
	case StepGPU:
		return m.handleGPUKeys(key)
	case StepConfirm:
		return m.handleConfirmKeys(key)
	}

	return m, nil
}

// handleTextKeys drives a text input step. commit parses the entered value
// and returns an error message, or "" to advance.
func (m *WizardModel) handleTextKeys(input *textinput.Model, msg tea.KeyMsg, commit func(string) string) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if errMsg := commit(strings.TrimSpace(input.Value())); errMsg != "" {
			m.Error = errMsg
			return m, nil
		}
		m.Error = ""
		m.CurrentStep++
		return m, m.focusStep()
	}

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m *WizardModel) commitVectors(value string) string {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return "Please enter a positive whole number"
	}
	m.Requirement.NumVectors = n
	return ""
}

func (m *WizardModel) commitDimensions(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return "Please enter a positive whole number"
	}
	m.Requirement.Dimensions = n
	return ""
}

func (m *WizardModel) commitMemory(value string) string {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return "Please enter a positive number"
	}
	m.Requirement.MemoryBudgetGB = f
	return ""
}

func (m *WizardModel) commitQPS(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return "Please enter a non-negative whole number"
	}
	m.Requirement.QPSTarget = n
	return ""
}

// focusStep moves input focus to match the current step
func (m *WizardModel) focusStep() tea.Cmd {
	m.VectorsInput.Blur()
	m.DimensionsInput.Blur()
	m.MemoryInput.Blur()
	m.QPSInput.Blur()

	switch m.CurrentStep {
	case StepVectorCount:
		m.VectorsInput.Focus()
	case StepDimensions:
		m.DimensionsInput.Focus()
	case StepMemoryBudget:
		m.MemoryInput.Focus()
	case StepQPSTarget:
		m.QPSInput.Focus()
	case StepLatency, StepUseCase, StepGPU, StepConfirm:
		return nil
	}

	return textinput.Blink
}

func (m *WizardModel) handleLatencyKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.LatencyCursor > 0 {
			m.LatencyCursor--
		}
	case "down", "j":
		if m.LatencyCursor < len(latencyChoices)-1 {
			m.LatencyCursor++
		}
	case "enter":
		m.Requirement.LatencyRequirementMS = latencyChoices[m.LatencyCursor].MS
		m.CurrentStep = StepMemoryBudget
		return m, m.focusStep()
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *WizardModel) handleUseCaseKeys(key string) (tea.Model, tea.Cmd) {
	useCases := core.UseCases()

	switch key {
	case "up", "k":
		if m.UseCaseCursor > 0 {
			m.UseCaseCursor--
		}
	case "down", "j":
		if m.UseCaseCursor < len(useCases)-1 {
			m.UseCaseCursor++
		}
	case "enter":
		m.Requirement.UseCase = useCases[m.UseCaseCursor]
		m.CurrentStep = StepGPU
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *WizardModel) handleGPUKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.GPUCursor > 0 {
			m.GPUCursor--
		}
	case "down", "j":
		if m.GPUCursor < len(gpuChoices)-1 {
			m.GPUCursor++
		}
	case "enter":
		m.Requirement.HasGPU = m.GPUCursor == 1
		m.CurrentStep = StepConfirm
	case "q":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *WizardModel) handleConfirmKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "y":
		m.Confirmed = true
		m.Quitting = true
		return m, tea.Quit
	case "e":
		// Edit mode - go back to first step
		m.CurrentStep = StepVectorCount
		return m, m.focusStep()
	case "n", "q":
		m.Confirmed = false
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m *WizardModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	switch m.CurrentStep {
	case StepVectorCount:
		m.viewTextStep(&b, "Step 1: How many vectors will you store?", m.VectorsInput)
	case StepDimensions:
		m.viewTextStep(&b, "Step 2: Vector dimensions?", m.DimensionsInput)
	case StepLatency:
		m.viewLatency(&b)
	case StepMemoryBudget:
		m.viewTextStep(&b, "Step 4: Memory budget per search node (GB)?", m.MemoryInput)
	case StepQPSTarget:
		m.viewTextStep(&b, "Step 5: Expected QPS?", m.QPSInput)
	case StepUseCase:
		m.viewUseCase(&b)
	case StepGPU:
		m.viewGPU(&b)
	case StepConfirm:
		m.viewConfirm(&b)
	}

	return wizardDocStyle.Render(b.String())
}

func (m *WizardModel) viewTextStep(b *strings.Builder, title string, input textinput.Model) {
	b.WriteString(wizardTitleStyle.Render(title) + "\n\n")
	b.WriteString(input.View() + "\n")

	if m.Error != "" {
		b.WriteString("\n" + wizardErrorStyle.Render(m.Error) + "\n")
	}

	b.WriteString("\n" + wizardHelpStyle.Render("Press 'enter' to confirm, 'esc' to go back, 'ctrl+c' to quit"))
}

func (m *WizardModel) viewLatency(b *strings.Builder) {
	b.WriteString(wizardTitleStyle.Render("Step 3: Latency requirement?") + "\n\n")

	for i, choice := range latencyChoices {
		cursor := "  "
		if m.LatencyCursor == i {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%s", cursor, choice.Label)
		if m.LatencyCursor == i {
			b.WriteString(wizardSelectedStyle.Render(row) + "\n")
		} else {
			b.WriteString(wizardItemStyle.Render(row) + "\n")
		}
	}

	b.WriteString("\n" + wizardHelpStyle.Render("Use arrow keys or j/k to move, 'enter' to select, 'esc' to go back, 'q' to quit"))
}

func (m *WizardModel) viewUseCase(b *strings.Builder) {
	b.WriteString(wizardTitleStyle.Render("Step 6: Primary use case?") + "\n\n")

	for i, useCase := range core.UseCases() {
		cursor := "  "
		if m.UseCaseCursor == i {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%s", cursor, useCase)
		if m.UseCaseCursor == i {
			b.WriteString(wizardSelectedStyle.Render(row) + "\n")
		} else {
			b.WriteString(wizardItemStyle.Render(row) + "\n")
		}
	}

	b.WriteString("\n" + wizardHelpStyle.Render("Use arrow keys or j/k to move, 'enter' to select, 'esc' to go back, 'q' to quit"))
}

func (m *WizardModel) viewGPU(b *strings.Builder) {
	b.WriteString(wizardTitleStyle.Render("Step 7: Do you have GPUs available?") + "\n\n")

	for i, choice := range gpuChoices {
		cursor := "  "
		if m.GPUCursor == i {
			cursor = "> "
		}
		row := fmt.Sprintf("%s%s", cursor, choice)
		if m.GPUCursor == i {
			b.WriteString(wizardSelectedStyle.Render(row) + "\n")
		} else {
			b.WriteString(wizardItemStyle.Render(row) + "\n")
		}
	}

	b.WriteString("\n" + wizardHelpStyle.Render("Use arrow keys or j/k to move, 'enter' to select, 'esc' to go back, 'q' to quit"))
}

func (m *WizardModel) viewConfirm(b *strings.Builder) {
	b.WriteString(wizardTitleStyle.Render("Step 8: Review and confirm") + "\n\n")

	fmt.Fprintf(b, "  Vectors:        %s\n", humanize.Comma(m.Requirement.NumVectors))
	fmt.Fprintf(b, "  Dimensions:     %d\n", m.Requirement.Dimensions)
	fmt.Fprintf(b, "  Latency target: %.0f ms\n", m.Requirement.LatencyRequirementMS)
	fmt.Fprintf(b, "  Memory budget:  %.1f GB\n", m.Requirement.MemoryBudgetGB)
	fmt.Fprintf(b, "  QPS target:     %d\n", m.Requirement.QPSTarget)
	fmt.Fprintf(b, "  Use case:       %s\n", m.Requirement.UseCase)
	fmt.Fprintf(b, "  GPUs:           %s\n", gpuChoices[m.GPUCursor])

	b.WriteString("\n" + wizardHelpStyle.Render("[Enter/y] Recommend  [e] Edit  [n/q] Quit"))
}

// GetRequirement returns the gathered requirement
func (m *WizardModel) GetRequirement() core.Requirement {
	return m.Requirement
}

// IsConfirmed returns whether the user confirmed the requirement
func (m *WizardModel) IsConfirmed() bool {
	return m.Confirmed
}

// RunWizard runs the interactive wizard and returns the gathered requirement
func RunWizard() (core.Requirement, bool, error) {
	model := NewWizardModel()

	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return core.Requirement{}, false, err
	}

	m := finalModel.(*WizardModel)
	return m.GetRequirement(), m.IsConfirmed(), nil
}
