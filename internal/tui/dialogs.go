package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/dragboard/internal/config/colors"
	"github.com/thenoetrevino/dragboard/internal/dnd"
	"github.com/thenoetrevino/dragboard/internal/models"
	"github.com/thenoetrevino/dragboard/internal/tui/huhforms"
	"github.com/thenoetrevino/dragboard/internal/tui/state"
)

// ============================================================================
// Forms
// ============================================================================

// openForm shows form as the dialog for mode and focuses its first field
func (m *Model) openForm(mode state.Mode, form *huh.Form) tea.Cmd {
	form = form.
		WithTheme(huhforms.Theme(m.colors)).
		WithWidth(min(60, max(20, m.uiState.Width()-10)))
	m.forms.Open(form)
	m.uiState.SetMode(mode)
	return form.Init()
}

func (m *Model) closeForm() {
	m.forms.Clear()
	m.uiState.SetMode(state.NormalMode)
}

// handleFormKey intercepts the keys that close a dialog before huh sees them
func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyEsc:
		m.closeForm()
		return nil
	case m.uiState.Mode() == state.DescriptionMode && key.Matches(msg, m.keys.Save):
		m.forms.Complete()
		return m.submitForm()
	}
	return m.updateForm(msg)
}

// updateForm forwards msg to the open form. huh moves between fields and
// submits through its own commands, so forms receive every message, not only keys.
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if m.forms.Form == nil {
		return nil
	}
	model, cmd := m.forms.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.forms.Form = form
	}
	if m.forms.Completed() {
		return m.submitForm()
	}
	return cmd
}

// submitForm closes the completed form and hands its values to the store
func (m *Model) submitForm() tea.Cmd {
	mode := m.uiState.Mode()
	title, description, confirmed := m.forms.Title, m.forms.Description, m.forms.Confirm
	m.closeForm()

	switch mode {
	case state.InputMode:
		return m.submitTitle(title)
	case state.DescriptionMode:
		st, id := m.store, taskID(m.target)
		return m.run("update description", func(ctx context.Context) (dnd.Item, error) {
			return dnd.Item{}, st.UpdateTask(ctx, id, models.TaskPatch{Description: &description})
		})
	case state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		if !confirmed {
			return nil
		}
		return m.submitDelete(mode)
	}
	return nil
}

// ============================================================================
// Title prompt
// ============================================================================

func (m *Model) openInput(kind inputKind, target int, value string) tea.Cmd {
	m.inputKind = kind
	m.target = target

	m.forms.Clear()
	m.forms.Title = value
	limit, validate := titleRules(kind)
	return m.openForm(state.InputMode, huhforms.TitleForm(m.inputTitle(), &m.forms.Title, limit, validate))
}

// titleRules returns the length limit and validator for a prompt's title
func titleRules(kind inputKind) (int, func(string) error) {
	check := func(normalize func(string) (string, error)) func(string) error {
		return func(s string) error {
			_, err := normalize(s)
			return err
		}
	}
	switch kind {
	case inputCreateBoard, inputRenameBoard:
		return models.MaxBoardTitleLength, check(models.NormalizeBoardTitle)
	case inputCreateColumn, inputRenameColumn:
		return models.MaxColumnTitleLength, check(models.NormalizeColumnTitle)
	default:
		return models.MaxTaskTitleLength, check(models.NormalizeTaskTitle)
	}
}

// inputTitle is the dialog heading for the current prompt
func (m *Model) inputTitle() string {
	switch m.inputKind {
	case inputCreateBoard:
		return "New board"
	case inputRenameBoard:
		return "Rename board"
	case inputCreateColumn:
		return "New column"
	case inputRenameColumn:
		return "Rename column"
	case inputAddTask:
		return "New task"
	default:
		return "Edit task title"
	}
}

// submitTitle hands an accepted title to the store
func (m *Model) submitTitle(value string) tea.Cmd {
	st, target := m.store, m.target
	switch m.inputKind {
	case inputCreateBoard:
		return m.run("create board", func(ctx context.Context) (dnd.Item, error) {
			_, err := st.CreateBoard(ctx, value)
			return dnd.Item{}, err
		})
	case inputRenameBoard:
		return m.run("rename board", func(ctx context.Context) (dnd.Item, error) {
			return dnd.Item{}, st.UpdateBoard(ctx, value)
		})
	case inputCreateColumn:
		return m.run("create column", func(ctx context.Context) (dnd.Item, error) {
			col, err := st.CreateColumn(ctx, value)
			if err != nil {
				return dnd.Item{}, err
			}
			return dnd.Column(col.ID), nil
		})
	case inputRenameColumn:
		return m.run("rename column", func(ctx context.Context) (dnd.Item, error) {
			return dnd.Item{}, st.UpdateColumn(ctx, columnID(target), value)
		})
	case inputAddTask:
		return m.run("create task", func(ctx context.Context) (dnd.Item, error) {
			task, err := st.CreateTask(ctx, columnID(target), value, "")
			if err != nil {
				return dnd.Item{}, err
			}
			return dnd.Task(task.ID), nil
		})
	default:
		return m.run("update task", func(ctx context.Context) (dnd.Item, error) {
			return dnd.Item{}, st.UpdateTask(ctx, taskID(target), models.TaskPatch{Title: &value})
		})
	}
}

// ============================================================================
// Description editor
// ============================================================================

func (m *Model) openEditor(task *models.Task) tea.Cmd {
	m.target = int(task.ID)
	m.forms.Clear()
	m.forms.Description = task.Description
	lines := min(12, max(3, m.uiState.Height()-12))
	return m.openForm(state.DescriptionMode, huhforms.DescriptionForm(&m.forms.Description, lines))
}

// ============================================================================
// Confirmations
// ============================================================================

func (m *Model) openConfirm(mode state.Mode, target int) tea.Cmd {
	m.target = target
	m.forms.Clear()
	form := huhforms.ConfirmForm(m.confirmPrompt(mode), &m.forms.Confirm, m.keys.Confirm, m.keys.Deny)
	return m.openForm(mode, form)
}

func (m *Model) submitDelete(mode state.Mode) tea.Cmd {
	st, target := m.store, m.target
	if mode == state.DeleteColumnConfirmMode {
		return m.run("delete column", func(ctx context.Context) (dnd.Item, error) {
			return dnd.Item{}, st.DeleteColumn(ctx, columnID(target))
		})
	}
	return m.run("delete task", func(ctx context.Context) (dnd.Item, error) {
		return dnd.Item{}, st.DeleteTask(ctx, taskID(target))
	})
}

// confirmPrompt describes what the pending confirmation will delete
func (m *Model) confirmPrompt(mode state.Mode) string {
	b := m.board()
	if mode == state.DeleteColumnConfirmMode {
		col, _ := b.Column(columnID(m.target))
		if col == nil {
			return "Delete column?"
		}
		return fmt.Sprintf("Delete column '%s' and its %d task(s)?", col.Title, len(col.Tasks))
	}
	task, _ := b.FindTask(taskID(m.target))
	if task == nil {
		return "Delete task?"
	}
	return fmt.Sprintf("Delete task '%s'?", task.Title)
}

// ============================================================================
// Task view
// ============================================================================

// markdownStyle picks the glamour style matching the color scheme
func (m *Model) markdownStyle() string {
	if m.colors.Preset == colors.PresetMonochrome {
		return "notty"
	}
	return "dark"
}

func (m *Model) openTaskView(task *models.Task) {
	body := task.Description
	if strings.TrimSpace(body) == "" {
		body = "_No description._"
	}
	md := fmt.Sprintf("# %s\n\n%s\n", task.Title, body)

	width := min(80, max(20, m.uiState.Width()-8))
	rendered, err := renderMarkdown(md, m.markdownStyle(), width)
	if err != nil {
		m.logger.Warn("failed to render description", "task_id", task.ID, "error", err)
		rendered = md
	}
	m.rendered = rendered
	m.uiState.SetMode(state.TaskViewMode)
}

func renderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
