package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/dragboard/internal/cli/styles"
	"github.com/thenoetrevino/dragboard/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		if q, ok := data.(interface{ QuietValue() string }); ok {
			_, err := fmt.Fprintln(f.out(), q.QuietValue())
			return err
		}
		// Extract ID if possible
		if id, ok := idOf(data); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", id)
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err and returns it wrapped with its exit code
func (f *OutputFormatter) Fail(err error) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err))
	return &ExitError{Code: ExitCode(err), Err: err}
}

// Message is a human-readable confirmation with an optional ID for quiet mode
type Message struct {
	ID   int    `json:"id,omitempty"`
	Text string `json:"message"`
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	var s string
	switch v := data.(type) {
	case *models.Board:
		s = styles.RenderBoard(v)
	case *models.Column:
		s = styles.RenderColumn(v)
	case []*models.Column:
		for i, c := range v {
			if i > 0 {
				s += "\n"
			}
			s += styles.RenderColumn(c)
		}
	case *models.Task:
		s = styles.RenderTask(v)
	case Message:
		s = "✓ " + v.Text
	default:
		s = fmt.Sprintf("%+v", data)
	}
	_, err := fmt.Fprintln(f.out(), s)
	return err
}

func idOf(data interface{}) (int, bool) {
	switch v := data.(type) {
	case *models.Board:
		return int(v.ID), true
	case *models.Column:
		return int(v.ID), true
	case *models.Task:
		return int(v.ID), true
	case *models.User:
		return int(v.ID), true
	case Message:
		return v.ID, v.ID != 0
	case interface{ GetID() int }:
		return v.GetID(), true
	}
	return 0, false
}
