package dnd

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/dragboard/internal/models"
)

// ErrBusy is returned by Start while the previous gesture's drop is still being
// committed. A new drag must not read the board before that drop has landed.
var ErrBusy = errors.New("previous drop is still being saved")

// ErrUnknownItem is returned by Start when the dragged item is not on the board
var ErrUnknownItem = errors.New("dragged item is not on the board")

// BoardSource supplies the board snapshot a gesture resolves against
type BoardSource interface {
	Board() *models.Board
}

// Committer persists a completed drop
type Committer interface {
	Apply(ctx context.Context, m Move) error
}

// Gesture tracks a single drag from start to drop. Over may be called any number of
// times and only refreshes the preview; End commits at most once.
type Gesture struct {
	mu sync.Mutex

	source    BoardSource
	committer Committer
	logger    *slog.Logger

	active     Item
	over       Item
	snapshot   *models.Board
	preview    *models.Board
	last       Move
	resolved   bool
	committing bool
}

// GestureOption configures a Gesture
type GestureOption func(*Gesture)

// WithLogger sets the gesture logger
func WithLogger(logger *slog.Logger) GestureOption {
	return func(g *Gesture) {
		g.logger = logger
	}
}

// NewGesture creates an idle gesture session
func NewGesture(source BoardSource, committer Committer, opts ...GestureOption) *Gesture {
	g := &Gesture{
		source:    source,
		committer: committer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start begins dragging active. Any gesture already in progress is cancelled.
func (g *Gesture) Start(active Item) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.committing {
		return ErrBusy
	}

	snapshot := g.source.Board()
	if !onBoard(snapshot, active) {
		g.reset()
		return ErrUnknownItem
	}

	if !g.active.Empty() {
		g.logger.Debug("drag replaced", "previous", g.active.String(), "active", active.String())
	}
	g.reset()
	g.active = active
	g.snapshot = snapshot
	g.preview = snapshot
	return nil
}

// Over records the element under the pointer and re-resolves the drop. It returns
// the resolved move, or false when dropping here would do nothing.
func (g *Gesture) Over(over Item) (Move, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active.Empty() || over == g.over {
		return g.last, g.resolved
	}
	g.over = over
	g.last, g.resolved = Resolve(g.snapshot, g.active, over)

	g.preview = g.snapshot
	if g.resolved {
		preview := g.snapshot.Clone()
		if _, err := g.last.Apply(preview); err == nil {
			g.preview = preview
		}
	}
	return g.last, g.resolved
}

// End finishes the gesture with over as the drop target. An empty or no-op target
// cancels the gesture without persisting. Otherwise the move is committed once and
// the committed move is returned.
func (g *Gesture) End(ctx context.Context, over Item) (Move, bool, error) {
	g.mu.Lock()
	if g.active.Empty() {
		g.mu.Unlock()
		return Move{}, false, nil
	}

	move, ok := Resolve(g.snapshot, g.active, over)
	active := g.active
	g.reset()
	if !ok {
		g.mu.Unlock()
		g.logger.Debug("drag cancelled", "active", active.String(), "over", over.String())
		return Move{}, false, nil
	}
	g.committing = true
	g.mu.Unlock()

	err := g.committer.Apply(ctx, move)

	g.mu.Lock()
	g.committing = false
	g.mu.Unlock()

	if err != nil {
		return move, true, err
	}
	g.logger.Debug("drop committed", "move", move.String())
	return move, true, nil
}

// Cancel abandons the gesture without persisting anything
func (g *Gesture) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

// Active returns the dragged item, empty when idle
func (g *Gesture) Active() Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// OverItem returns the last element reported under the pointer
func (g *Gesture) OverItem() Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.over
}

// Dragging reports whether a gesture is in progress
func (g *Gesture) Dragging() bool {
	return !g.Active().Empty()
}

// Committing reports whether a drop is being saved
func (g *Gesture) Committing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.committing
}

// Preview returns the board as it would look if dropped now. It is nil when idle
// and must be treated as read-only.
func (g *Gesture) Preview() *models.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.preview
}

func (g *Gesture) reset() {
	g.active = Item{}
	g.over = Item{}
	g.snapshot = nil
	g.preview = nil
	g.last = Move{}
	g.resolved = false
}

func onBoard(b *models.Board, item Item) bool {
	switch item.Kind {
	case KindTask:
		t, _ := b.FindTask(item.TaskID())
		return t != nil
	case KindColumn:
		c, _ := b.Column(item.ColumnID())
		return c != nil
	default:
		return false
	}
}
