package state

// Level is the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Notification is a one-line message shown in the status bar
type Notification struct {
	Level   Level
	Message string
}

// NotificationState holds the notification currently shown, if any.
// A new notification replaces the previous one.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates an empty notification state
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows a notification
func (s *NotificationState) Add(level Level, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Current returns the notification being shown
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// Clear dismisses the notification
func (s *NotificationState) Clear() {
	s.current = nil
}
