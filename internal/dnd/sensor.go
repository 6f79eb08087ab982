package dnd

// DefaultActivationDistance is how far (in cells) the pointer must travel with the
// button held before a press turns into a drag. Shorter presses stay clicks.
const DefaultActivationDistance = 1

// PointerSensor turns raw press/motion/release events into gesture phases. It only
// tracks geometry; the caller maps coordinates to items.
type PointerSensor struct {
	Distance int

	pressed bool
	active  bool
	item    Item
	originX int
	originY int
}

// NewPointerSensor creates a sensor with the given activation distance. Negative
// distances fall back to the default.
func NewPointerSensor(distance int) *PointerSensor {
	if distance < 0 {
		distance = DefaultActivationDistance
	}
	return &PointerSensor{Distance: distance}
}

// Press records a button press on item at (x, y). Pressing on nothing is ignored.
func (s *PointerSensor) Press(x, y int, item Item) {
	s.Reset()
	if item.Empty() {
		return
	}
	s.pressed = true
	s.item = item
	s.originX, s.originY = x, y
}

// Motion reports pointer movement while the button is held. It returns the item to
// start dragging exactly once, when the travelled distance first reaches the
// activation distance.
func (s *PointerSensor) Motion(x, y int) (Item, bool) {
	if !s.pressed || s.active {
		return Item{}, false
	}
	if chebyshev(x-s.originX, y-s.originY) < s.Distance {
		return Item{}, false
	}
	s.active = true
	return s.item, true
}

// Release ends the press and reports whether a drag had been activated. A release
// without activation is a click on the pressed item.
func (s *PointerSensor) Release() (item Item, dragged bool) {
	item, dragged = s.item, s.active
	s.Reset()
	return item, dragged
}

// Active reports whether the current press has become a drag
func (s *PointerSensor) Active() bool {
	return s.active
}

// Reset forgets the current press
func (s *PointerSensor) Reset() {
	s.pressed = false
	s.active = false
	s.item = Item{}
	s.originX, s.originY = 0, 0
}

// chebyshev distance matches how terminal cells are addressed: a diagonal step is
// one cell.
func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
