package motion

// Action is the normalized kind of a touch event.
type Action uint8

const (
	ActionOther Action = iota
	ActionDown
	ActionUp
	ActionMove
	ActionCancel
	ActionPointerDown
	ActionPointerUp
)

// Platform action codes, as packed in the low byte of the action word.
const (
	CodeDown = iota
	CodeUp
	CodeMove
	CodeCancel
	CodeOutside
	CodePointerDown
	CodePointerUp
	CodeHoverMove
	CodeScroll
	CodeHoverEnter
	CodeHoverExit
)

const (
	// ActionMask selects the action code from the action word.
	ActionMask = 0xff
	// PointerIndexMask selects the pointer index bits of the action word.
	PointerIndexMask = 0xff00
	// PointerIndexShift is the bit offset of the pointer index.
	PointerIndexShift = 8
)

// NoPointer marks an event without an active pointer slot.
const NoPointer = -1

// DecodeAction splits the platform action word into the action kind
// and the index of the pointer which triggered it.
func DecodeAction(word int) (Action, int) {
	index := (word & PointerIndexMask) >> PointerIndexShift

	switch word & ActionMask {
	case CodeDown:
		return ActionDown, index
	case CodeUp:
		return ActionUp, index
	case CodeMove:
		return ActionMove, index
	case CodeCancel:
		return ActionCancel, index
	case CodePointerDown:
		return ActionPointerDown, index
	case CodePointerUp:
		return ActionPointerUp, index
	}
	return ActionOther, index
}

// EncodeAction packs an action code and a pointer index into an action word.
func EncodeAction(code, index int) int {
	return (code & ActionMask) | ((index << PointerIndexShift) & PointerIndexMask)
}

// ContactBearing reports whether events of this kind carry contact points.
func (a Action) ContactBearing() bool {
	return a != ActionOther
}

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "Down"
	case ActionUp:
		return "Up"
	case ActionMove:
		return "Move"
	case ActionCancel:
		return "Cancel"
	case ActionPointerDown:
		return "PointerDown"
	case ActionPointerUp:
		return "PointerUp"
	default:
		return "Other"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
