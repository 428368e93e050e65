package constant

type EventType string

const (
	EventTypeMeeting    EventType = "meeting"
	EventTypePhotoshoot EventType = "photoshoot"
	EventTypeDesign     EventType = "design"
	EventTypeDeadline   EventType = "deadline"
	EventTypeOther      EventType = "other"
)

func (e EventType) Valid() bool {
	switch e {
	case EventTypeMeeting, EventTypePhotoshoot, EventTypeDesign, EventTypeDeadline, EventTypeOther:
		return true
	}
	return false
}
