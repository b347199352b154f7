package notification

// NotificationError is a custom error type for notification errors
type NotificationError string

// Error implements the error interface
func (e NotificationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          NotificationError = "config cannot be nil"
	ErrNilTeams           NotificationError = "team registry cannot be nil"
	ErrNilPreferences     NotificationError = "preference store cannot be nil"
	ErrNilAggregator      NotificationError = "damage aggregator cannot be nil"
	ErrNilScheduler       NotificationError = "message scheduler cannot be nil"
	ErrNilCatalog         NotificationError = "message catalog cannot be nil"
	ErrNilHost            NotificationError = "host cannot be nil"
	ErrInvalidDuration    NotificationError = "display duration must be positive"
	ErrInvalidResetPolicy NotificationError = "unknown grenade reset policy"
	ErrNilInput           NotificationError = "input cannot be nil"
	ErrEmptyIdentity      NotificationError = "player identity cannot be empty"
	ErrUnexpectedEvent    NotificationError = "unexpected event type"
)
