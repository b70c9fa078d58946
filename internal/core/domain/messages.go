package domain

import "errors"

// Messages shown to the user for failures with a dedicated explanation.
const (
	MsgNoAirports            = "Dataset coverage limited: no airports found within the selected radius. Try increasing the radius."
	MsgOriginUnresolved      = "Please select an origin first."
	MsgDestinationUnresolved = "Please select a destination first."
	MsgUnknownError          = "Unknown error"
)

// UserMessage turns err into the message surfaced on the error banner.
// Backend-reported messages pass through verbatim.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoAirportsInRadius):
		return MsgNoAirports
	case errors.Is(err, ErrOriginUnresolved):
		return MsgOriginUnresolved
	case errors.Is(err, ErrDestinationUnresolved):
		return MsgDestinationUnresolved
	}
	if msg, ok := ReportedMessage(err); ok {
		return msg
	}
	return err.Error()
}
