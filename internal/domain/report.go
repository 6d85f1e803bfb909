package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// LocationType describes how the location field of a report should be read.
// The set of values is fixed by the mobile client; anything else is treated
// as unknown.
type LocationType string

const (
	LocationHomeAddress    LocationType = "HomeAddress"
	LocationPresentAddress LocationType = "PresentAddress"
	LocationCurrent        LocationType = "Current Location"
	LocationCustom         LocationType = "customLocation"
)

const (
	// NotificationTitle is the fixed title for every report notification.
	NotificationTitle = "MP Alertify - Emergency Report"

	// fallbackBody is used when a report carries no usable emergency text.
	fallbackBody = "Emergency Report"

	// emergencyOthers marks a report whose category lives in OtherEmergency.
	emergencyOthers = "Others"
)

// Report is an emergency report as stored in the realtime database under
// reports/<id>. Reports are created by the mobile client; this service only
// reads them and flips the publicized flag.
type Report struct {
	Emergency      string       `json:"emergency"`
	OtherEmergency string       `json:"otherEmergency"`
	LocationType   LocationType `json:"locationType"`
	Location       string       `json:"location"`
	Timestamp      any          `json:"timestamp"`
	Publicized     bool         `json:"publicized"`
}

// NotificationBody derives the notification body text for a report.
func (r *Report) NotificationBody() string {
	if r.Emergency == emergencyOthers {
		if r.OtherEmergency != "" {
			return r.OtherEmergency
		}
		return fallbackBody
	}
	if r.Emergency != "" {
		return r.Emergency
	}
	return fallbackBody
}

// TimestampString renders the report timestamp for the data payload. The
// client writes either a string or a number, so both must round-trip
// without scientific notation.
func (r *Report) TimestampString() string {
	switch t := r.Timestamp.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// coordPattern matches the "Lat: <n>, Lng: <n>" format the client emits for
// device-derived locations. Anchored at the start only; trailing text is
// ignored.
var coordPattern = regexp.MustCompile(`^Lat:\s*([-+]?\d+(?:\.\d+)?)\s*,\s*Lng:\s*([-+]?\d+(?:\.\d+)?)`)

// DescribeLocation turns a report's location type and raw text into the
// human-readable string used in notifications.
//
// Address types use the raw text verbatim. Coordinate types are parsed into
// "<lat>, <lng>" when possible, falling back to the raw text. Unknown types
// always yield "N/A".
func DescribeLocation(t LocationType, raw string) string {
	switch t {
	case LocationHomeAddress, LocationPresentAddress:
		if raw == "" {
			return "N/A"
		}
		return raw
	case LocationCurrent, LocationCustom:
		if m := coordPattern.FindStringSubmatch(raw); m != nil {
			return m[1] + ", " + m[2]
		}
		if raw == "" {
			return "Unknown Location"
		}
		return raw
	default:
		return "N/A"
	}
}
