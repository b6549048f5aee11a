package prediction

// Segment is the closed set of risk tiers the dashboard knows how to
// render. Any identifier the service returns outside {0,1,2} collapses
// into SegmentUnknown, which renders as a prediction error rather than
// failing the call.
type Segment int

const (
	SegmentLow Segment = iota
	SegmentMedium
	SegmentHigh
	SegmentUnknown
)

// SegmentFromID maps a service-returned identifier to a Segment.
func SegmentFromID(id int) Segment {
	switch id {
	case 0:
		return SegmentLow
	case 1:
		return SegmentMedium
	case 2:
		return SegmentHigh
	default:
		return SegmentUnknown
	}
}

// Label returns the headline shown on the result card.
func (s Segment) Label() string {
	switch s {
	case SegmentLow:
		return "Low Risk Segment"
	case SegmentMedium:
		return "Medium Risk Segment"
	case SegmentHigh:
		return "High Risk Segment"
	default:
		return "Prediction Error"
	}
}

// String implements fmt.Stringer for logging.
func (s Segment) String() string {
	switch s {
	case SegmentLow:
		return "low"
	case SegmentMedium:
		return "medium"
	case SegmentHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Result is one classification returned by the prediction service.
type Result struct {
	RiskSegmentID   int    `json:"risk_segment_id"`
	RiskSegmentName string `json:"risk_segment_name"`
}

// Segment returns the closed variant for the result's identifier.
func (r Result) Segment() Segment {
	return SegmentFromID(r.RiskSegmentID)
}
