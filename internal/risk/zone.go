// Package risk classifies how much of the daily loss limit a trader has
// consumed and drives the one-shot threshold alerts on the dashboard.
package risk

// Zone is the four-level severity classification of used daily risk.
type Zone string

const (
	ZoneSafe    Zone = "safe"
	ZoneCaution Zone = "caution"
	ZoneDanger  Zone = "danger"
	ZoneStop    Zone = "stop"
)

// Zone thresholds as a percentage of the daily loss limit.
const (
	ThresholdCaution = 50
	ThresholdDanger  = 75
	ThresholdStop    = 100
)

// Message returns the advisory text shown alongside the zone.
func (z Zone) Message() string {
	switch z {
	case ZoneStop:
		return "DAILY RISK LIMIT REACHED! Stop trading immediately. You have reached your maximum daily loss limit."
	case ZoneDanger:
		return "You have used 75% of your daily risk limit. Consider stopping for the day."
	case ZoneCaution:
		return "You have used 50% of your daily risk limit. Be cautious with new trades."
	default:
		return "You are trading within safe limits."
	}
}

// Status is the outcome of classifying today's running loss.
type Status struct {
	Zone       Zone    `json:"zone"`
	Percentage float64 `json:"percentage"`
	UsedRisk   float64 `json:"used_risk"`
	MaxLoss    float64 `json:"max_daily_loss"`
	Message    string  `json:"message"`
}

// Classify maps the magnitude of today's loss to a risk zone. A non-positive
// loss limit is a misconfiguration and classifies as safe at 0%, limits are
// validated to be positive at the profile boundary.
func Classify(usedRisk, maxDailyLoss float64) Status {
	if maxDailyLoss <= 0 {
		return Status{Zone: ZoneSafe, UsedRisk: usedRisk, MaxLoss: maxDailyLoss, Message: ZoneSafe.Message()}
	}

	percentage := usedRisk / maxDailyLoss * 100

	var zone Zone
	switch {
	case percentage >= ThresholdStop:
		zone = ZoneStop
	case percentage >= ThresholdDanger:
		zone = ZoneDanger
	case percentage >= ThresholdCaution:
		zone = ZoneCaution
	default:
		zone = ZoneSafe
	}

	return Status{
		Zone:       zone,
		Percentage: percentage,
		UsedRisk:   usedRisk,
		MaxLoss:    maxDailyLoss,
		Message:    zone.Message(),
	}
}
