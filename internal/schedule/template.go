package schedule

import "time"

// TemplateKey names one of the recurring base schedule collections.
type TemplateKey string

const (
	// TemplateWeekday is the Monday-Thursday base schedule.
	TemplateWeekday TemplateKey = "weekday"
	// TemplateWeekend is the Saturday/Sunday base schedule.
	TemplateWeekend TemplateKey = "weekend"
	// TemplateCongregational is the Friday schedule built around the
	// congregational prayer.
	TemplateCongregational TemplateKey = "congregational"
	// TemplateFasting replaces the weekday schedule on fasting days.
	TemplateFasting TemplateKey = "fasting"
)

// TemplateKeys lists every template collection in a stable order.
var TemplateKeys = []TemplateKey{TemplateWeekday, TemplateWeekend, TemplateCongregational, TemplateFasting}

// ValidTemplateKey reports whether the key names a known collection.
func ValidTemplateKey(key TemplateKey) bool {
	for _, k := range TemplateKeys {
		if k == key {
			return true
		}
	}
	return false
}

// SelectTemplate chooses the template collection for a date.
//
// An explicit key always wins. Otherwise the weekday decides: Friday maps to
// the congregational template, Saturday and Sunday to the weekend template,
// everything else to the weekday template. A marked fasting day with a
// non-empty fasting template replaces only the weekday-derived default; it
// never displaces an explicit request or a weekend/congregational choice.
func SelectTemplate(date time.Time, explicit TemplateKey, considerFasting, isFastingDay, fastingTemplateExists bool) TemplateKey {
	if explicit != "" {
		return explicit
	}

	var derived TemplateKey
	switch date.Weekday() {
	case time.Friday:
		derived = TemplateCongregational
	case time.Saturday, time.Sunday:
		derived = TemplateWeekend
	default:
		derived = TemplateWeekday
	}

	if derived == TemplateWeekday && considerFasting && isFastingDay && fastingTemplateExists {
		return TemplateFasting
	}
	return derived
}
