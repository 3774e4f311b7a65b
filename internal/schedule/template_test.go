package schedule

import (
	"testing"
	"time"
)

func TestSelectTemplate(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name            string
		date            time.Time
		explicit        TemplateKey
		considerFasting bool
		fastingDay      bool
		fastingExists   bool
		want            TemplateKey
	}{
		{name: "weekday default", date: monday, want: TemplateWeekday},
		{name: "friday is congregational", date: friday, want: TemplateCongregational},
		{name: "saturday is weekend", date: saturday, want: TemplateWeekend},
		{name: "sunday is weekend", date: sunday, want: TemplateWeekend},
		{name: "explicit key wins", date: friday, explicit: TemplateWeekend, want: TemplateWeekend},
		{
			name: "fasting replaces weekday default",
			date: monday, considerFasting: true, fastingDay: true, fastingExists: true,
			want: TemplateFasting,
		},
		{
			name: "fasting needs the flag",
			date: monday, fastingDay: true, fastingExists: true,
			want: TemplateWeekday,
		},
		{
			name: "fasting needs a non-empty template",
			date: monday, considerFasting: true, fastingDay: true,
			want: TemplateWeekday,
		},
		{
			name: "fasting never replaces friday",
			date: friday, considerFasting: true, fastingDay: true, fastingExists: true,
			want: TemplateCongregational,
		},
		{
			name: "fasting never replaces weekend",
			date: saturday, considerFasting: true, fastingDay: true, fastingExists: true,
			want: TemplateWeekend,
		},
		{
			name: "fasting never replaces an explicit request",
			date: monday, explicit: TemplateWeekday, considerFasting: true, fastingDay: true, fastingExists: true,
			want: TemplateWeekday,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SelectTemplate(tc.date, tc.explicit, tc.considerFasting, tc.fastingDay, tc.fastingExists)
			if got != tc.want {
				t.Fatalf("SelectTemplate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidTemplateKey(t *testing.T) {
	t.Parallel()

	for _, key := range TemplateKeys {
		if !ValidTemplateKey(key) {
			t.Errorf("%q should be valid", key)
		}
	}
	if ValidTemplateKey("ramadan") {
		t.Error("unknown key accepted")
	}
}
