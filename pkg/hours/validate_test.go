package hours

import "testing"

func TestValidateTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"00:00", true},
		{"09:00", true},
		{"9:00", true},
		{"19:59", true},
		{"23:59", true},
		{"24:00", false},
		{"25:00", false},
		{"12:60", false},
		{"9:00am", false},
		{"", false},
		{"09-00", false},
		{"009:00", false},
	}

	for _, test := range tests {
		if got := ValidateTime(test.input); got != test.valid {
			t.Errorf("ValidateTime(%q) = %v, expected %v", test.input, got, test.valid)
		}
	}
}

func TestValidateDayClosedDaysExempt(t *testing.T) {
	errs := ValidateDay("monday", DaySchedule{Open: "garbage", Close: "", IsOpen: false})
	if len(errs) != 0 {
		t.Errorf("closed day should skip time validation, got %v", errs)
	}
}

func TestValidateDayFieldScopedErrors(t *testing.T) {
	errs := ValidateDay("monday", DaySchedule{Open: "25:00", Close: "17:00", IsOpen: true})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if _, ok := errs["mondayOpen"]; !ok {
		t.Errorf("expected error keyed mondayOpen, got %v", errs)
	}

	errs = ValidateDay("friday", DaySchedule{Open: "09:00", Close: "9:00am", IsOpen: true})
	if _, ok := errs["fridayClose"]; !ok || len(errs) != 1 {
		t.Errorf("expected only fridayClose error, got %v", errs)
	}
}

func TestValidateWeeklyMergesDays(t *testing.T) {
	weekly := WeeklySchedule{
		"monday":  {Open: "bad", Close: "17:00", IsOpen: true},
		"tuesday": {Open: "09:00", Close: "17:00", IsOpen: true},
		"sunday":  {Open: "", Close: "worse", IsOpen: true},
	}

	errs := ValidateWeekly(weekly)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %v", errs)
	}
	for _, key := range []string{"mondayOpen", "sundayOpen", "sundayClose"} {
		if _, ok := errs[key]; !ok {
			t.Errorf("missing expected error key %q in %v", key, errs)
		}
	}
}

func TestApplySameHoursWeekdayGroup(t *testing.T) {
	weekly := WeeklySchedule{}
	for _, day := range Days {
		weekly[day] = DaySchedule{Open: "08:00", Close: "12:00", IsOpen: true}
	}
	weekly["wednesday"] = DaySchedule{Open: "08:00", Close: "12:00", IsOpen: false}
	weekly["saturday"] = DaySchedule{Open: "10:00", Close: "14:00", IsOpen: true}

	out := ApplySameHours(weekly, WeekdayGroup, "10:00", "18:00")

	for _, day := range WeekdayGroup {
		d := out[day]
		if d.Open != "10:00" || d.Close != "18:00" {
			t.Errorf("%s = %+v, expected 10:00-18:00", day, d)
		}
	}
	if out["wednesday"].IsOpen {
		t.Error("bulk edit must not flip isOpen flags")
	}
	if got := out["saturday"]; got.Open != "10:00" || got.Close != "14:00" {
		t.Errorf("weekend day touched by weekday group edit: %+v", got)
	}
	// input map untouched
	if weekly["monday"].Open != "08:00" {
		t.Error("ApplySameHours mutated its input")
	}
}

func TestApplySameHoursWeekendGroup(t *testing.T) {
	weekly := WeeklySchedule{
		"saturday": {IsOpen: true},
		"sunday":   {IsOpen: false},
	}

	out := ApplySameHours(weekly, WeekendGroup, "11:00", "15:00")

	for _, day := range WeekendGroup {
		d := out[day]
		if d.Open != "11:00" || d.Close != "15:00" {
			t.Errorf("%s = %+v, expected 11:00-15:00", day, d)
		}
	}
	if !out["saturday"].IsOpen || out["sunday"].IsOpen {
		t.Error("isOpen flags changed by weekend group edit")
	}
}
