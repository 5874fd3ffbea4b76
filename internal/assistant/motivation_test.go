package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCGPA(t *testing.T) {
	cases := []struct {
		text  string
		want  float64
		found bool
	}{
		{"my cgpa is 3.2", 3.2, true},
		{"gpa: 2.75", 2.75, true},
		{"GPA = 4", 4, true},
		{"i got 3.41 this semester", 3.41, true},
		{"cgpa is 9.5 but really 3.1", 3.1, true},
		{"no numbers here", 0, false},
		{"my score is 85", 0, false},
		{"0.0", 0, true},
	}
	for _, tc := range cases {
		got, ok := ExtractCGPA(tc.text)
		assert.Equal(t, tc.found, ok, "text %q", tc.text)
		if tc.found {
			assert.InDelta(t, tc.want, got, 1e-9, "text %q", tc.text)
		}
	}
}

func TestExtractCGPAPrefersLabeledValue(t *testing.T) {
	got, ok := ExtractCGPA("after 2 semesters my cgpa is 3.6")
	require.True(t, ok)
	assert.InDelta(t, 3.6, got, 1e-9)
}

func TestIsAffirmative(t *testing.T) {
	assert.True(t, IsAffirmative("yes please"))
	assert.True(t, IsAffirmative("sounds good"))
	assert.True(t, IsAffirmative("let's go"))
	assert.True(t, IsAffirmative("OK"))
	assert.False(t, IsAffirmative("no thanks"))
	assert.False(t, IsAffirmative("maybe later"))
}

func TestMotivationReplyTiers(t *testing.T) {
	cases := []struct {
		cgpa   float64
		action string
	}{
		{3.9, ActionWeeklyBalance},
		{3.5, ActionWeeklyBalance},
		{3.49, ActionImprove4W},
		{3.0, ActionImprove4W},
		{2.99, ActionWeeklyBasic},
		{2.5, ActionWeeklyBasic},
		{2.49, ActionRecovery14},
		{0, ActionRecovery14},
	}
	for _, tc := range cases {
		text, action := MotivationReply(tc.cgpa)
		assert.Equal(t, tc.action, action, "cgpa %.2f", tc.cgpa)
		assert.Contains(t, text, "Thanks for sharing")
	}

	text, _ := MotivationReply(3.21)
	assert.Contains(t, text, "3.21")
}

func TestCannedPlan(t *testing.T) {
	for _, action := range []string{ActionWeeklyBalance, ActionImprove4W, ActionWeeklyBasic, ActionRecovery14} {
		assert.NotEmpty(t, CannedPlan(action), "action %s", action)
	}
	assert.Empty(t, CannedPlan(ActionPlanFromPrefs))
	assert.Empty(t, CannedPlan("unknown"))
}

func TestFallbackPlanReply(t *testing.T) {
	reply := FallbackPlanReply("make a 3 day plan for recursion, 2h a day, cse110 and cse111")

	assert.Contains(t, reply, "2h/day for 3 days")
	assert.Contains(t, reply, "CSE110")
	assert.Contains(t, reply, "CSE111")
	assert.Contains(t, reply, "Day 3:")
	assert.NotContains(t, reply, "Day 4:")
	assert.Contains(t, reply, "recursion")
}

func TestFallbackPlanReplyDefaults(t *testing.T) {
	reply := FallbackPlanReply("study for me")

	assert.Contains(t, reply, "2h/day for 7 days")
	assert.Contains(t, reply, "target topics")
	assert.Contains(t, reply, "Day 7:")
}

func TestFallbackPlanReplyCapsScheduleAtTenDays(t *testing.T) {
	reply := FallbackPlanReply("30 day plan for calculus")

	assert.Contains(t, reply, "for 30 days")
	assert.Contains(t, reply, "Day 10:")
	assert.NotContains(t, reply, "Day 11:")
}
