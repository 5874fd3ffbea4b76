package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pending follow-up actions a motivation reply can arm. A subsequent "yes"
// from the user triggers the matching plan.
const (
	ActionWeeklyBalance = "weekly_balance"
	ActionImprove4W     = "improve_4w"
	ActionWeeklyBasic   = "weekly_basic"
	ActionRecovery14    = "recovery_14"
	ActionPlanFromPrefs = "plan_from_prefs"
)

var (
	yesRe        = regexp.MustCompile(`(?i)\b(yes|yeah|yup|sure|ok|okay|please|do it|go ahead|sounds good|let'?s go|i want|yes i want|proceed)\b`)
	cgpaWordRe   = regexp.MustCompile(`(?i)(cgpa|gpa)`)
	cgpaLabelRe  = regexp.MustCompile(`(?i)(cgpa|gpa)\s*(is|=|:)?\s*([0-9](?:\.[0-9]{1,2})?)`)
	looseValueRe = regexp.MustCompile(`(^|\s)([0-4](?:\.[0-9]{1,2})?)($|\s)`)
)

// IsAffirmative reports whether the text reads as a yes.
func IsAffirmative(text string) bool {
	return yesRe.MatchString(text)
}

// MentionsCGPA reports whether the text talks about a CGPA or GPA at all.
func MentionsCGPA(text string) bool {
	return cgpaWordRe.MatchString(text)
}

// ExtractCGPA pulls a CGPA value out of free text. A labeled value
// ("cgpa is 3.2") is preferred over a bare number; the first candidate in
// the valid 0..4 range wins.
func ExtractCGPA(text string) (float64, bool) {
	var candidates []float64
	if m := cgpaLabelRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[3], 64); err == nil {
			candidates = append(candidates, v)
		}
	}
	for _, m := range looseValueRe.FindAllStringSubmatch(text, -1) {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			candidates = append(candidates, v)
		}
	}
	for _, v := range candidates {
		if v >= 0 && v <= 4 {
			return v, true
		}
	}
	return 0, false
}

// MotivationReply builds the tiered encouragement message for a CGPA and
// the pending action armed behind it.
func MotivationReply(cgpa float64) (text, action string) {
	head := fmt.Sprintf("Thanks for sharing. Your current CGPA is %.2f.\n", cgpa)
	switch {
	case cgpa >= 3.5:
		return head + `You're doing really well, keep that momentum!

- Stay consistent: 1-2 focused hours daily beats cramming.
- Build skills: projects, internships, hackathons.
- Deepen understanding: teach a topic, use spaced recall.

Want a weekly plan to balance skill-building and coursework? Reply yes to generate it.`, ActionWeeklyBalance
	case cgpa >= 3.0:
		return head + `Solid foundation, you're closer than you think!

- Tight loop after class: 30-40m active recall.
- Target weak spots: office hours, 10 MCQs/day per course.
- 2 Pomodoros on weekdays, 3 on weekends.

Want a 4-week improvement plan? Say yes.`, ActionImprove4W
	case cgpa >= 2.5:
		return head + `You've got this. Let's rebuild with a clear plan.

- Daily minimum: 2x25m problem practice.
- Retake strategy: lift CGPA fastest with key retakes.
- Support: tutoring, a study buddy, office hours.

Want a simple weekly plan with checkpoints? Say yes.`, ActionWeeklyBasic
	default:
		return head + `It's fixable, and we'll go step by step.

- Stability first: a consistent 60-90m slot plus sleep.
- Micro-goals: 3 key tasks per day on a checklist.
- Rescue priorities: pick 1-2 courses to stabilize.

Shall I start a 14-day recovery plan? Say yes.`, ActionRecovery14
	}
}

// CannedPlan returns the fixed plan text for a motivation action, or ""
// for actions that need live data.
func CannedPlan(action string) string {
	switch action {
	case ActionWeeklyBalance:
		return `Weekly Balance Plan (Coursework + Skills)

Mon-Fri (2h/day)
- 60m coursework: active recall plus 10 practice questions
- 40m skills: pick one area (DSA/SQL/ML/Comms)
- 20m reflection and notes

Weekend
- Project hour plus review hour
- Plan next week (3 key tasks)

Checkpoints
- Fri quiz (10 MCQs)
- Sun: portfolio and notes update`
	case ActionImprove4W:
		return `4-Week Improvement Plan

Week 1 (Diagnose): past papers, error log, one office-hours visit
Week 2 (Rebuild): 2x25m drills/day, teach-back, 10 MCQs/day
Week 3 (Apply): mixed sets plus one long problem per course
Week 4 (Exam Mode): 3 mocks, one-pagers, rest before the exam`
	case ActionWeeklyBasic:
		return `Simple Weekly Plan with Checkpoints

Daily: 2x25m practice plus 10m recap
Mon/Wed/Fri: 30-40m active recall after class
Tue/Thu: past questions or lab work (45-60m)
Weekend: 2h consolidation plus planning next week`
	case ActionRecovery14:
		return `14-Day Recovery Plan

Days 1-3: set a 60-90m slot, triage 2 courses
Days 4-7: 3x25m blocks/day plus office hours
Days 8-11: past papers plus an error log
Days 12-14: two mocks, one-pagers, rest`
	default:
		return ""
	}
}

var (
	hoursRe  = regexp.MustCompile(`(?i)(\d+)\s*(h|hr|hour)`)
	daysRe   = regexp.MustCompile(`(?i)(\d+)\s*(day|days|d)\b`)
	courseRe = regexp.MustCompile(`(?i)[a-z]{3}\d{3}`)
	topicRe  = regexp.MustCompile(`(?i).*for`)
)

// FallbackPlanReply builds a generic study plan from whatever the prompt
// mentions. Used when no routine is set and the remote backend has nothing
// to say.
func FallbackPlanReply(prompt string) string {
	hours := "2"
	if m := hoursRe.FindStringSubmatch(prompt); m != nil {
		hours = m[1]
	}
	days := 7
	if m := daysRe.FindStringSubmatch(prompt); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			days = n
		}
	}

	var courses []string
	for _, c := range courseRe.FindAllString(prompt, -1) {
		courses = append(courses, strings.ToUpper(c))
		if len(courses) == 4 {
			break
		}
	}

	topic := strings.TrimSpace(topicRe.ReplaceAllString(prompt, ""))
	if len(topic) <= 3 {
		topic = "target topics"
	}

	var b strings.Builder
	plural := ""
	if days > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "Here's a focused plan based on %sh/day for %d day%s.\n", hours, days, plural)
	if len(courses) > 0 {
		fmt.Fprintf(&b, "Courses: %s\n", strings.Join(courses, ", "))
	}
	b.WriteString("\nDaily Structure (Pomodoro)\n- 25m focus x 3 with 10m breaks, then 20m recap\n- Final 10m: quick quiz or flashcards\n")
	b.WriteString("\nSchedule\n")
	for i := 1; i <= days && i <= 10; i++ {
		prefix := ""
		if len(courses) > 0 {
			prefix = courses[(i-1)%len(courses)] + ": "
		}
		fmt.Fprintf(&b, "- Day %d: %s%s (deep dive plus practice)\n", i, prefix, topic)
	}
	b.WriteString("\nChecklist\n- Break chapters into subsections\n- 5-10 active-recall questions per subsection\n- End with 10 MCQs or 2 coding problems\n")
	b.WriteString("\nTip: protect your study block (notifications off) and jot a one-line reflection.")
	return b.String()
}
