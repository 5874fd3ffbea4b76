package assistant

import (
	"math"
	"regexp"
	"strings"
)

// Intent labels the assistant understands.
const (
	IntentGreeting         = "greeting"
	IntentHowAreYou        = "how_are_you"
	IntentThanks           = "thanks"
	IntentFarewell         = "farewell"
	IntentPlanRequest      = "plan_request"
	IntentCgpaDissatisfied = "cgpa_dissatisfied"
	IntentCgpaSatisfied    = "cgpa_satisfied"
)

var intents = []string{
	IntentGreeting, IntentHowAreYou, IntentThanks, IntentFarewell,
	IntentPlanRequest, IntentCgpaDissatisfied, IntentCgpaSatisfied,
}

// trainingSamples is the fixed corpus the intent model is fitted on.
// Training is deterministic, so every process learns the same weights.
var trainingSamples = [][2]string{
	{"hi", IntentGreeting}, {"hello", IntentGreeting}, {"hey", IntentGreeting},
	{"good morning", IntentGreeting}, {"good evening", IntentGreeting},
	{"how are you", IntentHowAreYou}, {"how r u", IntentHowAreYou},
	{"how's it going", IntentHowAreYou}, {"how do you do", IntentHowAreYou},
	{"thanks", IntentThanks}, {"thank you", IntentThanks}, {"appreciate it", IntentThanks},
	{"bye", IntentFarewell}, {"goodbye", IntentFarewell}, {"see you", IntentFarewell}, {"later", IntentFarewell},
	{"make a weekly study plan", IntentPlanRequest},
	{"create a pomodoro session", IntentPlanRequest},
	{"10 day exam countdown", IntentPlanRequest},
	{"schedule for cse111", IntentPlanRequest},
	{"break down chapter 3", IntentPlanRequest},
	{"i am not satisfied with my cgpa", IntentCgpaDissatisfied},
	{"i am unhappy with my current cgpa", IntentCgpaDissatisfied},
	{"not happy with my gpa", IntentCgpaDissatisfied},
	{"i am satisfied with my cgpa", IntentCgpaSatisfied},
	{"i am happy with my gpa", IntentCgpaSatisfied},
}

// seedVocab widens the vocabulary beyond the training samples so domain
// words in user input still land on known features.
const seedVocab = "plan study schedule pomodoro exam countdown chapter course cgpa gpa grade target improve confidence motivation routine deadline"

var (
	nonTokenRe     = regexp.MustCompile(`[^a-z0-9\s+]`)
	dissatisfiedRe = regexp.MustCompile(`(?i)(not\s+(satisfied|happy|content)|unhappy|disappointed).*(cgpa|gpa)|^(i'?m|i am)\s+not\s+(satisfied|happy)`)
	satisfiedRe    = regexp.MustCompile(`(?i)(satisfied|happy|proud).*(cgpa|gpa)`)
	planKeywordRe  = regexp.MustCompile(`(?i)(plan|schedule|pomodoro|exam|countdown|study|break down|syllabus|chapter|routine|deadline)`)
)

func tokenize(s string) []string {
	cleaned := nonTokenRe.ReplaceAllString(strings.ToLower(s), " ")
	return strings.Fields(cleaned)
}

func buildVocab(samples [][2]string) []string {
	var vocab []string
	seen := map[string]bool{}
	add := func(tok string) {
		if !seen[tok] {
			seen[tok] = true
			vocab = append(vocab, tok)
		}
	}
	for _, sample := range samples {
		for _, tok := range tokenize(sample[0]) {
			add(tok)
		}
	}
	for _, tok := range strings.Fields(seedVocab) {
		add(tok)
	}
	return vocab
}

// vectorize maps text to a binary bag-of-words feature vector.
func vectorize(text string, vocab []string) []float64 {
	present := map[string]bool{}
	for _, tok := range tokenize(text) {
		present[tok] = true
	}
	x := make([]float64, len(vocab))
	for i, v := range vocab {
		if present[v] {
			x[i] = 1
		}
	}
	return x
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

type logRegModel struct {
	w []float64
	b float64
}

// trainLogReg fits one-vs-rest logistic regression with plain gradient
// descent. The corpus is tiny, so this converges in milliseconds.
func trainLogReg(samples [][2]string, labels []string, vocab []string, epochs int, lr, l2 float64) []logRegModel {
	features := make([][]float64, len(samples))
	for i, sample := range samples {
		features[i] = vectorize(sample[0], vocab)
	}

	models := make([]logRegModel, len(labels))
	for k, label := range labels {
		w := make([]float64, len(vocab))
		var b float64
		for ep := 0; ep < epochs; ep++ {
			for i, x := range features {
				var y float64
				if samples[i][1] == label {
					y = 1
				}
				z := dot(w, x) + b
				p := 1 / (1 + math.Exp(-z))
				g := p - y
				for j := range w {
					w[j] -= lr * (g*x[j] + l2*w[j])
				}
				b -= lr * g
			}
		}
		models[k] = logRegModel{w: w, b: b}
	}
	return models
}

// Classifier resolves free-form user text to an intent label. Hard regex
// overrides run before the model, and a keyword net runs after it: planner
// vocabulary anywhere in the input forces plan_request.
type Classifier struct {
	vocab  []string
	models []logRegModel
}

// NewClassifier trains the intent model on the built-in corpus.
func NewClassifier() *Classifier {
	vocab := buildVocab(trainingSamples)
	return &Classifier{
		vocab:  vocab,
		models: trainLogReg(trainingSamples, intents, vocab, 180, 0.2, 1e-4),
	}
}

func (c *Classifier) Predict(text string) string {
	if dissatisfiedRe.MatchString(text) {
		return IntentCgpaDissatisfied
	}
	if satisfiedRe.MatchString(text) {
		return IntentCgpaSatisfied
	}

	x := vectorize(text, c.vocab)
	best := IntentPlanRequest
	bestScore := math.Inf(-1)
	for k, m := range c.models {
		if z := dot(m.w, x) + m.b; z > bestScore {
			best = intents[k]
			bestScore = z
		}
	}

	if planKeywordRe.MatchString(text) {
		return IntentPlanRequest
	}
	return best
}
