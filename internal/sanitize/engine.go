// Package sanitize validates untrusted consultant input before it is allowed
// anywhere near a model prompt. One rule table drives two adapters: the
// result-returning validators feed live UI feedback, and the Engine's
// Question/Name methods gate the network call by returning hard errors.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arcano/oracle/internal/domain"
)

const (
	// MaxQuestionLength is the maximum accepted question length, in runes.
	MaxQuestionLength = 500
	// MaxNameLength is the maximum accepted consultant name length, in runes.
	MaxNameLength = 50
	// DefaultSpecialCharRatio is the fraction of characters outside the
	// allow-list above which input is rejected.
	DefaultSpecialCharRatio = 0.2
)

// ValidationResult is the advisory outcome used for live input feedback.
// The authoritative check re-runs inside the Engine before any model call.
type ValidationResult struct {
	IsValid        bool
	Error          string
	RemainingChars int
}

// specialChars matches every character outside the allow-list: ASCII
// letters and digits, whitespace, extended Latin accents, and the
// punctuation a Spanish question naturally carries.
var specialChars = regexp.MustCompile(`[^a-zA-Z0-9\s\x{00C0}-\x{017F}¿?¡!.,;:]`)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// Engine holds the compiled rule table and thresholds.
type Engine struct {
	rules    []Rule
	maxRatio float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpecialCharRatio overrides the special-character rejection threshold.
func WithSpecialCharRatio(ratio float64) Option {
	return func(e *Engine) { e.maxRatio = ratio }
}

// WithRules replaces the default injection rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

// NewEngine creates a sanitization engine with the default rule table.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:    DefaultRules(),
		maxRatio: DefaultSpecialCharRatio,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// ValidateQuestion classifies a raw question for live feedback. Empty input
// is valid: the question is optional.
func ValidateQuestion(text string) ValidationResult {
	return defaultEngine.ValidateQuestion(text)
}

// ValidateName classifies a raw consultant name for live feedback.
func ValidateName(text string) ValidationResult {
	return defaultEngine.ValidateName(text)
}

// ValidateQuestion classifies a raw question for live feedback.
func (e *Engine) ValidateQuestion(text string) ValidationResult {
	return e.validate(text, MaxQuestionLength,
		fmt.Sprintf("Tu pregunta es demasiado extensa. Máximo %d caracteres.", MaxQuestionLength))
}

// ValidateName classifies a raw consultant name for live feedback.
func (e *Engine) ValidateName(text string) ValidationResult {
	return e.validate(text, MaxNameLength,
		fmt.Sprintf("Tu nombre es demasiado extenso. Máximo %d caracteres.", MaxNameLength))
}

func (e *Engine) validate(text string, limit int, lengthMessage string) ValidationResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ValidationResult{IsValid: true, RemainingChars: limit}
	}

	remaining := limit - utf8.RuneCountInString(trimmed)
	if remaining < 0 {
		return ValidationResult{IsValid: false, Error: lengthMessage, RemainingChars: remaining}
	}

	if v := e.inspect(trimmed); v != nil {
		return ValidationResult{IsValid: false, Error: v.advisory(), RemainingChars: remaining}
	}

	return ValidationResult{IsValid: true, RemainingChars: remaining}
}

// Question runs the authoritative checks and returns the normalized question.
// A failed check surfaces as an input-rejected error with a themed message;
// the matched rule category travels on the wrapped cause for logging.
// Empty input passes through: the question is optional.
func (e *Engine) Question(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	if utf8.RuneCountInString(trimmed) > MaxQuestionLength {
		return "", reject(
			"El Oráculo solo escucha las preguntas concisas (máximo 500 caracteres). Concentra tu consulta en su esencia más pura.",
			"question length limit exceeded")
	}

	if v := e.inspect(trimmed); v != nil {
		return "", reject(v.themedQuestion(), v.detail())
	}

	return normalize(trimmed), nil
}

// Name runs the authoritative checks on the consultant name.
func (e *Engine) Name(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return "", reject(
			"El linaje de tu nombre es demasiado extenso para ser inscrito en el Libro del Destino. Utiliza un apelativo más conciso (máximo 50 caracteres).",
			"name length limit exceeded")
	}

	if v := e.inspect(trimmed); v != nil {
		return "", reject(
			"Los Arcanos detectan energías discordantes en el nombre que pronuncias. Reformula con intención pura y el Oráculo te reconocerá.",
			v.detail())
	}

	return normalize(trimmed), nil
}

func reject(themed, detail string) *domain.Error {
	err := domain.NewInputRejectedError(themed)
	err.Err = fmt.Errorf("sanitize: %s", detail)
	return err
}

// violationKind orders the non-length checks: rule table, then ratio,
// then repetition.
type violationKind int

const (
	violationPattern violationKind = iota
	violationRatio
	violationRepetition
)

type violation struct {
	kind violationKind
	rule *Rule
}

func (v *violation) advisory() string {
	switch v.kind {
	case violationPattern:
		return v.rule.Message
	case violationRatio:
		return "Tu pregunta contiene demasiados símbolos especiales. Usa palabras naturales."
	default:
		return "Evita repetir el mismo carácter muchas veces. Escribe con claridad."
	}
}

func (v *violation) themedQuestion() string {
	switch v.kind {
	case violationPattern:
		return "Los Arcanos detectan energías discordantes en tu pregunta. Reformula tu consulta con intención pura y el Oráculo responderá."
	case violationRatio:
		return "El Hilo del Destino se enreda con símbolos extraños. Simplifica tu pregunta para que los Arcanos puedan comprenderla."
	default:
		return "El eco de símbolos repetidos confunde al Oráculo. Habla con claridad en tu consulta."
	}
}

func (v *violation) detail() string {
	switch v.kind {
	case violationPattern:
		return "injection rule matched: " + v.rule.Category
	case violationRatio:
		return "special-character ratio exceeded"
	default:
		return "repeated character run"
	}
}

// inspect runs the order-sensitive checks shared by both adapters and
// returns the first violation, or nil when the text is clean.
func (e *Engine) inspect(text string) *violation {
	for i := range e.rules {
		if e.rules[i].Pattern.MatchString(text) {
			return &violation{kind: violationPattern, rule: &e.rules[i]}
		}
	}

	total := utf8.RuneCountInString(text)
	special := len(specialChars.FindAllString(text, -1))
	if float64(special)/float64(total) > e.maxRatio {
		return &violation{kind: violationRatio}
	}

	if hasRepeatedRun(text, 5) {
		return &violation{kind: violationRepetition}
	}

	return nil
}

// hasRepeatedRun reports whether any rune repeats at least n times in a row.
// RE2 has no backreferences, so the classic (.)\1{4,} check is a rune scan.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// normalize collapses whitespace runs and trims the ends.
func normalize(text string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(text, " "))
}
