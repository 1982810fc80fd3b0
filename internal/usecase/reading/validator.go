package reading

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arcano/oracle/internal/domain"
)

// tarotKeywords are the domain terms a plausible interpretation mentions.
// The relevance check is substring-based and case-insensitive.
var tarotKeywords = []string{
	"carta", "tarot", "destino", "futuro", "pasado", "presente", "energía", "lectura", "arcano",
}

// technicalPatterns flag vocabulary the persona should never produce: the
// model drifting into software talk is the clearest sign the prompt was
// overridden.
var technicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(function|código|code|programming|programación|variable|algoritmo|algorithm|syntax|sintaxis|compile|compilar)\b`),
	regexp.MustCompile(`(?i)\b(import|export|class|interface|const|let|var|def|return)\b`),
	regexp.MustCompile(`(?i)\b(javascript|python|java|c\+\+|typescript|react|angular|vue)\b`),
}

// personaBreakPatterns flag the model confessing a role change.
var personaBreakPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)as an? (ai|assistant|language model|ingeniero|developer|programmer)`),
	regexp.MustCompile(`(?i)i (can't|cannot|can) (explain|help|assist|teach)`),
	regexp.MustCompile(`(?i)my (purpose|role|function) is (to|not)`),
	regexp.MustCompile(`(?i)i('m| am) (designed|programmed|trained) to`),
}

// ValidatorConfig carries the heuristic thresholds. RelevanceMinLength is the
// response length above which a question-bearing response must mention at
// least one tarot keyword; it is a tuning knob, not a hard law.
type ValidatorConfig struct {
	MinLength          int
	RelevanceMinLength int
}

// DefaultValidatorConfig returns the thresholds the heuristics were tuned with.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{MinLength: 100, RelevanceMinLength: 200}
}

// ResponseValidator inspects model output for signs of compromise before it
// may be shown to the consultant.
type ResponseValidator struct {
	cfg ValidatorConfig
}

// NewResponseValidator creates a validator. Zero-valued thresholds fall back
// to the defaults.
func NewResponseValidator(cfg ValidatorConfig) *ResponseValidator {
	defaults := DefaultValidatorConfig()
	if cfg.MinLength <= 0 {
		cfg.MinLength = defaults.MinLength
	}
	if cfg.RelevanceMinLength <= 0 {
		cfg.RelevanceMinLength = defaults.RelevanceMinLength
	}
	return &ResponseValidator{cfg: cfg}
}

// Validate returns nil only when the response passes every check. Each
// failure is a distinct compromised-response error with a themed message;
// the suspect text itself never travels on the error.
func (v *ResponseValidator) Validate(response, sanitizedQuestion string) error {
	length := utf8.RuneCountInString(response)

	if length < v.cfg.MinLength {
		err := domain.NewEmptyCompletionError("El Oráculo ha guardado silencio. Los Arcanos requieren ser invocados nuevamente.")
		err.Err = fmt.Errorf("response below minimum length %d", v.cfg.MinLength)
		return err
	}

	for _, pattern := range technicalPatterns {
		if pattern.MatchString(response) {
			err := domain.NewCompromisedResponseError("El Velo de los Arcanos ha sido perturbado. La lectura debe repetirse con intención renovada.")
			err.Err = fmt.Errorf("technical vocabulary in response")
			return err
		}
	}

	// A long answer to an explicit question that never touches the tarot
	// domain is suspicious. Skipped when no question was asked, since free
	// readings legitimately wander.
	if sanitizedQuestion != "" && length > v.cfg.RelevanceMinLength {
		lower := strings.ToLower(response)
		relevant := false
		for _, keyword := range tarotKeywords {
			if strings.Contains(lower, keyword) {
				relevant = true
				break
			}
		}
		if !relevant {
			err := domain.NewCompromisedResponseError("El mensaje de los Arcanos se ha distorsionado. Intenta nuevamente tu consulta.")
			err.Err = fmt.Errorf("no tarot context in long response")
			return err
		}
	}

	for _, pattern := range personaBreakPatterns {
		if pattern.MatchString(response) {
			err := domain.NewCompromisedResponseError("La voz del Oráculo ha sido interrumpida. Los Arcanos deben ser consultados de nuevo.")
			err.Err = fmt.Errorf("persona-break phrase in response")
			return err
		}
	}

	return nil
}
