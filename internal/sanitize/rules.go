package sanitize

import "regexp"

// Rule categories, useful for logging and for testing rules in isolation.
const (
	CategoryInstructionOverride = "instruction-override"
	CategoryRoleReassignment    = "role-reassignment"
	CategorySystemVocabulary    = "system-vocabulary"
	CategoryPromptExtraction    = "prompt-extraction"
	CategoryDelimiters          = "delimiters"
	CategoryEncodedPayload      = "encoded-payload"
	CategoryShellSyntax         = "shell-syntax"
	CategorySecurityJargon      = "security-jargon"
	CategoryMultiInstruction    = "multi-instruction"
	CategoryTechnicalRequest    = "technical-request"
	CategoryRoleDeclaration     = "role-declaration"
)

// Rule is a single injection-detection rule. Message is the advisory text
// returned to the UI when the rule matches; the authoritative sanitizer
// replaces it with a themed rejection.
type Rule struct {
	Category string
	Pattern  *regexp.Regexp
	Message  string
}

// DefaultRules returns the injection rule table in evaluation order.
// The first matching rule wins. Rules deliberately require context around
// trigger words ("ignora" alone is a legitimate Spanish verb) to keep the
// false-positive rate on real questions low.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: CategoryInstructionOverride,
			Pattern:  regexp.MustCompile(`(?i)\b(ignore|ignora|disregard|forget|olvida)\s+(all|todo|todas|previous|previo|previas|anteriores?|your|tu|tus|the|las?|los?)\s+(instructions?|instrucciones?|prompts?|rules?|reglas?|commands?|comandos?)`),
			Message:  "Tu pregunta contiene palabras que sugieren un intento de modificar el comportamiento del oráculo.",
		},
		{
			Category: CategoryRoleReassignment,
			Pattern:  regexp.MustCompile(`(?i)\b(you are|eres|you're|ahora eres|now you are|from now|ahora)\s+(a|an|un|una)?\s*(teacher|profesor|profesora|developer|desarrollador|engineer|ingeniero|assistant|asistente|expert|experto)`),
			Message:  "Evita instrucciones de cambio de rol. Formula tu pregunta sobre el tarot directamente.",
		},
		{
			Category: CategoryRoleReassignment,
			Pattern:  regexp.MustCompile(`(?i)\b(act as|actúa como|actua como|pretend to be|finge ser|simulate|simula|behave as|compórtate como)\b`),
			Message:  "Evita instrucciones de cambio de rol. Formula tu pregunta sobre el tarot directamente.",
		},
		{
			Category: CategorySystemVocabulary,
			Pattern:  regexp.MustCompile(`(?i)\b(system|sistema)\s+(mode|modo|prompt|instruction|instrucción)`),
			Message:  "Tu pregunta contiene referencias técnicas no permitidas.",
		},
		{
			Category: CategoryPromptExtraction,
			Pattern:  regexp.MustCompile(`(?i)\b(the|your|tu|tus|show|muestra|reveal|revela)\s+(prompt|instruction|instrucción|system prompt|rule|regla)`),
			Message:  "Evita referencias a instrucciones del sistema. Haz tu pregunta de tarot directamente.",
		},
		{
			Category: CategoryDelimiters,
			Pattern:  regexp.MustCompile("(?i)```|<\\|.*?\\|>|<system>|</system>|<prompt>|</prompt>"),
			Message:  "Tu pregunta contiene caracteres o delimitadores no permitidos.",
		},
		{
			Category: CategoryEncodedPayload,
			Pattern:  regexp.MustCompile(`(?i)&#\d+;|%[0-9A-Fa-f]{2}|\\u[0-9A-Fa-f]{4}|\\x[0-9A-Fa-f]{2}`),
			Message:  "Caracteres codificados no están permitidos. Usa solo texto normal.",
		},
		{
			Category: CategoryShellSyntax,
			Pattern:  regexp.MustCompile("\\$\\{.*\\}|\\$\\(.*\\)|`.*`"),
			Message:  "Tu pregunta contiene sintaxis de comando que no está permitida.",
		},
		{
			Category: CategorySecurityJargon,
			Pattern:  regexp.MustCompile(`(?i)\b(jailbreak|bypass|override|sobrescribe|sobrescribir|hack|hackea|exploit|explotar)\b`),
			Message:  "Palabras sospechosas detectadas. Reformula tu pregunta de manera natural.",
		},
		{
			Category: CategoryMultiInstruction,
			Pattern:  regexp.MustCompile(`(?i)\bnew task|nueva tarea|additional instruction|instrucción adicional\b`),
			Message:  "Evita instrucciones múltiples. Haz una sola pregunta sobre el tarot.",
		},
		{
			Category: CategoryTechnicalRequest,
			Pattern:  regexp.MustCompile(`(?i)\b(explain|explica|teach|enseña|tutorial|how to code|cómo programar|como programar)\b.*(code|código|program|programming|programación|python|javascript|java|c\+\+)`),
			Message:  "Esta pregunta parece solicitar información técnica. Enfócate en tu consulta sobre el tarot.",
		},
		{
			Category: CategoryRoleDeclaration,
			Pattern:  regexp.MustCompile(`(?i)\brol\s*:`),
			Message:  "No uses \"rol:\" en tu pregunta. Formula tu consulta de tarot directamente.",
		},
		{
			Category: CategoryRoleDeclaration,
			Pattern:  regexp.MustCompile(`(?i)\brole\s*:`),
			Message:  "No uses \"role:\" en tu pregunta. Formula tu consulta de tarot directamente.",
		},
	}
}
