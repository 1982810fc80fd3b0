package domain

// The four layouts offered by the oracle. Position ids are stable and
// referenced by DrawnCard.PositionID.

var DailySpread = Spread{
	ID:          "daily",
	Name:        "Carta del Día",
	Description: "Una sola carta para guiar tu día con sabiduría y claridad.",
	Positions: []SpreadPosition{
		{ID: 0, Name: "Tu guía de hoy", Question: "¿Qué energía me acompaña hoy?"},
	},
}

var ThreeCardSpread = Spread{
	ID:          "three-card",
	Name:        "Pasado, Presente, Futuro",
	Description: "Una lectura clásica que revela el flujo del tiempo en tu situación.",
	Positions: []SpreadPosition{
		{ID: 0, Name: "Pasado", Question: "¿Qué influencias del pasado me afectan?"},
		{ID: 1, Name: "Presente", Question: "¿Cuál es mi situación actual?"},
		{ID: 2, Name: "Futuro", Question: "¿Qué me espera si continúo este camino?"},
	},
}

var FiveCardSpread = Spread{
	ID:          "five-card",
	Name:        "Decisión",
	Description: "Explora una decisión importante desde múltiples ángulos.",
	Positions: []SpreadPosition{
		{ID: 0, Name: "La Situación", Question: "¿Cuál es la situación que enfrento?"},
		{ID: 1, Name: "Opción A", Question: "¿Qué sucede si elijo el primer camino?"},
		{ID: 2, Name: "Opción B", Question: "¿Qué sucede si elijo el segundo camino?"},
		{ID: 3, Name: "Lo que necesitas saber", Question: "¿Qué información importante debo considerar?"},
		{ID: 4, Name: "Resultado Potencial", Question: "¿Cuál es el resultado más probable?"},
	},
}

var CelticCrossSpread = Spread{
	ID:          "celtic-cross",
	Name:        "Cruz Celta",
	Description: "La lectura más completa y profunda, revelando todos los aspectos de tu situación.",
	Positions: []SpreadPosition{
		{ID: 0, Name: "Situación Actual", Question: "¿Cuál es mi situación presente?"},
		{ID: 1, Name: "Desafío", Question: "¿Qué obstáculo o desafío cruza mi camino?"},
		{ID: 2, Name: "Pasado Distante", Question: "¿Qué fundamentos del pasado influyen aquí?"},
		{ID: 3, Name: "Pasado Reciente", Question: "¿Qué acaba de pasar?"},
		{ID: 4, Name: "Mejor Resultado Posible", Question: "¿Cuál es el mejor resultado que puedo lograr?"},
		{ID: 5, Name: "Futuro Próximo", Question: "¿Qué vendrá pronto?"},
		{ID: 6, Name: "Tu Enfoque", Question: "¿Cómo me veo a mí mismo en esta situación?"},
		{ID: 7, Name: "Influencias Externas", Question: "¿Qué fuerzas externas me afectan?"},
		{ID: 8, Name: "Esperanzas y Miedos", Question: "¿Qué espero y qué temo?"},
		{ID: 9, Name: "Resultado", Question: "¿Cuál es el resultado probable?"},
	},
}

// AllSpreads lists every available layout in menu order.
var AllSpreads = []Spread{DailySpread, ThreeCardSpread, FiveCardSpread, CelticCrossSpread}

// SpreadByID resolves a spread by its identifier.
func SpreadByID(id string) (Spread, bool) {
	for _, s := range AllSpreads {
		if s.ID == id {
			return s, true
		}
	}
	return Spread{}, false
}
