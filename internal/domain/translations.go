package domain

// cardNameTranslations maps English card names to their traditional
// Spanish display names.
var cardNameTranslations = map[string]string{
	// Major arcana
	"The Fool":           "El Loco",
	"The Magician":       "El Mago",
	"The High Priestess": "La Sacerdotisa",
	"The Empress":        "La Emperatriz",
	"The Emperor":        "El Emperador",
	"The Hierophant":     "El Hierofante",
	"The Lovers":         "Los Enamorados",
	"The Chariot":        "El Carro",
	"Strength":           "La Fuerza",
	"The Hermit":         "El Ermitaño",
	"Wheel of Fortune":   "La Rueda de la Fortuna",
	"Justice":            "La Justicia",
	"The Hanged Man":     "El Colgado",
	"Death":              "La Muerte",
	"Temperance":         "La Templanza",
	"The Devil":          "El Diablo",
	"The Tower":          "La Torre",
	"The Star":           "La Estrella",
	"The Moon":           "La Luna",
	"The Sun":            "El Sol",
	"Judgement":          "El Juicio",
	"The World":          "El Mundo",

	// Cups
	"Ace of Cups":    "As de Copas",
	"Two of Cups":    "Dos de Copas",
	"Three of Cups":  "Tres de Copas",
	"Four of Cups":   "Cuatro de Copas",
	"Five of Cups":   "Cinco de Copas",
	"Six of Cups":    "Seis de Copas",
	"Seven of Cups":  "Siete de Copas",
	"Eight of Cups":  "Ocho de Copas",
	"Nine of Cups":   "Nueve de Copas",
	"Ten of Cups":    "Diez de Copas",
	"Page of Cups":   "Sota de Copas",
	"Knight of Cups": "Caballero de Copas",
	"Queen of Cups":  "Reina de Copas",
	"King of Cups":   "Rey de Copas",

	// Pentacles
	"Ace of Pentacles":    "As de Oros",
	"Two of Pentacles":    "Dos de Oros",
	"Three of Pentacles":  "Tres de Oros",
	"Four of Pentacles":   "Cuatro de Oros",
	"Five of Pentacles":   "Cinco de Oros",
	"Six of Pentacles":    "Seis de Oros",
	"Seven of Pentacles":  "Siete de Oros",
	"Eight of Pentacles":  "Ocho de Oros",
	"Nine of Pentacles":   "Nueve de Oros",
	"Ten of Pentacles":    "Diez de Oros",
	"Page of Pentacles":   "Sota de Oros",
	"Knight of Pentacles": "Caballero de Oros",
	"Queen of Pentacles":  "Reina de Oros",
	"King of Pentacles":   "Rey de Oros",

	// Swords
	"Ace of Swords":    "As de Espadas",
	"Two of Swords":    "Dos de Espadas",
	"Three of Swords":  "Tres de Espadas",
	"Four of Swords":   "Cuatro de Espadas",
	"Five of Swords":   "Cinco de Espadas",
	"Six of Swords":    "Seis de Espadas",
	"Seven of Swords":  "Siete de Espadas",
	"Eight of Swords":  "Ocho de Espadas",
	"Nine of Swords":   "Nueve de Espadas",
	"Ten of Swords":    "Diez de Espadas",
	"Page of Swords":   "Sota de Espadas",
	"Knight of Swords": "Caballero de Espadas",
	"Queen of Swords":  "Reina de Espadas",
	"King of Swords":   "Rey de Espadas",

	// Wands
	"Ace of Wands":    "As de Bastos",
	"Two of Wands":    "Dos de Bastos",
	"Three of Wands":  "Tres de Bastos",
	"Four of Wands":   "Cuatro de Bastos",
	"Five of Wands":   "Cinco de Bastos",
	"Six of Wands":    "Seis de Bastos",
	"Seven of Wands":  "Siete de Bastos",
	"Eight of Wands":  "Ocho de Bastos",
	"Nine of Wands":   "Nueve de Bastos",
	"Ten of Wands":    "Diez de Bastos",
	"Page of Wands":   "Sota de Bastos",
	"Knight of Wands": "Caballero de Bastos",
	"Queen of Wands":  "Reina de Bastos",
	"King of Wands":   "Rey de Bastos",
}

// TranslateCardName returns the Spanish name for an English card name,
// falling back to the input when no translation exists.
func TranslateCardName(englishName string) string {
	if spanish, ok := cardNameTranslations[englishName]; ok {
		return spanish
	}
	return englishName
}

// CardDisplayName returns the Spanish display name, marking reversed cards.
func CardDisplayName(englishName string, reversed bool) string {
	name := TranslateCardName(englishName)
	if reversed {
		return name + " (Invertida)"
	}
	return name
}
