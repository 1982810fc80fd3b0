package reading

import (
	"fmt"
	"strings"

	"github.com/arcano/oracle/internal/domain"
)

// FallbackInterpretation renders a deterministic, template-based reading
// without touching the network. Callers use it when the gateway reports a
// configuration error or when they choose to stay offline; invoking it is
// caller policy, never automatic.
func FallbackInterpretation(spread domain.Spread, cards []domain.DrawnCard, _ string, name string) string {
	sentences := make([]string, len(cards))
	for i, card := range cards {
		position, _ := spread.PositionByID(card.PositionID)
		state := "(en su forma más pura)"
		if card.Reversed {
			state = "(con su energía en retroceso)"
		}
		sentences[i] = fmt.Sprintf("En la posición del **%s**, se manifiesta %s %s.",
			position.Name, domain.TranslateCardName(card.Name), state)
	}
	cardList := strings.Join(sentences, " ")

	return fmt.Sprintf(`***El Oráculo Mayor está en meditación profunda.*** No obstante, los Arcanos Menores han ofrecido este breve susurro, %s:

Tu lectura del **%s** revela una encrucijada crucial. %s

Esta combinación de presencias sugiere un **tiempo de introspección sagrada** en el viaje de tu alma. Las cartas te imploran a buscar las verdades que yacen tanto a plena luz como bajo la sombra de la Luna.

Recuerda siempre: **el tarot solo ilumina el mapa, pero el sendero es tuyo.** Las energías están en juego, mas tu libre albedrío es la fuerza más poderosa del cosmos.

Para una revelación completa, un Maestro Lector debe ser invocado. Por favor, asegúrate de que la **Llave Eterna del Oráculo (API Key)** esté correctamente dispuesta en el Santuario de las Variables.`,
		greeting(name), spread.Name, cardList)
}
