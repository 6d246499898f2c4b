package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/javiermmdev/rps/internal/types"
)

// ErrUnknownLang is returned when no catalog exists for a language tag.
var ErrUnknownLang = errors.New("unknown language")

// DefaultLang is used when no language is configured.
const DefaultLang = "en"

// Messages holds the user-facing text for one language. Fields ending in
// "Fmt" take the localized choice name as their only argument.
type Messages struct {
	Welcome       string
	OptionsHeader string
	CodeHeader    string
	ChoiceHeader  string
	Prompt        string
	InvalidOption string
	UserChoiceFmt string
	ComputerFmt   string
	Tie           string
	Win           string
	Loss          string
	ResultError   string
	NewRound      string
	Separator     string
	Farewell      string
	InputClosed   string
	Names         map[types.Choice]string
}

var catalogs = map[string]Messages{
	"en": {
		Welcome:       "Welcome to Rock, Paper, Scissors",
		OptionsHeader: "Available options:",
		CodeHeader:    "Code",
		ChoiceHeader:  "Option",
		Prompt:        "Type your option",
		InvalidOption: "Invalid option, please try again.",
		UserChoiceFmt: "You chose %s",
		ComputerFmt:   "The computer chose %s",
		Tie:           "It's a tie",
		Win:           "You win",
		Loss:          "The computer wins",
		ResultError:   "Error selecting the winner",
		NewRound:      "Starting a new game.",
		Separator:     "----------------------------",
		Farewell:      "Game over.",
		InputClosed:   "Input closed, leaving the game.",
		Names: map[types.Choice]string{
			types.Rock:     "Rock",
			types.Paper:    "Paper",
			types.Scissors: "Scissors",
			types.Exit:     "Exit",
		},
	},
	"es": {
		Welcome:       "Bienvenido al juego de Piedra, Papel o Tijera",
		OptionsHeader: "Opciones disponibles para el juego:",
		CodeHeader:    "Código",
		ChoiceHeader:  "Opción",
		Prompt:        "Escribe tu opción",
		InvalidOption: "Opción no válida, vuelve a intentarlo de nuevo.",
		UserChoiceFmt: "Tu opción ha sido %s",
		ComputerFmt:   "La opción de la máquina ha sido %s",
		Tie:           "Habéis empatado",
		Win:           "Has ganado",
		Loss:          "Gana la máquina",
		ResultError:   "Error en la selección de ganador",
		NewRound:      "Iniciamos una nueva partida.",
		Separator:     "----------------------------",
		Farewell:      "Fin del juego.",
		InputClosed:   "Entrada cerrada, saliendo del juego.",
		Names: map[types.Choice]string{
			types.Rock:     "Piedra",
			types.Paper:    "Papel",
			types.Scissors: "Tijera",
			types.Exit:     "Salir",
		},
	},
}

// Catalog returns the messages for lang. An empty tag selects DefaultLang.
func Catalog(lang string) (Messages, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = DefaultLang
	}
	m, ok := catalogs[lang]
	if !ok {
		return Messages{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownLang, lang, strings.Join(Languages(), ", "))
	}
	return m, nil
}

// Languages lists the available language tags, sorted.
func Languages() []string {
	out := make([]string, 0, len(catalogs))
	for k := range catalogs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Name returns the localized name of c, falling back to its String form.
func (m Messages) Name(c types.Choice) string {
	if n, ok := m.Names[c]; ok {
		return n
	}
	return c.String()
}

// Result returns the line shown for r.
func (m Messages) Result(r types.RoundResult) string {
	switch r {
	case types.Tie:
		return m.Tie
	case types.UserWins:
		return m.Win
	case types.ComputerWins:
		return m.Loss
	default:
		return m.ResultError
	}
}
