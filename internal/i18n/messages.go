// Package i18n holds the user-facing strings of the board in every supported
// language.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the catalog key.
const (
	keyTitle       = "Explore repositories on GitHub"
	keyPlaceholder = "Type the repository name"
	keySubmit      = "Search"
	keyValidation  = "enter the author/name of the repository"
	keyLookup      = "error looking up the repository"
	keySave        = "error saving the repository list"
	keyPending     = "%d lookup(s) in progress"
	keyEmpty       = "No repositories yet"
)

// Supported lists the languages with a complete translation, default first.
var Supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(Supported)

func init() {
	translations := map[language.Tag]map[string]string{
		language.English: {
			keyTitle:       keyTitle,
			keyPlaceholder: keyPlaceholder,
			keySubmit:      keySubmit,
			keyValidation:  keyValidation,
			keyLookup:      keyLookup,
			keySave:        keySave,
			keyPending:     keyPending,
			keyEmpty:       keyEmpty,
		},
		language.BrazilianPortuguese: {
			keyTitle:       "Explore repositórios no Github",
			keyPlaceholder: "Digite o nome do repositório",
			keySubmit:      "Pesquisar",
			keyValidation:  "Digite o autor/nome do repositório",
			keyLookup:      "Erro na busca do repositório",
			keySave:        "Erro ao salvar a lista de repositórios",
			keyPending:     "%d busca(s) em andamento",
			keyEmpty:       "Nenhum repositório ainda",
		},
	}

	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// Messages renders board strings for one language.
type Messages struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns messages for the best supported match of locale.
// Unknown or malformed locales fall back to English.
func New(locale string) Messages {
	tag := language.English

	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = Supported[idx]
			}
		}
	}

	return Messages{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag reports the selected language.
func (m Messages) Tag() language.Tag {
	return m.tag
}

func (m Messages) Title() string       { return m.printer.Sprintf(keyTitle) }
func (m Messages) Placeholder() string { return m.printer.Sprintf(keyPlaceholder) }
func (m Messages) Submit() string      { return m.printer.Sprintf(keySubmit) }
func (m Messages) Empty() string       { return m.printer.Sprintf(keyEmpty) }

// Validation is shown when the form is submitted empty.
func (m Messages) Validation() string { return m.printer.Sprintf(keyValidation) }

// LookupFailed is shown for every lookup failure.
func (m Messages) LookupFailed() string { return m.printer.Sprintf(keyLookup) }

// SaveFailed is shown when the list could not be written to the store.
func (m Messages) SaveFailed() string { return m.printer.Sprintf(keySave) }

// Pending describes the number of in-flight lookups.
func (m Messages) Pending(n int) string { return m.printer.Sprintf(keyPending, n) }
