package i18n

import (
	"log"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

const defaultLang = "en"

var (
	mu   sync.RWMutex
	lang = defaultLang
)

var translations = map[string]map[string]string{
	"Pomodoro": {
		"it": "Pomodoro",
		"es": "Pomodoro",
		"pt": "Pomodoro",
		"ru": "Помидор",
	},
	"Timer": {
		"it": "Timer",
		"es": "Temporizador",
		"pt": "Temporizador",
		"ru": "Таймер",
	},
	"Work": {
		"it": "Lavoro",
		"es": "Trabajo",
		"pt": "Trabalho",
		"ru": "Работа",
	},
	"Break": {
		"it": "Pausa",
		"es": "Descanso",
		"pt": "Pausa",
		"ru": "Перерыв",
	},
	"Start": {
		"it": "Avvia",
		"es": "Iniciar",
		"pt": "Iniciar",
		"ru": "Старт",
	},
	"Restart": {
		"it": "Riavvia",
		"es": "Reiniciar",
		"pt": "Reiniciar",
		"ru": "Заново",
	},
	"Reset": {
		"it": "Azzera",
		"es": "Restablecer",
		"pt": "Zerar",
		"ru": "Сброс",
	},
	"Show window": {
		"it": "Mostra finestra",
		"es": "Mostrar ventana",
		"pt": "Mostrar janela",
		"ru": "Показать окно",
	},
	"Quit": {
		"it": "Esci",
		"es": "Salir",
		"pt": "Sair",
		"ru": "Выход",
	},
	"Status": {
		"it": "Stato",
		"es": "Estado",
		"pt": "Estado",
		"ru": "Статус",
	},
}

// Detect picks the language from the user's locale, falling back to English.
func Detect() string {
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Printf("i18n: could not get user locale, defaulting to english: %v", err)
		SetLang(defaultLang)
		return defaultLang
	}
	for _, userLocale := range userLocales {
		if matched := Match(userLocale); matched != "" {
			log.Printf("i18n: detected user locale %s", userLocale)
			SetLang(matched)
			return matched
		}
	}
	SetLang(defaultLang)
	return defaultLang
}

// Match maps a locale such as "pt_BR" or "it-IT" to a supported language,
// or "" when none matches.
func Match(userLocale string) string {
	normalized := strings.ToLower(strings.TrimSpace(userLocale))
	for _, supported := range []string{"en", "it", "es", "pt", "ru"} {
		if strings.HasPrefix(normalized, supported) {
			return supported
		}
	}
	return ""
}

// SetLang forces the active language.
func SetLang(value string) {
	mu.Lock()
	defer mu.Unlock()
	lang = value
}

// GetLang returns the active language.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key into the active language. Unknown keys and English
// return the key unchanged.
func T(key string) string {
	if translated, ok := translations[key][GetLang()]; ok {
		return translated
	}
	return key
}
