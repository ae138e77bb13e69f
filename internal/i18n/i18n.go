// Package i18n provides internationalization support for the booking service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (French; the customer
	// base is French-speaking).
	DefaultLocale = "fr"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "fr-FR,fr;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "fr" from "fr-FR")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"fr": {
			// Error messages
			"error.invalid_request":      "Requête invalide",
			"error.invalid_request_body": "Corps de requête invalide",
			"error.internal_error":       "Une erreur inattendue est survenue",
			"error.unauthorized":         "Non autorisé",
			"error.invalid_credentials":  "Identifiants invalides",
			"error.api_key_required":     "Clé d'API requise",
			"error.invalid_api_key":      "Clé d'API invalide",
			"error.forbidden":            "Interdit",
			"error.not_found":            "Introuvable",
			"error.rate_limit_exceeded":  "Trop de requêtes, veuillez réessayer plus tard",
			"error.conflict":             "Conflit",
			"error.validation.power":     "power : doit être une puissance moteur autorisée",
			"error.validation.forfait":   "forfait : nom ou contenu de forfait invalide",
			"error.invalid_token":        "Jeton invalide ou expiré",
			"error.token_required":       "Jeton d'authentification requis",
			"error.timeout":              "Délai de la requête dépassé",

			// Success messages
			"success.booking_submitted": "Demande de réservation envoyée avec succès",
		},
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.invalid_credentials":  "Invalid credentials",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.conflict":             "Conflict",
			"error.validation.power":     "power: must be a permitted engine power rating",
			"error.validation.forfait":   "forfait: invalid forfait name or payload",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "Request timeout",

			// Success messages
			"success.booking_submitted": "Booking request submitted successfully",
		},
	}
}
