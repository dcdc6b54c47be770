// Package i18n translates the messages the API returns to callers.
package i18n

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale answers callers that accept none of the supported locales.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

// Translator looks messages up by key and locale.
type Translator struct {
	messages map[string]map[string]string
}

var defaultTranslator = &Translator{messages: catalog}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	return defaultTranslator
}

// Translate returns the message for key in locale, then in DefaultLocale,
// then the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether locale has a catalog.
func Supported(locale string) bool {
	_, ok := catalog[locale]
	return ok
}

// Locales lists the supported locales in order.
func Locales() []string {
	out := make([]string, 0, len(catalog))
	for l := range catalog {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// GetLocale picks the supported locale the caller weighs highest in
// Accept-Language. Ties keep header order and a wildcard means DefaultLocale.
func GetLocale(c *gin.Context) string {
	return Negotiate(c.GetHeader(AcceptLanguageHeader))
}

// Negotiate resolves an Accept-Language value to a supported locale.
func Negotiate(header string) string {
	type choice struct {
		locale string
		q      float64
	}
	var choices []choice
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q <= 0 {
			continue
		}
		base, _, _ := strings.Cut(tag, "-")
		if base == "*" {
			base = DefaultLocale
		}
		if Supported(base) {
			choices = append(choices, choice{base, q})
		}
	}
	if len(choices) == 0 {
		return DefaultLocale
	}
	sort.SliceStable(choices, func(i, j int) bool { return choices[i].q > choices[j].q })
	return choices[0].locale
}

// catalog holds every message by locale, then key.
var catalog = map[string]map[string]string{
	"en": {
		"error.invalid_request":            "Invalid request",
		"error.invalid_request_body":       "Invalid request body",
		"error.internal_error":             "An unexpected error occurred",
		"error.unauthorized":               "Unauthorized",
		"error.api_key_required":           "API key is required",
		"error.invalid_api_key":            "Invalid API key",
		"error.not_found":                  "Not found",
		"error.rate_limit_exceeded":        "Too many requests, please try again later",
		"error.conflict":                   "Conflict",
		"error.timeout":                    "Request timeout",
		"error.store_unavailable":          "Storage is unavailable, please try again later",
		"error.validation.product":         "product: is required",
		"error.validation.client":          "client: is required",
		"error.validation.status":          "status: is required",
		"error.validation.status_kind":     "kind: must be prod or compta",
		"error.validation.record":          "The record is incomplete or its price is not an amount",
		"error.validation.version":         "version: must be a positive integer",
		"error.validation.filter":          "since and until must be RFC 3339 times with since not after until",
		"error.validation.rates":           "The rate document is missing required tables",
		"error.pricing.invalid_quantity":   "quantity: must be a positive integer",
		"error.pricing.unknown_product":    "Unknown product type",
		"error.pricing.missing_rate_table": "The active rates have no table for this product",
		"error.pricing.calculation":        "The quote could not be calculated",
		"error.stock.insufficient":         "Not enough sheets in stock for this withdrawal",
		"error.validation.delta":           "delta: must be a non-zero number of sheets",
	},
	"fr": {
		"error.invalid_request":            "Requête invalide",
		"error.invalid_request_body":       "Corps de requête invalide",
		"error.internal_error":             "Une erreur inattendue est survenue",
		"error.unauthorized":               "Non autorisé",
		"error.api_key_required":           "Clé API requise",
		"error.invalid_api_key":            "Clé API invalide",
		"error.not_found":                  "Introuvable",
		"error.rate_limit_exceeded":        "Trop de requêtes, veuillez réessayer plus tard",
		"error.conflict":                   "Conflit",
		"error.timeout":                    "Délai de la requête dépassé",
		"error.store_unavailable":          "Stockage indisponible, veuillez réessayer plus tard",
		"error.validation.product":         "product : obligatoire",
		"error.validation.client":          "client : obligatoire",
		"error.validation.status":          "status : obligatoire",
		"error.validation.status_kind":     "kind : doit valoir prod ou compta",
		"error.validation.record":          "Fiche incomplète ou prix illisible",
		"error.validation.version":         "version : doit être un entier positif",
		"error.validation.filter":          "since et until doivent être des dates RFC 3339, since avant until",
		"error.validation.rates":           "Il manque des tables obligatoires dans la grille tarifaire",
		"error.pricing.invalid_quantity":   "quantité : doit être un entier positif",
		"error.pricing.unknown_product":    "Type de produit inconnu",
		"error.pricing.missing_rate_table": "La grille tarifaire active n'a pas de table pour ce produit",
		"error.pricing.calculation":        "Le devis n'a pas pu être calculé",
		"error.stock.insufficient":         "Stock insuffisant pour cette sortie",
		"error.validation.delta":           "delta : doit être un nombre de feuilles non nul",
	},
	"pt": {
		"error.invalid_request":            "Requisição inválida",
		"error.invalid_request_body":       "Corpo da requisição inválido",
		"error.internal_error":             "Ocorreu um erro inesperado",
		"error.unauthorized":               "Não autorizado",
		"error.api_key_required":           "Chave de API é obrigatória",
		"error.invalid_api_key":            "Chave de API inválida",
		"error.not_found":                  "Não encontrado",
		"error.rate_limit_exceeded":        "Muitas requisições, tente novamente mais tarde",
		"error.conflict":                   "Conflito",
		"error.timeout":                    "Tempo limite da requisição excedido",
		"error.store_unavailable":          "Armazenamento indisponível, tente novamente mais tarde",
		"error.validation.product":         "product: é obrigatório",
		"error.validation.client":          "client: é obrigatório",
		"error.validation.status":          "status: é obrigatório",
		"error.validation.status_kind":     "kind: deve ser prod ou compta",
		"error.validation.record":          "Registro incompleto ou preço inválido",
		"error.validation.version":         "version: deve ser um inteiro positivo",
		"error.validation.filter":          "since e until devem ser datas RFC 3339, com since antes de until",
		"error.validation.rates":           "A tabela de preços não tem as tabelas obrigatórias",
		"error.pricing.invalid_quantity":   "quantidade: deve ser um inteiro positivo",
		"error.pricing.unknown_product":    "Tipo de produto desconhecido",
		"error.pricing.missing_rate_table": "A tabela de preços ativa não cobre este produto",
		"error.pricing.calculation":        "Não foi possível calcular o orçamento",
		"error.stock.insufficient":         "Estoque insuficiente para esta retirada",
		"error.validation.delta":           "delta: deve ser um número de folhas diferente de zero",
	},
}
