package models

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholder is rendered in place of an optional field the country API omitted.
const Placeholder = "N/A"

// CountryName holds the names the country API reports for a country.
type CountryName struct {
	Common string `json:"common"`
}

// Currency is a single entry of the currencies map, keyed by ISO 4217 code.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CountryRecord is the first element of a REST Countries alpha lookup.
// Every field other than the name may be absent in the upstream payload.
type CountryRecord struct {
	Name       CountryName         `json:"name"`
	CCA2       string              `json:"cca2,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Timezones  []string            `json:"timezones,omitempty"`
	Population int64               `json:"population"`
	Region     string              `json:"region"`
	Area       float64             `json:"area"`
	Flag       string              `json:"flag"`
}

// CommonName returns the common name or the placeholder.
func (r CountryRecord) CommonName() string {
	return orPlaceholder(r.Name.Common)
}

// FirstCapital returns the first listed capital or the placeholder.
func (r CountryRecord) FirstCapital() string {
	if len(r.Capital) == 0 {
		return Placeholder
	}
	return orPlaceholder(r.Capital[0])
}

// LanguageNames joins language display names ordered by language code.
func (r CountryRecord) LanguageNames() string {
	if len(r.Languages) == 0 {
		return Placeholder
	}
	codes := sortedKeys(r.Languages)
	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, r.Languages[code])
	}
	return strings.Join(names, ", ")
}

// TimezoneList joins timezones in upstream order.
func (r CountryRecord) TimezoneList() string {
	if len(r.Timezones) == 0 {
		return Placeholder
	}
	return strings.Join(r.Timezones, ", ")
}

// RegionName returns the region or the placeholder.
func (r CountryRecord) RegionName() string {
	return orPlaceholder(r.Region)
}

// CurrencyEntries formats each currency as "CODE: Name (Symbol)", ordered by code.
// It returns nil when the record has no currencies.
func (r CountryRecord) CurrencyEntries() []string {
	if len(r.Currencies) == 0 {
		return nil
	}
	codes := sortedKeys(r.Currencies)
	entries := make([]string, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, formatCurrency(code, r.Currencies[code]))
	}
	return entries
}

// CurrencyList joins CurrencyEntries with sep, or returns the placeholder.
func (r CountryRecord) CurrencyList(sep string) string {
	entries := r.CurrencyEntries()
	if len(entries) == 0 {
		return Placeholder
	}
	return strings.Join(entries, sep)
}

func formatCurrency(code string, c Currency) string {
	switch {
	case c.Name != "" && c.Symbol != "":
		return fmt.Sprintf("%s: %s (%s)", code, c.Name, c.Symbol)
	case c.Name != "":
		return fmt.Sprintf("%s: %s", code, c.Name)
	case c.Symbol != "":
		return fmt.Sprintf("%s (%s)", code, c.Symbol)
	default:
		return code
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
