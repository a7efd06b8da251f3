// Package render turns a country record into the popup and panel HTML shown by the map page.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"countrymap/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// EmptyPanelText is shown in the panel before any country has been selected.
const EmptyPanelText = "Select a country to view details."

var popupTemplate = template.Must(template.New("popup").Parse(`<div class="country-popup">
<p>Flag: {{.Flag}}</p>
<p>Country: {{.Name}}</p>
<p>Capital: {{.Capital}}</p>
<p>Language: {{.Languages}}</p>
<p>Timezones: {{.Timezones}}</p>
<p>Population: {{.Population}}</p>
<p>Region: {{.Region}}</p>
<p>Currencies: {{range $i, $c := .Currencies}}{{if $i}}<br>{{end}}{{$c}}{{end}}</p>
<p>Latitude: {{.Latitude}}, Longitude: {{.Longitude}}</p>
<p>Area: {{.Area}}</p>
</div>`))

var panelTemplate = template.Must(template.New("panel").Parse(`{{if .Selected}}<div class="CountryDetails">
<h2>Country Details</h2>
<p>Country: {{.Flag}} {{.Name}}</p>
<p>Capital: {{.Capital}}</p>
<p>Currencies: {{range $i, $c := .Currencies}}{{if $i}}, {{end}}{{$c}}{{end}}</p>
</div>{{else}}<div class="CountryDetails">{{.Prompt}}</div>{{end}}`))

// PopupView holds the display strings for the popup anchored at the clicked point.
type PopupView struct {
	Flag       string   `json:"flag"`
	Name       string   `json:"name"`
	Capital    string   `json:"capital"`
	Languages  string   `json:"languages"`
	Timezones  string   `json:"timezones"`
	Population string   `json:"population"`
	Region     string   `json:"region"`
	Currencies []string `json:"currencies"`
	Latitude   string   `json:"latitude"`
	Longitude  string   `json:"longitude"`
	Area       string   `json:"area"`
}

// PanelView holds the display strings for the details panel.
type PanelView struct {
	Selected   bool
	Prompt     string
	Flag       string
	Name       string
	Capital    string
	Currencies []string
}

// NewPopupView projects record and the clicked coordinate into display strings.
// Absent optional fields become models.Placeholder.
func NewPopupView(record models.CountryRecord, at models.Coordinate) PopupView {
	p := message.NewPrinter(language.English)

	return PopupView{
		Flag:       orPlaceholder(record.Flag),
		Name:       record.CommonName(),
		Capital:    record.FirstCapital(),
		Languages:  record.LanguageNames(),
		Timezones:  record.TimezoneList(),
		Population: p.Sprint(number.Decimal(record.Population)),
		Region:     record.RegionName(),
		Currencies: currencies(record),
		Latitude:   at.LatString(),
		Longitude:  at.LonString(),
		Area:       p.Sprint(number.Decimal(record.Area)) + " sq km",
	}
}

// NewPanelView projects the current selection. A nil record yields the empty prompt.
func NewPanelView(record *models.CountryRecord) PanelView {
	if record == nil {
		return PanelView{Prompt: EmptyPanelText}
	}
	return PanelView{
		Selected:   true,
		Flag:       record.Flag,
		Name:       record.CommonName(),
		Capital:    record.FirstCapital(),
		Currencies: currencies(*record),
	}
}

// Popup renders the popup HTML for record clicked at at.
func Popup(record models.CountryRecord, at models.Coordinate) (string, error) {
	return execute(popupTemplate, NewPopupView(record, at))
}

// Panel renders the details panel HTML. Pass nil when nothing is selected.
func Panel(record *models.CountryRecord) (string, error) {
	return execute(panelTemplate, NewPanelView(record))
}

func currencies(record models.CountryRecord) []string {
	entries := record.CurrencyEntries()
	if len(entries) == 0 {
		return []string{models.Placeholder}
	}
	return entries
}

func orPlaceholder(s string) string {
	if s == "" {
		return models.Placeholder
	}
	return s
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: failed to execute %s template: %w", t.Name(), err)
	}
	return buf.String(), nil
}
