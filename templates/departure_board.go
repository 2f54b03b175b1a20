package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"departure-board-service/internal/domain/entity"
)

// DefaultRefreshSeconds is how often the page reloads itself
const DefaultRefreshSeconds = 300

// boardText is the fixed wording of the page per language
type boardText struct {
	Title       string
	Scheduled   string
	Changed     string
	Destination string
	Flight      string
	Codeshare   string
	Remark      string
	Updated     string
	NoFlights   string
}

var boardTexts = map[entity.Language]boardText{
	entity.LangJa: {
		Title:       "出発便案内",
		Scheduled:   "定刻",
		Changed:     "変更",
		Destination: "行先",
		Flight:      "便名",
		Codeshare:   "共同運航便",
		Remark:      "備考",
		Updated:     "最終更新",
		NoFlights:   "現在、出発予定のフライト情報はありません。",
	},
	entity.LangEn: {
		Title:       "Departures",
		Scheduled:   "Time",
		Changed:     "New Time",
		Destination: "Destination",
		Flight:      "Flight",
		Codeshare:   "Codeshare",
		Remark:      "Remarks",
		Updated:     "Last updated",
		NoFlights:   "No departures are currently scheduled.",
	},
	entity.LangZh: {
		Title:       "出发航班",
		Scheduled:   "计划",
		Changed:     "变更",
		Destination: "目的地",
		Flight:      "航班",
		Codeshare:   "代码共享",
		Remark:      "备注",
		Updated:     "最后更新",
		NoFlights:   "目前没有出发航班信息。",
	},
}

const boardHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<meta http-equiv="refresh" content="{{.Refresh}}">
<title>{{.Text.Title}} {{.Board.AirportCode}}</title>
<style>
body { font-family: sans-serif; background: #10131a; color: #f5f5f5; margin: 20px; }
h1 { font-size: 1.6em; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 8px; border-bottom: 1px solid #333; text-align: left; }
th { background: #1f2633; color: #ffd34d; }
.codeshare { color: #9aa4b2; font-size: 0.85em; }
.changed { color: #ffd34d; }
.remark-delayed { color: #ffb300; font-weight: bold; }
.remark-cancelled { color: #ff5252; font-weight: bold; }
.remark-active { color: #69f0ae; }
.error { border: 1px solid #ff5252; padding: 16px; }
.updated { color: #9aa4b2; font-size: 0.85em; margin-top: 12px; }
</style>
</head>
<body>
<h1>{{.Text.Title}} {{.Board.AirportCode}}</h1>
{{- if .Board.Error}}
<div class="error">
<h2>{{.Board.Error.Title}}</h2>
<pre>{{.Board.Error.Detail}}</pre>
</div>
{{- else}}
<table>
<thead>
<tr><th>{{.Text.Scheduled}}</th><th>{{.Text.Changed}}</th><th>{{.Text.Destination}}</th><th>{{.Text.Flight}}</th><th>{{.Text.Remark}}</th></tr>
</thead>
<tbody>
{{- range .Board.Rows}}
<tr>
<td>{{.ScheduledTime}}</td>
<td class="changed">{{.ChangedTime}}</td>
<td>{{destination .Destination}}</td>
<td>{{.FlightNumber}}{{if .CodeshareFlights}}<div class="codeshare">{{$.Text.Codeshare}}: {{.CodeshareFlights}}</div>{{end}}</td>
<td class="remark-{{.RemarkCategory}}">{{.Remark}}</td>
</tr>
{{- else}}
<tr><td colspan="5">{{.Text.NoFlights}}</td></tr>
{{- end}}
</tbody>
</table>
{{- end}}
<p class="updated">{{.Text.Updated}}: {{.Board.UpdatedAt}}</p>
</body>
</html>
`

// BoardRenderer renders a finished board as a standalone HTML page
type BoardRenderer struct {
	tmpl           *template.Template
	refreshSeconds int
}

// NewBoardRenderer parses the board template. A non-positive refresh uses
// DefaultRefreshSeconds.
func NewBoardRenderer(refreshSeconds int) (*BoardRenderer, error) {
	if refreshSeconds <= 0 {
		refreshSeconds = DefaultRefreshSeconds
	}

	// destination is rebound per render to the board's language
	tmpl, err := template.New("board").Funcs(template.FuncMap{
		"destination": func(n entity.DestinationNames) string { return n.Ja },
	}).Parse(boardHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board template: %w", err)
	}

	return &BoardRenderer{tmpl: tmpl, refreshSeconds: refreshSeconds}, nil
}

// Render writes board as HTML to w
func (r *BoardRenderer) Render(w io.Writer, board *entity.Board) error {
	lang := board.Language
	text, ok := boardTexts[lang]
	if !ok {
		lang = entity.LangJa
		text = boardTexts[lang]
	}

	tmpl, err := r.tmpl.Clone()
	if err != nil {
		return fmt.Errorf("failed to clone board template: %w", err)
	}
	tmpl.Funcs(template.FuncMap{
		"destination": func(n entity.DestinationNames) string { return n.Get(lang) },
	})

	return tmpl.Execute(w, struct {
		Lang    entity.Language
		Refresh int
		Text    boardText
		Board   *entity.Board
	}{lang, r.refreshSeconds, text, board})
}

// RenderBytes renders board into a byte slice
func (r *BoardRenderer) RenderBytes(board *entity.Board) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, board); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
