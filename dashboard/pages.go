package dashboard

import (
	"embed"
	"html/template"
	"net/http"

	finance "github.com/MarcovChain/FlaskFinance"
	"github.com/MarcovChain/FlaskFinance/renderer"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/*.html"))

// tab is one page of the dashboard.
type tab struct {
	Name   string
	Label  string
	render func(s *Server, r *http.Request, theme renderer.Theme) panel
}

// panel is the content of a tab. A failing tab still renders, with its error.
type panel struct {
	Content template.HTML
	Figures []chart
	Tickers []string // stock chart selector
	Warning template.HTML
	Error   template.HTML
}

type chart struct {
	ID     string
	Figure Figure
}

var tabs = []tab{
	{"mortgage-charts", "Mortgage charts", (*Server).mortgageCharts},
	{"mortgage-table", "Mortgage table", (*Server).mortgageTable},
	{"stock-table", "Stock table", (*Server).stockTable},
	{"stock-charts", "Stock charts", (*Server).stockCharts},
	{"csa", "CSA", (*Server).lotsTable},
	{"salary", "Salary", (*Server).salaryTable},
}

type pageData struct {
	Tabs   []tab
	Active tab
	Theme  renderer.Theme
	Panel  panel
}

func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	for _, t := range tabs {
		if t.Name != name {
			continue
		}
		theme := renderer.ThemeAt(s.cfg.Now(), s.cfg.Morning, s.cfg.Night)
		data := pageData{Tabs: tabs, Active: t, Theme: theme, Panel: t.render(s, r, theme)}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.ExecuteTemplate(w, "layout.html", data); err != nil {
			s.log.Error().Err(err).Str("tab", name).Msg("cannot render tab")
		}
		return
	}
	http.NotFound(w, r)
}

// markdown converts a markdown document to HTML, or to an error panel.
func (s *Server) markdown(doc string) template.HTML {
	html, err := renderer.HTML(doc)
	if err != nil {
		s.log.Error().Err(err).Msg("cannot convert markdown")
		return template.HTML(template.HTMLEscapeString(doc))
	}
	return html
}

// failed returns the panel of a tab that could not be computed.
func (s *Server) failed(tab string, err error) panel {
	s.log.Warn().Err(err).Str("tab", tab).Msg("tab failed")
	return panel{Error: s.markdown(renderer.ErrorMarkdown(err))}
}

// warn sets the warning of p when err is not nil.
func (s *Server) warn(p panel, err error) panel {
	if err != nil {
		p.Warning = s.markdown(renderer.ErrorMarkdown(err))
	}
	return p
}

func (s *Server) mortgageCharts(r *http.Request, theme renderer.Theme) panel {
	m, err := s.mortgage()
	if err != nil {
		return s.failed("mortgage-charts", err)
	}
	p := panel{
		Content: s.markdown(renderer.MortgageSummaryMarkdown(m)),
		Figures: []chart{
			{ID: "mortgage-balance", Figure: balanceFigure(m, theme)},
			{ID: "mortgage-totals", Figure: totalsFigure(m, theme)},
		},
	}
	return s.warn(p, m.Check())
}

func (s *Server) mortgageTable(r *http.Request, theme renderer.Theme) panel {
	m, err := s.mortgage()
	if err != nil {
		return s.failed("mortgage-table", err)
	}
	return s.warn(panel{Content: s.markdown(renderer.MortgageMarkdown(m))}, m.Check())
}

func (s *Server) stockTable(r *http.Request, theme renderer.Theme) panel {
	st, err := s.stocks(r.Context())
	if err != nil {
		return s.failed("stock-table", err)
	}
	doc := renderer.StocksMarkdown(st.Summaries) + "\n" + renderer.TradesMarkdown(st.Rows)
	return s.warn(panel{Content: s.markdown(doc)}, finance.CheckStocks(st.Summaries))
}

func (s *Server) stockCharts(r *http.Request, theme renderer.Theme) panel {
	rows, err := s.cfg.Loader.Trades()
	if err != nil {
		return s.failed("stock-charts", err)
	}
	p := panel{Tickers: finance.Tickers(rows)}
	st, err := s.stocks(r.Context())
	if err != nil {
		p.Error = s.failed("stock-charts", err).Error
		return p
	}
	p.Content = s.markdown(renderer.StocksMarkdown(st.Summaries))
	return s.warn(p, finance.CheckStocks(st.Summaries))
}

func (s *Server) lotsTable(r *http.Request, theme renderer.Theme) panel {
	l, err := s.lots(r.Context())
	if err != nil {
		return s.failed("csa", err)
	}
	return s.warn(panel{Content: s.markdown(renderer.LotsMarkdown(l))}, l.Check())
}

func (s *Server) salaryTable(r *http.Request, theme renderer.Theme) panel {
	sal, err := s.salary()
	if err != nil {
		return s.failed("salary", err)
	}
	return panel{Content: s.markdown(renderer.SalaryMarkdown(sal))}
}
