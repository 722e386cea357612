package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/bhagyamlottery/agency-backend/internal/i18n"
	"github.com/bhagyamlottery/agency-backend/internal/logger"
	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/table"
	"github.com/bhagyamlottery/agency-backend/internal/web"
	"github.com/gin-gonic/gin"
)

const (
	langCookie       = "lang"
	langCookieMaxAge = 365 * 24 * 60 * 60
	homeTicketCount  = 3
)

// SocialLink is a social network profile shown on the contact page
type SocialLink struct {
	Name string
	URL  string
}

// ContactInfo is the agency's public contact details
type ContactInfo struct {
	Address  string
	Phones   []string
	WhatsApp string
	Social   []SocialLink
}

// AgencyContact is what the site shows in the footer and on the contact page
var AgencyContact = ContactInfo{
	Address:  "Thrissur Main Road, Govindapuram, Kerala",
	Phones:   []string{"+91 99423 98185", "+91 99476 98185"},
	WhatsApp: "https://wa.me/919942398185",
	Social: []SocialLink{
		{Name: "Facebook", URL: "https://www.facebook.com/"},
		{Name: "Instagram", URL: "https://www.instagram.com/"},
		{Name: "YouTube", URL: "https://www.youtube.com/"},
	},
}

type languageOption struct {
	Code    string
	Name    string
	Current bool
}

type ticketCard struct {
	T      func(string) string
	Ticket *models.Ticket
}

type ticketGroup struct {
	Title   string
	Tickets []ticketCard
}

// SiteHandler renders the public website
type SiteHandler struct {
	resultService services.ResultService
	ticketService services.TicketService
	templates     *template.Template
	defaultLang   i18n.Language
	now           func() time.Time
}

// NewSiteHandler creates a new SiteHandler. Unknown default languages fall back to English.
func NewSiteHandler(resultService services.ResultService, ticketService services.TicketService, templates *template.Template, defaultLang string) *SiteHandler {
	lang, ok := i18n.Parse(defaultLang)
	if !ok {
		lang = i18n.English
	}
	return &SiteHandler{
		resultService: resultService,
		ticketService: ticketService,
		templates:     templates,
		defaultLang:   lang,
		now:           time.Now,
	}
}

// translator picks the language from ?lang (remembered in a cookie), then the cookie, then the default
func (h *SiteHandler) translator(c *gin.Context) i18n.Translator {
	if lang, ok := i18n.Parse(c.Query("lang")); ok {
		c.SetCookie(langCookie, string(lang), langCookieMaxAge, "/", "", false, false)
		return i18n.New(lang)
	}
	if cookie, err := c.Cookie(langCookie); err == nil {
		if lang, ok := i18n.Parse(cookie); ok {
			return i18n.New(lang)
		}
	}
	return i18n.New(h.defaultLang)
}

// renderPage executes the content template into a buffer, then wraps it in the layout
func (h *SiteHandler) renderPage(c *gin.Context, status int, tr i18n.Translator, active, titleKey, contentTmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	languages := make([]languageOption, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		languages = append(languages, languageOption{Code: string(l), Name: l.Name(), Current: l == tr.Language()})
	}

	data["T"] = tr.T
	data["Lang"] = string(tr.Language())
	data["Title"] = tr.T(titleKey)
	data["Active"] = active
	data["Path"] = c.Request.URL.Path
	data["Languages"] = languages
	data["Contact"] = AgencyContact
	data["Year"] = h.now().Year()

	buf := new(bytes.Buffer)
	if err := h.templates.ExecuteTemplate(buf, contentTmpl, data); err != nil {
		logger.GetLogger("app").WithError(err).WithField("template", contentTmpl).Error("failed to render page content")
		c.String(http.StatusInternalServerError, "Template rendering error")
		return
	}
	data["PageContent"] = template.HTML(buf.String())

	page := new(bytes.Buffer)
	if err := h.templates.ExecuteTemplate(page, web.LayoutTemplate, data); err != nil {
		logger.GetLogger("app").WithError(err).Error("failed to render layout")
		c.String(http.StatusInternalServerError, "Template rendering error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", page.Bytes())
}

func (h *SiteHandler) serverError(c *gin.Context, err error) {
	logger.GetLogger("app").WithError(err).WithField("path", c.Request.URL.Path).Error("failed to load page data")
	c.String(http.StatusInternalServerError, msgServerError)
}

func cards(tr i18n.Translator, tickets []*models.Ticket) []ticketCard {
	out := make([]ticketCard, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketCard{T: tr.T, Ticket: t})
	}
	return out
}

// Home handles GET /
func (h *SiteHandler) Home(c *gin.Context) {
	tr := h.translator(c)
	tickets, err := h.ticketService.ListTickets(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	if len(tickets) > homeTicketCount {
		tickets = tickets[:homeTicketCount]
	}
	h.renderPage(c, http.StatusOK, tr, "home", "nav.home", "home.html", gin.H{
		"Tickets": cards(tr, tickets),
	})
}

// About handles GET /about
func (h *SiteHandler) About(c *gin.Context) {
	h.renderPage(c, http.StatusOK, h.translator(c), "about", "about.title", "about.html", nil)
}

// Contact handles GET /contact
func (h *SiteHandler) Contact(c *gin.Context) {
	h.renderPage(c, http.StatusOK, h.translator(c), "contact", "contact.title", "contact.html", nil)
}

// Results handles GET /results?search=&entries=&page=
func (h *SiteHandler) Results(c *gin.Context) {
	tr := h.translator(c)
	results, err := h.resultService.ListResults(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	entries := make([]table.Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, table.Entry{
			ID:       r.ID.Hex(),
			Name:     r.Name,
			Code:     r.Code,
			DrawDate: r.Date,
			Link:     r.Link,
		})
	}

	view := table.NewView(entries)
	view.SetSearch(c.Query("search"))
	view.SetPageSize(table.ParsePageSize(c.Query("entries")))
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		view.SetPage(page)
	}
	page := view.Page()

	h.renderPage(c, http.StatusOK, tr, "results", "results.title", "results.html", gin.H{
		"Page":      page,
		"PageSizes": table.PageSizes,
		"PrevPage":  page.CurrentPage - 1,
		"NextPage":  page.CurrentPage + 1,
	})
}

// Tickets handles GET /tickets, grouping tickets as bumper, weekly and daily
func (h *SiteHandler) Tickets(c *gin.Context) {
	tr := h.translator(c)
	tickets, err := h.ticketService.ListTickets(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	byType := make(map[models.TicketType][]*models.Ticket)
	for _, t := range tickets {
		byType[t.Type] = append(byType[t.Type], t)
	}

	var groups []ticketGroup
	for _, g := range []struct {
		ticketType models.TicketType
		titleKey   string
	}{
		{models.TicketTypeBumper, "tickets.bumper"},
		{models.TicketTypeWeekly, "tickets.weekly"},
		{models.TicketTypeDaily, "tickets.daily"},
	} {
		if len(byType[g.ticketType]) == 0 {
			continue
		}
		groups = append(groups, ticketGroup{Title: tr.T(g.titleKey), Tickets: cards(tr, byType[g.ticketType])})
	}

	h.renderPage(c, http.StatusOK, tr, "tickets", "tickets.title", "tickets.html", gin.H{
		"Groups": groups,
	})
}

// NotFound renders the 404 page
func (h *SiteHandler) NotFound(c *gin.Context) {
	h.renderPage(c, http.StatusNotFound, h.translator(c), "", "notFound.title", "notfound.html", nil)
}
