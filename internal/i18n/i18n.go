// Package i18n holds the public site's translated strings.
package i18n

import "strings"

// Language is a supported site language code
type Language string

const (
	English   Language = "en"
	Malayalam Language = "ml"
)

// Supported lists the site languages in menu order
var Supported = []Language{English, Malayalam}

// Name is the language's own name, used in the language switcher
func (l Language) Name() string {
	switch l {
	case Malayalam:
		return "മലയാളം"
	default:
		return "English"
	}
}

// Parse recognises a language code, ignoring case and region (ml-IN -> ml)
func Parse(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range Supported {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}

// Translator looks up strings for one language
type Translator struct {
	lang Language
}

// New returns a translator; unknown languages translate as English
func New(lang Language) Translator {
	if _, ok := catalog[lang]; !ok {
		lang = English
	}
	return Translator{lang: lang}
}

// Language returns the translator's language
func (t Translator) Language() Language {
	return t.lang
}

// T returns the string for key, falling back to English and then to the key itself
func (t Translator) T(key string) string {
	if s, ok := catalog[t.lang][key]; ok {
		return s
	}
	if s, ok := catalog[English][key]; ok {
		return s
	}
	return key
}

var catalog = map[Language]map[string]string{
	English: {
		"site.name":          "Bhagyam Lottery Agency",
		"nav.home":           "Home",
		"nav.about":          "About Us",
		"nav.results":        "Results",
		"nav.tickets":        "Tickets",
		"nav.contact":        "Contact",
		"hero.badge":         "Kerala State Lotteries",
		"hero.title":         "Your Trusted Partner for Kerala Lottery Tickets",
		"hero.subtitle":      "Genuine tickets, latest results and friendly service.",
		"hero.cta1":          "View Results",
		"hero.cta2":          "Buy Tickets",
		"trust.govt":         "Government Authorized",
		"trust.genuine":      "100% Genuine Tickets",
		"trust.trusted":      "Trusted by Thousands",
		"about.title":        "About Us",
		"about.subtitle":     "A lottery agency built on trust",
		"about.content1":     "Bhagyam Lottery Agency is an authorized seller of Kerala State Lottery tickets.",
		"about.content2":     "We help our customers find the right ticket and check results quickly.",
		"about.highlights":   "Why choose us",
		"about.highlight1":   "Authorized Kerala lottery agency",
		"about.highlight2":   "Daily, weekly and bumper tickets",
		"about.highlight3":   "Latest results every day",
		"about.highlight4":   "Prize claim assistance",
		"about.highlight5":   "Friendly customer service",
		"about.mission":      "Our Mission",
		"about.missionText":  "To bring genuine lottery tickets and reliable results to everyone.",
		"about.promise":      "Our Promise",
		"about.promiseText":  "Honest service and genuine tickets, every time.",
		"results.title":      "Lottery Results",
		"results.subtitle":   "Check the latest Kerala lottery results",
		"results.viewAll":    "View All Results",
		"results.show":       "Show",
		"results.entries":    "entries",
		"results.search":     "Search:",
		"results.slNo":       "Sl.No",
		"results.drawNo":     "Lottery/DrawNo",
		"results.drawDate":   "Draw Date",
		"results.view":       "View",
		"results.download":   "Download",
		"results.none":       "No results found.",
		"results.previous":   "Previous",
		"results.next":       "Next",
		"tickets.title":      "Upcoming Tickets",
		"tickets.subtitle":   "Book your tickets for the coming draws",
		"tickets.bumper":     "Bumper Tickets",
		"tickets.weekly":     "Weekly Tickets",
		"tickets.daily":      "Daily Tickets",
		"tickets.drawDate":   "Draw Date",
		"tickets.price":      "Price",
		"tickets.firstPrize": "First Prize",
		"tickets.callNow":    "Call Now",
		"tickets.whatsapp":   "WhatsApp",
		"tickets.none":       "No upcoming tickets.",
		"contact.title":      "Contact Us",
		"contact.subtitle":   "We are happy to help",
		"contact.address":    "Address",
		"contact.phone":      "Phone",
		"contact.whatsapp":   "WhatsApp",
		"contact.followUs":   "Follow Us",
		"footer.authorized":  "Authorized Kerala Lottery Agency",
		"footer.copyright":   "All rights reserved.",
		"footer.disclaimer":  "Lottery is subject to market risks. Play responsibly. Only for persons aged 18 and above.",
		"notFound.title":     "Page not found",
		"notFound.back":      "Back to Home",
	},
	Malayalam: {
		"site.name":          "ഭാഗ്യം ലോട്ടറി ഏജൻസി",
		"nav.home":           "ഹോം",
		"nav.about":          "ഞങ്ങളെക്കുറിച്ച്",
		"nav.results":        "ഫലങ്ങൾ",
		"nav.tickets":        "ടിക്കറ്റുകൾ",
		"nav.contact":        "ബന്ധപ്പെടുക",
		"hero.badge":         "കേരള ഭാഗ്യക്കുറി",
		"hero.title":         "കേരള ലോട്ടറി ടിക്കറ്റുകൾക്ക് നിങ്ങളുടെ വിശ്വസ്ത പങ്കാളി",
		"hero.subtitle":      "യഥാർത്ഥ ടിക്കറ്റുകൾ, പുതിയ ഫലങ്ങൾ, സൗഹൃദ സേവനം.",
		"hero.cta1":          "ഫലങ്ങൾ കാണുക",
		"hero.cta2":          "ടിക്കറ്റ് വാങ്ങുക",
		"trust.govt":         "സർക്കാർ അംഗീകൃതം",
		"trust.genuine":      "100% യഥാർത്ഥ ടിക്കറ്റുകൾ",
		"trust.trusted":      "ആയിരങ്ങളുടെ വിശ്വാസം",
		"about.title":        "ഞങ്ങളെക്കുറിച്ച്",
		"about.mission":      "ഞങ്ങളുടെ ലക്ഷ്യം",
		"about.promise":      "ഞങ്ങളുടെ വാഗ്ദാനം",
		"results.title":      "ലോട്ടറി ഫലങ്ങൾ",
		"results.subtitle":   "ഏറ്റവും പുതിയ കേരള ലോട്ടറി ഫലങ്ങൾ",
		"results.viewAll":    "എല്ലാ ഫലങ്ങളും",
		"results.drawDate":   "നറുക്കെടുപ്പ് തീയതി",
		"results.download":   "ഡൗൺലോഡ്",
		"results.none":       "ഫലങ്ങളൊന്നും കണ്ടെത്തിയില്ല.",
		"tickets.title":      "വരാനിരിക്കുന്ന ടിക്കറ്റുകൾ",
		"tickets.bumper":     "ബമ്പർ ടിക്കറ്റുകൾ",
		"tickets.weekly":     "പ്രതിവാര ടിക്കറ്റുകൾ",
		"tickets.daily":      "ദൈനംദിന ടിക്കറ്റുകൾ",
		"tickets.drawDate":   "നറുക്കെടുപ്പ് തീയതി",
		"tickets.price":      "വില",
		"tickets.firstPrize": "ഒന്നാം സമ്മാനം",
		"tickets.callNow":    "ഇപ്പോൾ വിളിക്കൂ",
		"contact.title":      "ബന്ധപ്പെടുക",
		"contact.address":    "വിലാസം",
		"contact.phone":      "ഫോൺ",
		"notFound.title":     "പേജ് കണ്ടെത്തിയില്ല",
		"notFound.back":      "ഹോമിലേക്ക് മടങ്ങുക",
	},
}
