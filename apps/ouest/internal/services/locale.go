package services

import (
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"ouest.xdoubleu.com/apps/ouest/internal/models"
)

const (
	LangParam = "lang"

	MsgNoCurrentEvent = "No current event"
	MsgUnknownDate    = "???"
	MsgTitle          = "Where are we?"
	MsgFrom           = "From"
	MsgUntil          = "until"
)

//nolint:gochecknoglobals //message catalog
var supportedTags = []language.Tag{language.French, language.English}

//nolint:gochecknoglobals //message catalog
var catalog = map[language.Tag]map[string]string{
	language.French: {
		MsgNoCurrentEvent: "Aucun événement en cours",
		MsgTitle:          "On est où ?",
		MsgFrom:           "Du",
		MsgUntil:          "au",
		"month.1":         "jan",
		"month.2":         "fev",
		"month.3":         "mar",
		"month.4":         "avr",
		"month.5":         "mai",
		"month.6":         "juin",
		"month.7":         "juil",
		"month.8":         "août",
		"month.9":         "sep",
		"month.10":        "oct",
		"month.11":        "nov",
		"month.12":        "dec",
	},
	language.English: {
		"month.1":  "Jan",
		"month.2":  "Feb",
		"month.3":  "Mar",
		"month.4":  "Apr",
		"month.5":  "May",
		"month.6":  "Jun",
		"month.7":  "Jul",
		"month.8":  "Aug",
		"month.9":  "Sep",
		"month.10": "Oct",
		"month.11": "Nov",
		"month.12": "Dec",
	},
}

//nolint:gochecknoinits //catalog must be registered before any printer is built
func init() {
	for tag, messages := range catalog {
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				panic(err)
			}
		}
	}
}

// LocaleService picks the language of a request and formats text in it.
type LocaleService struct {
	fallback language.Tag
	matcher  language.Matcher
}

func NewLocaleService(fallback string) *LocaleService {
	service := &LocaleService{
		fallback: supportedTags[0],
		matcher:  language.NewMatcher(supportedTags),
	}
	service.fallback = service.match(fallback)
	return service
}

// Tag resolves the language from the lang query parameter, then the
// Accept-Language header, then the configured fallback.
func (service *LocaleService) Tag(r *http.Request) language.Tag {
	if lang := strings.TrimSpace(r.URL.Query().Get(LangParam)); lang != "" {
		return service.match(lang)
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil &&
			len(tags) > 0 {
			_, index, confidence := service.matcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[index]
			}
		}
	}

	return service.fallback
}

func (service *LocaleService) Printer(r *http.Request) *message.Printer {
	return message.NewPrinter(service.Tag(r))
}

func (service *LocaleService) match(value string) language.Tag {
	tag, err := language.Parse(value)
	if err != nil {
		return service.fallback
	}

	_, index, confidence := service.matcher.Match(tag)
	if confidence == language.No {
		return service.fallback
	}
	return supportedTags[index]
}

// FormatDate renders a date as "<day> <month>", or ??? when it is nil.
func FormatDate(printer *message.Printer, date *models.Date) string {
	if date == nil {
		return MsgUnknownDate
	}

	month := printer.Sprintf("month." + strconv.Itoa(int(date.Month)))
	return strconv.Itoa(date.Day) + " " + month
}
