package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bhagyamlottery/agency-backend/internal/models"
	"github.com/bhagyamlottery/agency-backend/internal/services"
	"github.com/bhagyamlottery/agency-backend/internal/utils"
)

// Report summarises one import run
type Report struct {
	TotalRows int      `json:"totalRows"`
	Imported  int      `json:"imported"`
	Errors    []string `json:"errors"`
}

func (r *Report) addError(row int, format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", row, fmt.Sprintf(format, args...)))
}

// CSVImporter loads results and tickets from spreadsheet exports.
// Rows go through the services so they get the same validation as the admin API.
type CSVImporter struct {
	resultService services.ResultService
	ticketService services.TicketService
}

// NewCSVImporter creates a new CSVImporter
func NewCSVImporter(resultService services.ResultService, ticketService services.TicketService) *CSVImporter {
	return &CSVImporter{
		resultService: resultService,
		ticketService: ticketService,
	}
}

var resultColumns = map[string][]string{
	"name":       {"Name", "Lottery", "Lottery Name"},
	"date":       {"Date", "Draw Date"},
	"code":       {"Code", "Draw No", "DrawNo", "Draw Code"},
	"firstPrize": {"First Prize", "FirstPrize", "Winning Number"},
	"prize":      {"Prize", "Prize Amount", "Amount"},
	"isJackpot":  {"Jackpot", "Is Jackpot", "IsJackpot"},
	"link":       {"Link", "PDF"},
}

var ticketColumns = map[string][]string{
	"name":       {"Name", "Lottery", "Ticket Name"},
	"code":       {"Code", "Initials"},
	"date":       {"Date", "Draw Date"},
	"type":       {"Type", "Category"},
	"price":      {"Price", "Ticket Price"},
	"firstPrize": {"First Prize", "FirstPrize"},
	"isFeatured": {"Featured", "Is Featured", "IsFeatured"},
}

// ImportResults reads a results CSV with a header row
func (i *CSVImporter) ImportResults(ctx context.Context, r io.Reader) (*Report, error) {
	return i.importRows(r, resultColumns, []string{"name", "date", "code", "firstPrize", "prize"},
		func(row int, get func(string) string, report *Report) {
			date, err := normalizeDate(get("date"))
			if err != nil {
				report.addError(row, "%v", err)
				return
			}
			result := &models.Result{
				Name:       get("name"),
				Date:       date,
				Code:       get("code"),
				FirstPrize: get("firstPrize"),
				Prize:      get("prize"),
				IsJackpot:  utils.ParseLooseBool(get("isJackpot")),
				Link:       get("link"),
			}
			if _, err := i.resultService.CreateResult(ctx, result); err != nil {
				report.addError(row, "%v", err)
				return
			}
			report.Imported++
		})
}

// ImportTickets reads a tickets CSV with a header row
func (i *CSVImporter) ImportTickets(ctx context.Context, r io.Reader) (*Report, error) {
	return i.importRows(r, ticketColumns, []string{"name", "code", "date", "price", "firstPrize"},
		func(row int, get func(string) string, report *Report) {
			date, err := normalizeDate(get("date"))
			if err != nil {
				report.addError(row, "%v", err)
				return
			}
			ticket := &models.Ticket{
				Name:       get("name"),
				Code:       get("code"),
				Date:       date,
				Type:       models.TicketType(strings.ToLower(get("type"))),
				Price:      get("price"),
				FirstPrize: get("firstPrize"),
				IsFeatured: utils.ParseLooseBool(get("isFeatured")),
			}
			if _, err := i.ticketService.CreateTicket(ctx, ticket); err != nil {
				report.addError(row, "%v", err)
				return
			}
			report.Imported++
		})
}

func (i *CSVImporter) importRows(
	r io.Reader,
	columns map[string][]string,
	required []string,
	handle func(row int, get func(string) string, report *Report),
) (*Report, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("CSV file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(columns))
	for field, names := range columns {
		index[field] = findColumnIndex(header, names)
	}
	for _, field := range required {
		if index[field] == -1 {
			return nil, fmt.Errorf("%s column not found in CSV", field)
		}
	}

	report := &Report{Errors: []string{}}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		report.TotalRows++
		// Header is line 1
		line := report.TotalRows + 1
		if err != nil {
			report.addError(line, "error reading row: %v", err)
			continue
		}

		get := func(field string) string {
			idx, ok := index[field]
			if !ok || idx < 0 || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		handle(line, get, report)
	}
	return report, nil
}

func normalizeDate(value string) (string, error) {
	if value == "" {
		return "", errors.New("date is empty")
	}
	date, err := utils.ParseDrawDate(value)
	if err != nil {
		return "", err
	}
	return utils.FormatDrawDate(date), nil
}

// findColumnIndex finds the column whose header matches one of possibleNames, ignoring case
func findColumnIndex(header []string, possibleNames []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, name := range possibleNames {
			if strings.ToLower(name) == h {
				return i
			}
		}
	}
	return -1
}
