package worksheet

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/printlog/printlog-sheets/events"
)

const (
	RAW          = "RAW"
	USER_ENTERED = "USER_ENTERED"
)

// Worksheet is the first worksheet of a spreadsheet, resolved once by Open.
type Worksheet struct {
	service     *sheets.Service
	spreadsheet string
	title       string
	valueInput  string
}

// Open resolves the first worksheet of the spreadsheet identified by key. The
// client options supply the credentials e.g. option.WithHTTPClient(client).
func Open(ctx context.Context, key string, valueInput string, opts ...option.ClientOption) (*Worksheet, error) {
	google, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	spreadsheet, err := google.Spreadsheets.Get(key).Fields("spreadsheetId,sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet %s (%w)", key, err)
	}

	var first *sheets.SheetProperties
	for _, sheet := range spreadsheet.Sheets {
		if p := sheet.Properties; p != nil && (first == nil || p.Index < first.Index) {
			first = p
		}
	}

	if first == nil {
		return nil, fmt.Errorf("spreadsheet %s has no worksheets", key)
	}

	if valueInput == "" {
		valueInput = RAW
	}

	return &Worksheet{
		service:     google,
		spreadsheet: spreadsheet.SpreadsheetId,
		title:       first.Title,
		valueInput:  valueInput,
	}, nil
}

func (w *Worksheet) Title() string {
	return w.title
}

// AppendRow adds the row after the last row of the worksheet's data table. Each
// call is a single 'values.append' request.
func (w *Worksheet) AppendRow(ctx context.Context, row events.Row) error {
	values := sheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]interface{}{row},
	}

	_, err := w.service.Spreadsheets.Values.Append(w.spreadsheet, w.area(), &values).
		ValueInputOption(w.valueInput).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()

	if err != nil {
		return fmt.Errorf("error appending row to worksheet '%s' (%w)", w.title, err)
	}

	return nil
}

func (w *Worksheet) area() string {
	return fmt.Sprintf("'%s'!A1", strings.ReplaceAll(w.title, "'", "''"))
}
