package worksheet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-json-experiment/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/printlog/printlog-sheets/events"
)

type fakeSheets struct {
	sync.Mutex
	key      string
	appended [][]any
	bodies   []string
	ranges   []string
	options  []string
	fail     bool
}

func (f *fakeSheets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.Lock()
	defer f.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/v4/spreadsheets/"+f.key:
		fmt.Fprintf(w, `{"spreadsheetId":"%s","sheets":[
		   {"properties":{"sheetId":7,"title":"Log","index":1}},
		   {"properties":{"sheetId":3,"title":"Bob's Prints","index":0}}
		]}`, f.key)

	case r.Method == http.MethodGet:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`)

	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
		if f.fail {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":{"code":400,"message":"Invalid values","status":"INVALID_ARGUMENT"}}`)
			return
		}

		var body struct {
			Values [][]any `json:"values"`
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := json.Unmarshal(b, &body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.appended = append(f.appended, body.Values...)
		f.bodies = append(f.bodies, string(b))
		f.ranges = append(f.ranges, strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/v4/spreadsheets/"+f.key+"/values/"), ":append"))
		f.options = append(f.options, r.URL.Query().Get("valueInputOption")+" "+r.URL.Query().Get("insertDataOption"))

		fmt.Fprintf(w, `{"spreadsheetId":"%s","updates":{"updatedRows":1}}`, f.key)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func open(t *testing.T, fake *fakeSheets, key string, valueInput string) (*Worksheet, error) {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return Open(context.Background(), key, valueInput, option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
}

func TestOpenResolvesFirstWorksheet(t *testing.T) {
	fake := fakeSheets{key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}

	sheet, err := open(t, &fake, fake.key, "")
	require.NoError(t, err)

	assert.Equal(t, "Bob's Prints", sheet.Title())
	assert.Equal(t, RAW, sheet.valueInput)
}

func TestOpenWithUnknownSpreadsheet(t *testing.T) {
	fake := fakeSheets{key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}

	_, err := open(t, &fake, "nope", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestAppendRow(t *testing.T) {
	fake := fakeSheets{key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}

	sheet, err := open(t, &fake, fake.key, USER_ENTERED)
	require.NoError(t, err)

	rows := []events.Row{
		{"a.gcode", float64(120), 60.0, 210.0, float64(3500), float64(1700000000)},
		{"b.gcode", float64(60), 55.5, 200.0, float64(1200), float64(1700000600)},
	}

	for _, row := range rows {
		require.NoError(t, sheet.AppendRow(context.Background(), row))
	}

	assert.Equal(t, [][]any{
		{"a.gcode", float64(120), 60.0, 210.0, float64(3500), float64(1700000000)},
		{"b.gcode", float64(60), 55.5, 200.0, float64(1200), float64(1700000600)},
	}, fake.appended)

	assert.Equal(t, []string{"'Bob''s Prints'!A1", "'Bob''s Prints'!A1"}, fake.ranges)
	assert.Equal(t, []string{"USER_ENTERED INSERT_ROWS", "USER_ENTERED INSERT_ROWS"}, fake.options)
}

func TestAppendRowSendsNumberLiterals(t *testing.T) {
	fake := fakeSheets{key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}

	sheet, err := open(t, &fake, fake.key, "")
	require.NoError(t, err)

	row := events.Row{"big.gcode", events.Number("9007199254740993"), events.Number("60.0"), nil, events.Number("3500"), events.Number("1700000000")}

	require.NoError(t, sheet.AppendRow(context.Background(), row))
	require.Len(t, fake.bodies, 1)

	assert.Contains(t, fake.bodies[0], `["big.gcode",9007199254740993,60.0,null,3500,1700000000]`)
}

func TestAppendRowWithServerError(t *testing.T) {
	fake := fakeSheets{key: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"}

	sheet, err := open(t, &fake, fake.key, "")
	require.NoError(t, err)

	fake.fail = true

	err = sheet.AppendRow(context.Background(), events.Row{"a.gcode", 1, 2, 3, 4, 5})
	require.Error(t, err)
	assert.Empty(t, fake.appended)
}
