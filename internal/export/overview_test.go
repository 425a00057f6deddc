package export

import (
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuboard/internal/locale"
	"menuboard/internal/menu"
	"menuboard/internal/schedule"
)

// recordingWriter captures what Overview emits.
type recordingWriter struct {
	sheets []string
	header []string
	rows   [][]interface{}
}

func (r *recordingWriter) AddSheet(name string) error {
	r.sheets = append(r.sheets, name)
	return nil
}

func (r *recordingWriter) WriteHeader(columns []string) error {
	r.header = columns
	return nil
}

func (r *recordingWriter) WriteRow(row []interface{}) error {
	r.rows = append(r.rows, row)
	return nil
}

func (r *recordingWriter) Save(io.Writer) error    { return nil }
func (r *recordingWriter) SaveToFile(string) error { return nil }

func testDocument() *menu.Document {
	restHours := schedule.Weekly{}
	for _, d := range schedule.Weekdays() {
		restHours[d] = schedule.Day{Open: true, Slots: []schedule.Range{{
			From: schedule.MustClock("09:00"),
			To:   schedule.MustClock("22:00"),
		}}}
	}

	catID := uuid.New()
	return &menu.Document{
		Restaurant: menu.Restaurant{ID: uuid.New(), Name: "Trattoria Nonna", Hours: restHours},
		Categories: []menu.Category{
			{ID: catID, Name: "Dinner"},
		},
		Items: []menu.Item{
			{ID: uuid.New(), CategoryID: catID, Name: "Osso buco", Hours: schedule.Weekly{}.Normalize()},
			{ID: uuid.New(), CategoryID: catID, Name: "Tiramisu"},
		},
	}
}

func TestOverview(t *testing.T) {
	doc := testDocument()
	w := &recordingWriter{}
	at := schedule.Instant{Day: schedule.Monday, Time: schedule.MustClock("12:00")}

	require.NoError(t, Overview(w, doc, locale.English(), at))

	assert.Equal(t, []string{"Trattoria Nonna"}, w.sheets)
	assert.Equal(t, overviewColumns, w.header)
	require.Len(t, w.rows, 4, "restaurant + 1 category + 2 items")

	assert.Equal(t, []interface{}{"restaurant", "Trattoria Nonna", "Mon–Sun 09:00–22:00", "yes"}, w.rows[0])
	assert.Equal(t, []interface{}{"category", "Dinner", "Mon–Sun 09:00–22:00", "yes"}, w.rows[1])
	assert.Equal(t, []interface{}{"item", "Osso buco", "Mon–Sun Closed", "no"}, w.rows[2])
	assert.Equal(t, []interface{}{"item", "Tiramisu", "Mon–Sun 09:00–22:00", "yes"}, w.rows[3])
}

func TestOverviewNoScheduleAnywhere(t *testing.T) {
	catID := uuid.New()
	doc := &menu.Document{
		Restaurant: menu.Restaurant{ID: uuid.New(), Name: "Pop-up"},
		Categories: []menu.Category{{ID: catID, Name: "All day"}},
		Items:      []menu.Item{{ID: uuid.New(), CategoryID: catID, Name: "Toast"}},
	}

	w := &recordingWriter{}
	at := schedule.Instant{Day: schedule.Sunday, Time: schedule.MustClock("03:00")}
	require.NoError(t, Overview(w, doc, locale.English(), at))

	for _, row := range w.rows {
		assert.Equal(t, "—", row[2], "no schedule renders as a dash")
		assert.Equal(t, "yes", row[3], "no schedule means always available")
	}
}

func TestExcelizeWriterRoundTrip(t *testing.T) {
	w := NewExcelizeWriter()
	defer w.Close()

	require.NoError(t, w.AddSheet("Trattoria Nonna"))
	require.NoError(t, w.WriteHeader(overviewColumns))
	require.NoError(t, w.WriteRow([]interface{}{"item", "Tiramisu", "Mon–Sun 09:00–22:00", "yes"}))
}

func TestExcelizeWriterRequiresSheet(t *testing.T) {
	w := NewExcelizeWriter()
	defer w.Close()

	assert.Error(t, w.WriteHeader(overviewColumns))
	assert.Error(t, w.WriteRow([]interface{}{"x"}))
}
