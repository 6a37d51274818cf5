package tabs

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/cryptolab/pkg/logger"
)

const dateLayout = "2006-01-02"

// Column headers of the logs table.
var logColumns = []string{"Timestamp", "Level", "Event", "Status", "Details"}

// LogsAudit represents the Logs/Audit tab.
type LogsAudit struct {
	widget.BaseWidget
	container *fyne.Container
	source    EntrySource

	// Filter fields.
	startDate  *widget.Entry
	endDate    *widget.Entry
	searchTerm *widget.Entry
	status     *widget.Label

	// Log table.
	logsTable *widget.Table

	mu      sync.Mutex
	entries []logger.Entry
}

// NewLogsAudit creates a new Logs/Audit tab reading from source. A nil
// source leaves the table empty.
func NewLogsAudit(source EntrySource) *LogsAudit {
	la := &LogsAudit{source: source}
	la.ExtendBaseWidget(la)

	la.startDate = widget.NewEntry()
	la.startDate.SetPlaceHolder("Start date (YYYY-MM-DD)...")

	la.endDate = widget.NewEntry()
	la.endDate.SetPlaceHolder("End date (YYYY-MM-DD)...")

	la.searchTerm = widget.NewEntry()
	la.searchTerm.SetPlaceHolder("Search logs...")

	la.status = widget.NewLabel("")

	filterBtn := widget.NewButton("Apply Filters", la.onApplyFilters)

	filters := container.NewHBox(
		container.NewVBox(
			widget.NewLabel("Date Range"),
			la.startDate,
			la.endDate,
		),
		container.NewVBox(
			widget.NewLabel("Search"),
			la.searchTerm,
			filterBtn,
		),
	)

	la.initializeTable()

	la.container = container.NewBorder(
		container.NewVBox(filters, la.status, widget.NewSeparator()),
		nil, nil, nil,
		la.logsTable,
	)

	return la
}

func (la *LogsAudit) initializeTable() {
	la.logsTable = widget.NewTable(
		func() (int, int) {
			la.mu.Lock()
			defer la.mu.Unlock()
			return len(la.entries), len(logColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("Template")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(la.cell(id.Row, id.Col))
		},
	)
	la.logsTable.ShowHeaderRow = true
	la.logsTable.CreateHeader = func() fyne.CanvasObject { return widget.NewLabel("") }
	la.logsTable.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(logColumns) {
			obj.(*widget.Label).SetText(logColumns[id.Col])
		}
	}
	la.logsTable.SetColumnWidth(0, 170)
	la.logsTable.SetColumnWidth(4, 320)
}

func (la *LogsAudit) cell(row, col int) string {
	la.mu.Lock()
	defer la.mu.Unlock()

	if row < 0 || row >= len(la.entries) {
		return ""
	}
	e := la.entries[row]
	switch col {
	case 0:
		return e.Timestamp.Format(time.DateTime)
	case 1:
		return e.Level.String()
	case 2:
		return e.Event
	case 3:
		return e.Status
	case 4:
		return e.Details
	default:
		return ""
	}
}

func (la *LogsAudit) onApplyFilters() {
	if err := la.Reload(); err != nil {
		la.status.SetText(err.Error())
	}
}

// Reload re-reads entries from the source using the current filters.
func (la *LogsAudit) Reload() error {
	if la.source == nil {
		return nil
	}

	start, err := parseDate(la.startDate.Text, false)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := parseDate(la.endDate.Text, true)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}

	entries, err := la.source.GetEntries(start, end, la.searchTerm.Text)
	if err != nil {
		return err
	}

	la.mu.Lock()
	la.entries = entries
	la.mu.Unlock()

	la.status.SetText(fmt.Sprintf("%d entries", len(entries)))
	la.logsTable.Refresh()

	return nil
}

// parseDate reads a local calendar date. With endOfDay the last instant of
// that day is returned. Empty input yields the zero time.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return t, nil
}

// CreateRenderer implements fyne.Widget interface.
func (la *LogsAudit) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(la.container)
}

// Cleanup implements TabContent interface.
func (la *LogsAudit) Cleanup() {
	la.startDate.SetText("")
	la.endDate.SetText("")
	la.searchTerm.SetText("")
	la.status.SetText("")
}
