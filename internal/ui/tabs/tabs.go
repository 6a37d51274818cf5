package tabs

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/andrei-cloud/cryptolab/pkg/logger"
)

// TabContent defines the interface for tab content.
type TabContent interface {
	fyne.CanvasObject
	Cleanup()
}

// Auditor records calculator operations. Details must not carry keys or
// plaintext.
type Auditor interface {
	Info(event, status, details string)
	Error(event, status, details string)
}

// EntrySource reads back audit entries.
type EntrySource interface {
	GetEntries(start, end time.Time, filter string) ([]logger.Entry, error)
}

type nopAuditor struct{}

func (nopAuditor) Info(_, _, _ string)  {}
func (nopAuditor) Error(_, _, _ string) {}

func auditorOrNop(a Auditor) Auditor {
	if a == nil {
		return nopAuditor{}
	}

	return a
}
