// Package ui is the fyne desktop front end of cryptolab.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/cryptolab/internal/config"
	"github.com/andrei-cloud/cryptolab/internal/ui/tabs"
	"github.com/andrei-cloud/cryptolab/pkg/logger"
)

const (
	appID     = "com.github.andrei-cloud.cryptolab"
	appTitle  = "Classical Crypto Lab"
	appWidth  = 1024
	appHeight = 768
)

// Window holds the tab contents of the main window.
type Window struct {
	Tabs      *container.AppTabs
	Status    *widget.Label
	Logs      *tabs.LogsAudit
	contents  []tabs.TabContent
	logSource tabs.EntrySource
}

// NewWindowContent builds the tab container. Operations are audited to log;
// the Logs tab reads back from it when log has a file.
func NewWindowContent(cfg config.Config, log *logger.Logger) *Window {
	w := &Window{Status: widget.NewLabel("Ready")}

	var audit tabs.Auditor
	if log != nil {
		audit = log
		w.logSource = log
	}

	desTab := tabs.NewDESCalculator(audit, cfg.Workers)
	hashTab := tabs.NewHashCalculator(audit)
	bitwiseTab := tabs.NewBitwiseCalculator(audit)
	w.Logs = tabs.NewLogsAudit(w.logSource)
	w.contents = []tabs.TabContent{desTab, hashTab, bitwiseTab, w.Logs}

	logsItem := container.NewTabItemWithIcon("Logs/Audit", theme.HistoryIcon(), w.Logs)
	w.Tabs = container.NewAppTabs(
		container.NewTabItemWithIcon("DES Calculator", theme.ConfirmIcon(), desTab),
		container.NewTabItemWithIcon("Hash Calculator", theme.DocumentIcon(), hashTab),
		container.NewTabItem("Bitwise Calculator", bitwiseTab),
		logsItem,
	)
	w.Tabs.SetTabLocation(container.TabLocationTop)
	w.Tabs.OnSelected = func(item *container.TabItem) {
		if item != logsItem {
			return
		}
		if err := w.Logs.Reload(); err != nil {
			w.Status.SetText(err.Error())
		}
	}

	return w
}

// Cleanup clears every tab.
func (w *Window) Cleanup() {
	for _, c := range w.contents {
		c.Cleanup()
	}
}

// StartApp initializes and runs the main application window.
func StartApp(cfg config.Config, log *logger.Logger) {
	application := app.NewWithID(appID)
	mainWindow := application.NewWindow(appTitle)

	w := NewWindowContent(cfg, log)
	if log != nil {
		log.SetCallback(func(e logger.Entry) {
			fyne.Do(func() {
				w.Status.SetText(e.Event + ": " + e.Status)
			})
		})
	}

	mainWindow.SetContent(container.NewBorder(nil, w.Status, nil, nil, w.Tabs))
	mainWindow.Resize(fyne.NewSize(appWidth, appHeight))
	mainWindow.CenterOnScreen()

	mainWindow.SetOnClosed(func() {
		w.Cleanup()
		if log != nil {
			log.SetCallback(nil)
			log.Info("GUI", "Closed", "")
		}
	})

	mainWindow.SetMaster()
	mainWindow.Show()
	application.Run()
}
