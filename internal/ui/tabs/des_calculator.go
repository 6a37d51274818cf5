package tabs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	cryptobackend "github.com/andrei-cloud/cryptolab/internal/backend/crypto"
	"github.com/andrei-cloud/cryptolab/internal/backend/des"
	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

const kcvPrefix = "KCV: "

// Operations available for DES calculator.
var Operations = []string{"Encrypt", "Decrypt"}

// DESCalculator represents the DES Calculator tab.
type DESCalculator struct {
	widget.BaseWidget
	container *fyne.Container
	audit     Auditor
	workers   int

	// Input fields.
	dataInput *widget.Entry
	keyInput  *widget.Entry
	operation *widget.Select

	// Output fields.
	kcv    *widget.Label
	result *widget.Entry
}

// NewDESCalculator creates a new DES Calculator tab. Blocks are processed by
// up to workers goroutines.
func NewDESCalculator(audit Auditor, workers int) *DESCalculator {
	dc := &DESCalculator{audit: auditorOrNop(audit), workers: workers}
	dc.ExtendBaseWidget(dc)

	dc.dataInput = widget.NewMultiLineEntry()
	dc.dataInput.SetPlaceHolder("Enter plaintext, or " + des.BlockPrefix + "-prefixed blocks to decrypt...")
	dc.dataInput.Wrapping = fyne.TextWrapBreak

	dc.keyInput = widget.NewPasswordEntry()
	dc.keyInput.SetPlaceHolder("Enter key text (first 8 bytes are used)...")
	dc.keyInput.OnChanged = dc.updateKCV

	dc.operation = widget.NewSelect(Operations, nil)
	dc.operation.SetSelected(Operations[0])

	dc.kcv = widget.NewLabel(kcvPrefix)
	dc.result = widget.NewMultiLineEntry()
	dc.result.Wrapping = fyne.TextWrapBreak
	dc.result.Disable() // Read-only result field.

	form := widget.NewForm(
		&widget.FormItem{Text: "Text", Widget: dc.dataInput},
		&widget.FormItem{Text: "Key", Widget: dc.keyInput},
		&widget.FormItem{Text: "Operation", Widget: dc.operation},
		&widget.FormItem{Text: "Key Check Value", Widget: dc.kcv},
		&widget.FormItem{Text: "Result", Widget: dc.result},
	)
	form.SubmitText = "Calculate"
	form.OnSubmit = dc.onCalculate

	dc.container = container.NewVBox(form)

	return dc
}

func (dc *DESCalculator) updateKCV(key string) {
	if key == "" {
		dc.kcv.SetText(kcvPrefix)
		return
	}

	kcv, err := cryptobackend.CalculateKCV(key)
	if err != nil {
		dc.kcv.SetText(kcvPrefix + "Invalid")
		return
	}

	dc.kcv.SetText(kcvPrefix + kcv)
}

func (dc *DESCalculator) onCalculate() {
	encrypt := dc.operation.Selected != "Decrypt"
	event := "DES " + dc.operation.Selected

	if err := dc.validate(encrypt); err != nil {
		dc.result.SetText(err.Error())
		dc.audit.Error(event, "Failure", err.Error())
		return
	}

	out, err := cryptobackend.ProcessDES(&cryptobackend.DESParams{
		Text:    dc.dataInput.Text,
		Key:     dc.keyInput.Text,
		Encrypt: encrypt,
		Workers: dc.workers,
	})
	if err != nil {
		dc.result.SetText(err.Error())
		dc.audit.Error(event, "Failure", err.Error())
		return
	}

	dc.result.SetText(out)

	n := utf8.RuneCountInString(dc.dataInput.Text)
	if !encrypt {
		n = utf8.RuneCountInString(out)
	}
	dc.audit.Info(event, "Success", fmt.Sprintf("%d characters, KCV %s", n, dc.kcv.Text[len(kcvPrefix):]))
}

func (dc *DESCalculator) validate(encrypt bool) error {
	if err := utils.ValidateDESKey(dc.keyInput.Text); err != nil {
		return err
	}
	if encrypt {
		return utils.ValidateUTF8(dc.dataInput.Text)
	}

	return utils.ValidateCiphertext(strings.TrimSpace(dc.dataInput.Text))
}

// CreateRenderer implements fyne.Widget interface.
func (dc *DESCalculator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dc.container)
}

// Cleanup implements TabContent interface.
func (dc *DESCalculator) Cleanup() {
	// Clear sensitive data.
	dc.keyInput.SetText("")
	dc.dataInput.SetText("")
	dc.result.SetText("")
	dc.kcv.SetText(kcvPrefix)
	dc.operation.SetSelected(Operations[0])
}
