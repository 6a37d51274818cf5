package tabs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	cryptobackend "github.com/andrei-cloud/cryptolab/internal/backend/crypto"
)

// HashCalculator represents the Hash Calculator tab.
type HashCalculator struct {
	widget.BaseWidget
	container *fyne.Container
	audit     Auditor

	message   *widget.Entry
	algorithm *widget.RadioGroup
	digest    *widget.Entry
}

// NewHashCalculator creates a new Hash Calculator tab.
func NewHashCalculator(audit Auditor) *HashCalculator {
	hc := &HashCalculator{audit: auditorOrNop(audit)}
	hc.ExtendBaseWidget(hc)

	names := make([]string, len(cryptobackend.HashAlgorithms))
	for i, a := range cryptobackend.HashAlgorithms {
		names[i] = string(a)
	}

	hc.message = widget.NewMultiLineEntry()
	hc.message.SetPlaceHolder("Enter message text...")
	hc.message.Wrapping = fyne.TextWrapWord

	hc.algorithm = widget.NewRadioGroup(names, nil)
	hc.algorithm.Horizontal = true
	hc.algorithm.SetSelected(names[0])

	hc.digest = widget.NewEntry()
	hc.digest.Disable()

	form := widget.NewForm(
		&widget.FormItem{Text: "Message", Widget: hc.message},
		&widget.FormItem{Text: "Algorithm", Widget: hc.algorithm},
		&widget.FormItem{Text: "Digest", Widget: hc.digest},
	)
	form.SubmitText = "Hash"
	form.OnSubmit = hc.onCalculate

	hc.container = container.NewVBox(form)

	return hc
}

func (hc *HashCalculator) onCalculate() {
	alg := cryptobackend.HashAlgorithm(hc.algorithm.Selected)

	digest, err := cryptobackend.ProcessHash(&cryptobackend.HashParams{
		Algorithm: alg,
		Text:      hc.message.Text,
	})
	if err != nil {
		hc.digest.SetText(err.Error())
		hc.audit.Error("Hash", "Failure", err.Error())
		return
	}

	hc.digest.SetText(digest)
	hc.audit.Info("Hash", "Success", fmt.Sprintf("%s of %d bytes", alg, len(hc.message.Text)))
}

// CreateRenderer implements fyne.Widget interface.
func (hc *HashCalculator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(hc.container)
}

// Cleanup implements TabContent interface.
func (hc *HashCalculator) Cleanup() {
	hc.message.SetText("")
	hc.digest.SetText("")
	hc.algorithm.SetSelected(string(cryptobackend.MD5))
}
