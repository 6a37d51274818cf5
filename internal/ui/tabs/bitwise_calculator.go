package tabs

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/andrei-cloud/cryptolab/internal/backend/bitblock"
	cryptobackend "github.com/andrei-cloud/cryptolab/internal/backend/crypto"
	"github.com/andrei-cloud/cryptolab/pkg/utils"
)

// maxBlockDigits limits each operand to one 64-bit block.
const maxBlockDigits = 16

// BitwiseCalculator represents the Bitwise Calculator tab.
type BitwiseCalculator struct {
	widget.BaseWidget
	container *fyne.Container
	audit     Auditor

	operation *widget.RadioGroup
	blockA    *widget.Entry
	blockB    *widget.Entry
	result    *widget.Entry
	bits      *widget.Label
}

// NewBitwiseCalculator creates a new Bitwise Calculator tab.
func NewBitwiseCalculator(audit Auditor) *BitwiseCalculator {
	bc := &BitwiseCalculator{audit: auditorOrNop(audit)}
	bc.ExtendBaseWidget(bc)

	ops := make([]string, len(cryptobackend.BitwiseOperations))
	for i, op := range cryptobackend.BitwiseOperations {
		ops[i] = string(op)
	}

	bc.operation = widget.NewRadioGroup(ops, bc.onOperationChanged)
	bc.operation.Horizontal = true

	bc.blockA = widget.NewEntry()
	bc.blockA.SetPlaceHolder("Enter hex value (up to 16 digits)...")
	bc.blockA.OnChanged = func(s string) { sanitizeHex(s, bc.blockA, maxBlockDigits) }

	bc.blockB = widget.NewEntry()
	bc.blockB.SetPlaceHolder("Enter hex value (up to 16 digits)...")
	bc.blockB.OnChanged = func(s string) { sanitizeHex(s, bc.blockB, maxBlockDigits) }

	bc.result = widget.NewEntry()
	bc.result.Disable()

	bc.bits = widget.NewLabel("")
	bc.bits.TextStyle = fyne.TextStyle{Monospace: true}

	bc.operation.SetSelected(ops[0])

	bc.container = container.NewVBox(
		bc.operation,
		bc.blockA,
		bc.blockB,
		widget.NewButton("Calculate", bc.onCalculate),
		widget.NewSeparator(),
		bc.result,
		bc.bits,
	)

	return bc
}

func (bc *BitwiseCalculator) onOperationChanged(op string) {
	if op == string(cryptobackend.NOT) {
		bc.blockB.Disable()
		return
	}
	bc.blockB.Enable()
}

func (bc *BitwiseCalculator) onCalculate() {
	op := cryptobackend.BitwiseOperation(bc.operation.Selected)

	result, err := cryptobackend.PerformBitwise(&cryptobackend.BitwiseParams{
		Operation: op,
		BlockA:    bc.blockA.Text,
		BlockB:    bc.blockB.Text,
	})
	if err != nil {
		bc.result.SetText(err.Error())
		bc.bits.SetText("")
		bc.audit.Error("Bitwise "+string(op), "Failure", err.Error())
		return
	}

	bc.result.SetText(result)
	bc.bits.SetText(binaryView(result))
	bc.audit.Info("Bitwise "+string(op), "Success", "")
}

// binaryView renders a hex result of at most one block as grouped bits.
func binaryView(hexResult string) string {
	data, err := utils.DecodeHex(hexResult)
	if err != nil || len(data) == 0 || len(data) > 8 {
		return ""
	}

	bits := bitblock.Format(bitblock.FromBytes(data)>>(64-8*len(data)), 8*len(data))
	groups := make([]string, 0, len(data))
	for i := 0; i < len(bits); i += 8 {
		groups = append(groups, bits[i:i+8])
	}

	return strings.Join(groups, " ")
}

// sanitizeHex keeps only hex digits, enforces maxLength and uppercases input.
func sanitizeHex(original string, entry *widget.Entry, maxLength int) {
	var sb strings.Builder
	sb.Grow(len(original))
	for _, r := range original {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			sb.WriteRune(r)
		}
	}

	hexInput := sb.String()
	if len(hexInput) > maxLength {
		hexInput = hexInput[:maxLength]
	}
	hexInput = strings.ToUpper(hexInput)

	if entry.Text != hexInput {
		entry.SetText(hexInput)
	}
}

// CreateRenderer implements fyne.Widget interface.
func (bc *BitwiseCalculator) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(bc.container)
}

// Cleanup implements TabContent interface.
func (bc *BitwiseCalculator) Cleanup() {
	bc.blockA.SetText("")
	bc.blockB.SetText("")
	bc.result.SetText("")
	bc.bits.SetText("")
	bc.operation.SetSelected(string(cryptobackend.XOR))
}
