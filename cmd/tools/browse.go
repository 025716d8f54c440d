package tools

import (
	"fmt"
	"strings"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var BrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the decode table interactively",
	Long: `Opens a terminal UI listing the instructions of the decode table. Selecting an instruction shows its
documentation. Instruction words typed in the decode field are decoded and their instruction selected.

Keys: Tab switches between the list and the decode field, q or Esc quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := config.Setup(viper.GetViper())
		if err != nil {
			return err
		}
		defer closer.Close()

		table, _, err := cfg.BuildTable(logger)
		if err != nil {
			return err
		}

		return newBrowser(table).run()
	},
}

var browserColumns = []string{"Mnemonic", "Identifier", "Width", "Pattern", "Format", "Hook"}

type browser struct {
	table *decoder.Table
}

func newBrowser(table *decoder.Table) *browser {
	return &browser{table: table}
}

// Returns the cells of the instruction list, one row per instruction in ID order
func (b *browser) rows() [][]string {
	return utils.Map(b.table.Instructions, func(instruction *decoder.Instruction) []string {
		mnemonic := instruction.Mnemonic()
		if instruction.IsAlias() {
			mnemonic += " *"
		}

		return []string{
			mnemonic,
			instruction.Identifier,
			fmt.Sprint(b.table.Classes[instruction.Class].Width),
			instruction.Pattern().String(),
			instruction.Definition.Format.String(),
			instruction.Hook,
		}
	})
}

// Returns the documentation of an instruction followed by its decode table details
func (b *browser) describe(id decoder.InstructionID) string {
	instruction := b.table.Instruction(id)
	if instruction == nil {
		return ""
	}

	var builder strings.Builder

	documentation, err := instruction.Definition.Documentation(0)
	if err != nil {
		fmt.Fprintf(&builder, "%v\n\n", err)
	} else {
		builder.WriteString(documentation)
	}

	fmt.Fprintf(&builder, "Identifier: %v\n", instruction.Identifier)
	fmt.Fprintf(&builder, "Word class: %v bits\n", b.table.Classes[instruction.Class].Width)

	if instruction.IsAlias() {
		fmt.Fprintf(&builder, "Canonical instruction: %v\n", b.table.Instructions[instruction.Canonical].Mnemonic())
	}

	if instruction.Shadowed {
		builder.WriteString("Never decoded: its canonical instruction has the same pattern\n")
	}

	if group := b.table.HookGroupOf(instruction.Canonical); group != nil {
		candidates := utils.Map(group.Candidates, func(id decoder.InstructionID) string { return b.table.Instructions[id].Mnemonic() })
		fmt.Fprintf(&builder, "Hook candidates (%v): %v\n", group.Hook, strings.Join(candidates, ", "))
	}

	for _, operand := range instruction.Operands {
		if operand.Latency > 0 {
			fmt.Fprintf(&builder, "Latency of operand %v (%v): %v cycles\n", operand.Position, operand.Role, operand.Latency)
		}
	}

	return builder.String()
}

// Decodes the word typed by the user. Returns the matched instruction (NoInstruction if none) and a status message
func (b *browser) decode(text string) (decoder.InstructionID, string) {
	word, err := utils.ParseUint(text, 32)
	if err != nil {
		return decoder.NoInstruction, err.Error()
	}

	decoded, ok := b.table.Decode(uint32(word))
	if !ok {
		return decoder.NoInstruction, fmt.Sprintf("%v: unknown instruction", utils.FormatUintHex(word, 8))
	}

	return decoded.Instruction.ID, fmt.Sprintf("%v: %v", utils.FormatUintHex(uint64(decoded.Word), 8), decoded)
}

func (b *browser) run() error {
	app := tview.NewApplication()

	list := tview.NewTable().SetSelectable(true, false).SetFixed(1, 0)
	list.SetBorder(true).SetTitle(" " + b.table.Name + " ")

	for column, title := range browserColumns {
		list.SetCell(0, column, tview.NewTableCell(title).SetSelectable(false).SetTextColor(tcell.ColorYellow))
	}

	for row, cells := range b.rows() {
		for column, text := range cells {
			list.SetCell(row+1, column, tview.NewTableCell(tview.Escape(text)))
		}
	}

	details := tview.NewTextView().SetScrollable(true).SetWrap(false)
	details.SetBorder(true).SetTitle(" Documentation ")

	list.SetSelectionChangedFunc(func(row, column int) {
		details.SetText(b.describe(decoder.InstructionID(row - 1))).ScrollToBeginning()
	})

	status := tview.NewTextView()
	input := tview.NewInputField().SetLabel("decode: ").SetFieldWidth(24)
	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}

		id, message := b.decode(input.GetText())
		if id != decoder.NoInstruction {
			list.Select(int(id)+1, 0)
		}

		status.SetText(message)
	})

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(list, 0, 1, true).
			AddItem(details, 0, 1, false), 0, 1, true).
		AddItem(tview.NewFlex().
			AddItem(input, 34, 0, false).
			AddItem(status, 0, 1, false), 1, 0, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab:
			if app.GetFocus() == list {
				app.SetFocus(input)
			} else {
				app.SetFocus(list)
			}
			return nil
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q' && app.GetFocus() == list:
			app.Stop()
			return nil
		}

		return event
	})

	if len(b.table.Instructions) > 0 {
		list.Select(1, 0)
	}

	return app.SetRoot(layout, true).SetFocus(list).Run()
}
