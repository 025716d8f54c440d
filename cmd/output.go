package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/isagen/pkg/config"
	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/fatih/color"
	"go.uber.org/multierr"
)

var (
	colorAddr    = color.New(color.FgCyan)
	colorInstr   = color.New(color.FgYellow, color.Bold)
	colorReg     = color.New(color.FgGreen)
	colorImm     = color.New(color.FgMagenta)
	colorError   = color.New(color.FgRed, color.Bold)
	colorSuccess = color.New(color.FgGreen)
	colorWarning = color.New(color.FgYellow)
	colorHeader  = color.New(color.FgWhite, color.Bold, color.Underline)
	colorHiBlack = color.New(color.FgHiBlack)
)

// Prints every error aggregated in err, one per line
func printErrors(w io.Writer, err error) {
	errs := multierr.Errors(err)

	if config.IsValidationError(err) {
		colorError.Fprintf(w, "invalid instruction set (%v errors):\n", len(errs))
	}

	for _, e := range errs {
		colorError.Fprint(w, "  error: ")
		fmt.Fprintln(w, e)
	}
}

// Formats a decoded instruction in assembly syntax, coloring registers and immediates
func formatDecoded(decoded *decoder.Decoded) string {
	var builder strings.Builder

	builder.WriteString(colorInstr.Sprint(decoded.Instruction.Definition.AsmName()))
	first := true

	for _, operand := range decoded.Operands {
		if operand.Descriptor.HideName || operand.Descriptor.IsLiteral() {
			continue
		}

		if first {
			builder.WriteString(" ")
			first = false
		} else {
			builder.WriteString(", ")
		}

		if operand.Descriptor.Role.IsRegister() || operand.Descriptor.IsIndirect() {
			builder.WriteString(colorReg.Sprint(operand))
		} else {
			builder.WriteString(colorImm.Sprint(operand))
		}
	}

	return builder.String()
}

// Writes one line describing a decoded word, followed by alias and hook details
func printDecoded(w io.Writer, table *decoder.Table, decoded *decoder.Decoded) {
	digits := table.Classes[decoded.Instruction.Class].Width / 4

	fmt.Fprintf(w, "%v  %v", colorAddr.Sprint(utils.FormatUintHex(uint64(decoded.Word), digits)), formatDecoded(decoded))

	if decoded.Instruction.IsAlias() {
		colorHiBlack.Fprintf(w, "  (alias of %v)", decoded.Canonical.Mnemonic())
	}

	if group := decoded.HookGroup; group != nil {
		candidates := utils.Map(group.Candidates, func(id decoder.InstructionID) string { return table.Instructions[id].Mnemonic() })
		colorHiBlack.Fprintf(w, "  [%v: %v]", group.Hook, strings.Join(candidates, ", "))
	}

	fmt.Fprintln(w)
}
