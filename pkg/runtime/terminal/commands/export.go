package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/order-reports/pkg/runtime/terminal/export"
	exportsvc "github.com/de-tools/order-reports/pkg/services/export"
	"github.com/spf13/cobra"
)

const exportTimeout = 60 * time.Second

// Runtime provides the exporter once configuration has been loaded
type Runtime interface {
	Exporter() *exportsvc.Exporter
	Destination() string
}

type ExportCmd struct {
	kind     exportsvc.Kind
	runtime  Runtime
	reporter *export.Reporter
	input    string
	strict   bool
}

func NewExportCmd(kind exportsvc.Kind, runtime Runtime, reporter *export.Reporter) *cobra.Command {
	ec := &ExportCmd{kind: kind, runtime: runtime, reporter: reporter}
	cmd := &cobra.Command{
		Use:   kind.Name,
		Short: kind.Description,
		Args:  cobra.NoArgs,
		RunE:  ec.run,
	}

	cmd.Flags().StringVarP(&ec.input, "input", "i", "-", "Path to the JSON record, - reads stdin")
	if kind.Name == exportsvc.KindOrder {
		cmd.Flags().BoolVar(&ec.strict, "strict", false,
			"Refuse orders whose total differs from subtotal - discount + shipping")
	}

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), exportTimeout)
	defer cancel()

	body, closeFn, err := ec.open(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	policy := exportsvc.ReconcileWarn
	if ec.strict {
		policy = exportsvc.ReconcileReject
	}
	exporter := ec.runtime.Exporter().WithReconcilePolicy(policy)

	result, err := ec.kind.Run(ctx, exporter, body)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", ec.kind.Name, err)
	}

	return ec.reporter.Handle(export.Summary{
		Result:      result,
		Destination: ec.runtime.Destination(),
	})
}

func (ec *ExportCmd) open(cmd *cobra.Command) (io.Reader, func(), error) {
	if ec.input == "" || ec.input == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(ec.input)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
