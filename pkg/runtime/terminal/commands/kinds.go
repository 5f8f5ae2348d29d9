package commands

import (
	"fmt"

	exportsvc "github.com/de-tools/order-reports/pkg/services/export"
	"github.com/spf13/cobra"
)

type KindsCmd struct {
	registry exportsvc.Registry
}

func NewKindsCmd(registry exportsvc.Registry) *cobra.Command {
	kc := &KindsCmd{registry: registry}
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported report kinds",
		Args:  cobra.NoArgs,
		RunE:  kc.run,
	}
}

func (kc *KindsCmd) run(cmd *cobra.Command, _ []string) error {
	kinds := kc.registry.ListKinds()
	if len(kinds) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No report kinds registered")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Supported report kinds:")
	for _, k := range kinds {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", k.Name, k.Description)
	}
	return nil
}
