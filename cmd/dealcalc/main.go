package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dealcalc",
		Short:         "Acquisition deal valuation and loan amortization",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValuateCmd(), newAmortizeCmd(), newVerifyCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
