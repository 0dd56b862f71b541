package main

import (
	"fmt"
	"sort"

	wl "deedles.dev/wlwin/client"
	"github.com/spf13/cobra"
)

var globalsCmd = &cobra.Command{
	Use:   "globals",
	Short: "List the globals advertised by the compositor",
	Args:  cobra.NoArgs,
	RunE:  runGlobals,
}

func runGlobals(cmd *cobra.Command, args []string) error {
	display, err := wl.DialDisplay()
	if err != nil {
		return fmt.Errorf("dial display: %w", err)
	}
	defer display.Close()

	registry := display.GetRegistry()
	err = display.RoundTrip()
	if err != nil {
		return fmt.Errorf("round trip: %w", err)
	}

	globals := registry.Globals()
	names := make([]uint32, 0, len(globals))
	for name := range globals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	out := cmd.OutOrStdout()
	for _, name := range names {
		inter := globals[name]
		fmt.Fprintf(out, "%v\t%v\tv%v\n", name, inter.Name, inter.Version)
	}
	return nil
}
