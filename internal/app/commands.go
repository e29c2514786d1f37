package app

import (
	"flag"
	"fmt"

	"cube-tweaks/internal/commands"
	"cube-tweaks/internal/params"
)

// RegisterCommands adds the terminal subcommands that drive the registry:
// set, get, list, reset, fullscreen, save and help. print receives command output.
// save persists the current preset; nil disables "cmd save".
func (a *App) RegisterCommands(reg *commands.Registry, print func(string), save func() error) {
	setFS := flag.NewFlagSet("set", flag.ContinueOnError)
	setName := setFS.String("name", "", "parameter path or unique name")
	setValue := setFS.String("value", "", "new value")
	reg.Register("set", "write a parameter", setFS, func() error {
		if *setName == "" {
			return fmt.Errorf("set: -name is required")
		}
		c, err := a.Registry.Lookup(*setName)
		if err != nil {
			return err
		}
		if err := a.Registry.SetString(c.Path(), *setValue); err != nil {
			return err
		}
		print(c.Path() + " = " + c.Value().String())
		return nil
	})

	getFS := flag.NewFlagSet("get", flag.ContinueOnError)
	getName := getFS.String("name", "", "parameter path or unique name")
	reg.Register("get", "read a parameter", getFS, func() error {
		c, err := a.Registry.Lookup(*getName)
		if err != nil {
			return err
		}
		print(c.Path() + " = " + c.Value().String())
		return nil
	})

	reg.Register("list", "list parameters", nil, func() error {
		for _, c := range a.Registry.Controls() {
			line := c.Path() + " (" + c.Kind().String() + ")"
			if c.Kind() != params.KindAction {
				line += " = " + c.Value().String()
			}
			print(line)
		}
		return nil
	})

	reg.Register("reset", "restore startup parameters", nil, func() error {
		a.Defer(a.Reset)
		return nil
	})

	reg.Register("fullscreen", "toggle fullscreen", nil, func() error {
		a.Defer(a.ToggleFullscreen)
		return nil
	})

	reg.Register("save", "write parameters to the config file", nil, func() error {
		if save == nil {
			return fmt.Errorf("save: no config file")
		}
		if err := save(); err != nil {
			return err
		}
		print("saved")
		return nil
	})

	reg.Register("help", "show commands", nil, func() error {
		for _, line := range reg.Help() {
			print(line)
		}
		return nil
	})
}
