package main

import (
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/xcast"
)

func newCoerceCmd(a *app) *cobra.Command {
	var to, defaultText string
	cmd := &cobra.Command{
		Use:   "coerce <value>",
		Short: "Coerce value into a type",
		Long:  `Prints value coerced into the --to type, or the --default value when the conversion is not possible.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := lookupType(to)
			if err != nil {
				return err
			}
			fallback := reflect.Zero(target).Interface()
			if cmd.Flags().Changed("default") {
				if !a.engine.IsConvertible(defaultText, target) {
					return fmt.Errorf("invalid default %q for %v", defaultText, target)
				}
				fallback = a.engine.Coerce(defaultText, target)
			}
			result := a.engine.CoerceOrDefault(args[0], target, fallback)
			fmt.Fprintln(cmd.OutOrStdout(), render(a.engine, result))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "string", "Target type")
	cmd.Flags().StringVar(&defaultText, "default", "", "Value printed when coercion fails")
	return cmd
}

func newIsCmd(a *app) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "is <value>",
		Short: "Check whether value converts into a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := lookupType(to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.IsConvertible(args[0], target))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "string", "Target type")
	return cmd
}

func render(engine *xcast.Engine, value interface{}) string {
	switch actual := value.(type) {
	case time.Time:
		return actual.Format(time.RFC3339Nano)
	case time.Duration:
		return actual.String()
	}
	return engine.ToSimpleString(value)
}
