package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/xcast/token"
)

type parseFunc func(data []byte, path []string, opts ...token.Option) (token.Token, error)

func newJSONCmd(a *app) *cobra.Command {
	return newTokenCmd(a, "json", "JSON", func(data []byte, path []string, opts ...token.Option) (token.Token, error) {
		node, err := token.ParseJSON(data, opts...)
		if err != nil {
			return nil, err
		}
		return node.Get(path...)
	})
}

func newYAMLCmd(a *app) *cobra.Command {
	return newTokenCmd(a, "yaml", "YAML", func(data []byte, path []string, opts ...token.Option) (token.Token, error) {
		node, err := token.ParseYAML(data, opts...)
		if err != nil {
			return nil, err
		}
		return node.Get(path...)
	})
}

func newTokenCmd(a *app, use, format string, parse parseFunc) *cobra.Command {
	var to, path string
	cmd := &cobra.Command{
		Use:   use + " <document>",
		Short: "Extract a typed value from a " + format + " document",
		Long:  `Parses the document, selects the node at --path (dot separated keys) and coerces it into the --to type.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := lookupType(to)
			if err != nil {
				return err
			}
			var keys []string
			if path != "" {
				keys = strings.Split(path, ".")
			}
			node, err := parse([]byte(args[0]), keys, token.WithRegistry(a.engine.Registry()))
			if err != nil {
				return err
			}
			if !a.engine.IsConvertible(node, target) {
				return fmt.Errorf("cannot extract %s value at %q as %v", format, path, target)
			}
			result := a.engine.CoerceOrDefault(node, target, reflect.Zero(target).Interface())
			fmt.Fprintln(cmd.OutOrStdout(), render(a.engine, result))
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "string", "Target type")
	cmd.Flags().StringVar(&path, "path", "", "Dot separated node path, JSON array elements use [index]")
	return cmd
}
