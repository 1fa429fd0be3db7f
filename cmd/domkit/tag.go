package main

import (
	"fmt"

	"github.com/heathj/domkit/dom"
	"github.com/heathj/domkit/props"
	"github.com/heathj/domkit/tag"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func tagCmd() *cobra.Command {
	var (
		propPairs []string
		text      string
		tree      bool
	)

	cmd := &cobra.Command{
		Use:   "tag SELECTOR [TEXT]",
		Short: "Build an element and print it",
		Long: `Build an element from SELECTOR ([tag][#id][.class...]) and print its HTML.

Properties are given as --prop name=value. Names that are DOM properties of
the element (className, hidden, tabIndex, innerHTML, ...) are assigned as
such; anything else becomes an attribute.`,
		Example: `  domkit tag 'a#home.nav' Home --prop href=/
  domkit tag input --prop type=checkbox --prop checked
  domkit tag ul --prop innerHTML='<li>a</li><li>b</li>' --tree`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseProps(propPairs)
			if err != nil {
				return err
			}

			var txt []string
			switch {
			case cmd.Flags().Changed("text"):
				txt = []string{text}
			case len(args) > 1:
				txt = []string{args[1]}
			}

			b := tag.NewBuilder(tag.WithLogger(logrus.WithField("command", "tag")))
			n, err := b.Build(args[0], p, txt...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if tree {
				fmt.Fprint(out, dom.Dump(n))
				return nil
			}
			fmt.Fprintln(out, n.OuterHTML())
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&propPairs, "prop", "p", nil, "property as name=value (repeatable)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "text content; overrides the TEXT argument")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the node tree instead of HTML")

	return cmd
}

func mergeCmd() *cobra.Command {
	var basePairs, overlayPairs []string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Overlay one property set on another",
		Long: `Print the --base properties with values replaced by --overlay where
the overlay names the same property. Overlay-only properties are dropped.`,
		Example: `  domkit merge --base href=/ --base title=Home --overlay title=Start --overlay rel=x`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseProps(basePairs)
			if err != nil {
				return err
			}
			overlay, err := parseProps(overlayPairs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), props.Merge(base, overlay))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&basePairs, "base", nil, "base property as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&overlayPairs, "overlay", nil, "overlay property as name=value (repeatable)")

	return cmd
}
