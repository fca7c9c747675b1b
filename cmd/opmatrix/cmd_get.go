package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	opmatrix "github.com/njchilds90/opmatrix"
	"github.com/njchilds90/opmatrix/internal/render"
)

var (
	scaleFlag  string
	formatFlag string
	showFlag   bool
)

// getCmd prints the matrix for one operator
var getCmd = &cobra.Command{
	Use:   "get [operator]",
	Short: "Print the matrix for an operator",
	Long: `Prints the indicator matrix registered for an operator.

The operator may be a symbol (+ - * / % ^), a name (add, subtract, multiply,
divide, modulo, power) or an alias (sum, minus, div, module, pow).

Examples:
  opmatrix get +
  opmatrix get multiply --scale 2 --format json
  opmatrix get sum --scale nnn`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

// glyphCmd prints a K stroke pattern
var glyphCmd = &cobra.Command{
	Use:   "glyph [leftK|rightK|midK]",
	Short: "Print a K stroke pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runGlyph,
}

// listCmd lists every defined table
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List defined operator/scale tables",
	RunE:  runList,
}

func init() {
	for _, c := range []*cobra.Command{getCmd, glyphCmd} {
		c.Flags().StringVarP(&formatFlag, "format", "f", "grid", "Output format: grid, text, json, latex")
	}
	getCmd.Flags().StringVarP(&scaleFlag, "scale", "s", "", "Scale 1|2|3 (or n|nn|nnn); defaults to config default_scale")
	listCmd.Flags().BoolVar(&showFlag, "show", false, "Draw every table side by side")
}

func runGet(cmd *cobra.Command, args []string) error {
	scale := scaleFlag
	if scale == "" {
		scale = strconv.Itoa(cfg.DefaultScale)
	}
	logger.Debug("looking up matrix", zap.String("operator", args[0]), zap.String("scale", scale))

	m, err := opmatrix.Lookup(args[0], scale)
	if err != nil {
		logger.Debug("lookup failed", zap.Error(err))
		return err
	}
	return printMatrix(cmd, m)
}

func runGlyph(cmd *cobra.Command, args []string) error {
	g, err := opmatrix.ParseGlyph(args[0])
	if err != nil {
		return err
	}
	m, err := opmatrix.GlyphMatrix(g)
	if err != nil {
		return err
	}
	return printMatrix(cmd, m)
}

func printMatrix(cmd *cobra.Command, m opmatrix.Matrix) error {
	out := cmd.OutOrStdout()
	switch strings.ToLower(formatFlag) {
	case "grid", "":
		fmt.Fprint(out, render.Grid(m, style()))
	case "text":
		fmt.Fprintln(out, m.String())
	case "json":
		s, err := opmatrix.ToJSON(m)
		if err != nil {
			return fmt.Errorf("failed to encode matrix: %w", err)
		}
		fmt.Fprintln(out, s)
	case "latex":
		fmt.Fprintln(out, m.LaTeX())
	default:
		return fmt.Errorf("unknown format %q (valid: grid, text, json, latex)", formatFlag)
	}
	return nil
}

func style() render.Style {
	return render.Style{On: cfg.Render.On, Off: cfg.Render.Off}
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	rows := [][]string{{"operator", "symbol", "scales"}}
	for _, op := range opmatrix.Operators() {
		var scales []string
		for _, s := range opmatrix.Scales(op) {
			scales = append(scales, strconv.Itoa(int(s)))
		}
		rows = append(rows, []string{op.String(), op.Symbol(), strings.Join(scales, ",")})
	}
	fmt.Fprint(out, render.Table(rows))

	if !showFlag {
		return nil
	}
	var panels []render.Panel
	for _, t := range opmatrix.Tables() {
		m, err := opmatrix.Get(t.Operator, t.Scale)
		if err != nil {
			return err
		}
		panels = append(panels, render.Panel{Title: fmt.Sprintf("%s x%d", t.Operator.Symbol(), t.Scale), Matrix: m})
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, render.SideBySide(panels, style(), 3))
	return nil
}
