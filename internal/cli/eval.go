package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rshade/ghgcalc/internal/catalog"
	"github.com/rshade/ghgcalc/internal/inputfile"
)

var errNoFormula = errors.New("no formula given: pass an ID or a --file naming one")

// evalOutput is the JSON shape of one evaluation.
type evalOutput struct {
	EvaluationID string         `json:"evaluation_id"`
	Formula      string         `json:"formula"`
	Sector       string         `json:"sector"`
	Value        float64        `json:"value"`
	Display      string         `json:"display"`
	Unit         string         `json:"unit"`
	Inputs       catalog.Inputs `json:"inputs"`
}

type evalFlags struct {
	scalars   []string
	series    []string
	file      string
	precision int32
}

func newEvalCmd(a *app) *cobra.Command {
	var flags evalFlags

	cmd := &cobra.Command{
		Use:   "eval [ID]",
		Short: "Evaluate one formula",
		Long: `Evaluate one formula from named inputs.

Inputs come from --in (scalars), --series (comma separated lists) and
--file (YAML or JSON). Flag values override values from the file. The
formula ID may be omitted when the file names one.`,
		Example: `  ghgcalc eval mining/fuel-combustion --in fuel_consumption=10 --in carbon_content=0.027 --in oxidation_rate=0.98
  ghgcalc eval --file inputs.yaml --in grid_factor=0.6
  ghgcalc eval aviation/enterprise --series electricity_activity=100 --series electricity_factor=0.5 --series heat_activity= --series heat_factor=`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("precision") {
				flags.precision = a.cfg.Precision
			}
			return a.runEval(cmd, args, flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.scalars, "in", nil, "scalar input as name=value (repeatable)")
	cmd.Flags().StringArrayVar(&flags.series, "series", nil, "series input as name=v1,v2,... (repeatable)")
	cmd.Flags().StringVar(&flags.file, "file", "", "YAML or JSON file with formula and inputs")
	cmd.Flags().Int32Var(&flags.precision, "precision", defaultPrecision, "decimal places shown for the result (default $GHGCALC_PRECISION or 4)")

	return cmd
}

func (a *app) runEval(cmd *cobra.Command, args []string, flags evalFlags) error {
	if flags.precision < 0 || flags.precision > maxPrecision {
		return fmt.Errorf("invalid precision %d: must be between 0 and %d", flags.precision, maxPrecision)
	}

	evalID := uuid.New().String()
	logger := a.logger.With().Str("evaluation_id", evalID).Logger()

	inputs := catalog.NewInputs()
	var id string

	if flags.file != "" {
		doc, err := inputfile.Load(flags.file)
		if err != nil {
			return err
		}
		id = doc.Formula
		inputs = inputs.Merge(doc.Inputs)
		logger.Debug().Str("file", flags.file).Str("formula", doc.Formula).Msg("loaded input file")
	}

	if len(args) == 1 {
		if id != "" && id != args[0] {
			logger.Warn().Str("file_formula", id).Str("formula", args[0]).Msg("formula argument overrides input file")
		}
		id = args[0]
	}
	if id == "" {
		return errNoFormula
	}

	flagInputs, err := parseInputFlags(flags.scalars, flags.series)
	if err != nil {
		return err
	}
	inputs = inputs.Merge(flagInputs)

	result, err := a.catalog.Evaluate(id, inputs)
	if err != nil {
		logger.Error().Err(err).Str("formula", id).Msg("evaluation failed")
		return err
	}

	display := roundForDisplay(result.Value, flags.precision)
	logger.Info().
		Str("formula", result.FormulaID).
		Float64("value", result.Value).
		Msg("evaluation complete")

	if a.cfg.Output == OutputJSON {
		return writeJSON(cmd.OutOrStdout(), evalOutput{
			EvaluationID: evalID,
			Formula:      result.FormulaID,
			Sector:       string(result.Sector),
			Value:        result.Value,
			Display:      display,
			Unit:         result.Unit,
			Inputs:       inputs,
		})
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n", result.FormulaID, display, result.Unit)
	return err
}

// parseInputFlags turns --in and --series values into Inputs. Later flags
// override earlier ones of the same name.
func parseInputFlags(scalars, series []string) (catalog.Inputs, error) {
	in := catalog.NewInputs()

	for _, kv := range scalars {
		name, raw, err := splitAssignment("--in", kv)
		if err != nil {
			return catalog.Inputs{}, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return catalog.Inputs{}, fmt.Errorf("--in %s: %w", name, err)
		}
		in = in.Merge(catalog.NewInputs().SetScalar(name, v))
	}

	for _, kv := range series {
		name, raw, err := splitAssignment("--series", kv)
		if err != nil {
			return catalog.Inputs{}, err
		}
		values := []float64{}
		if strings.TrimSpace(raw) != "" {
			for i, part := range strings.Split(raw, ",") {
				v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
				if err != nil {
					return catalog.Inputs{}, fmt.Errorf("--series %s[%d]: %w", name, i, err)
				}
				values = append(values, v)
			}
		}
		in = in.Merge(catalog.NewInputs().SetSeries(name, values))
	}

	return in, nil
}

func splitAssignment(flag, kv string) (string, string, error) {
	name, value, ok := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("%s %q: expected name=value", flag, kv)
	}
	return name, value, nil
}
