package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geom2"
	"geom2/internal/vecflag"
)

// NewRootCmd builds the vecdemo command. Each call gets its own flag state.
func NewRootCmd() *cobra.Command {
	var (
		a       = geom2.Vec{X: 4, Y: 8}
		b       = geom2.Iso[int32](3)
		n       int32
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "vecdemo",
		Short:         "Print the difference of two vectors and that difference plus a scalar",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.OutOrStdout(), log, a, b, n)
		},
	}

	vecflag.Var(cmd.Flags(), &a, "a", "left operand")
	vecflag.Var(cmd.Flags(), &b, "b", "right operand")
	cmd.Flags().Int32VarP(&n, "n", "n", 5, "scalar added to a-b")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log dot product, magnitudes and ordering")

	return cmd
}

func run(out io.Writer, log logrus.FieldLogger, a, b geom2.Vec, n int32) error {
	diff := a.Sub(b)
	sum := geom2.AddScalar(diff, n)

	if _, err := fmt.Fprintf(out, "(%v) - (%v) = (%v)\n", a, b, diff); err != nil {
		return errors.Wrap(err, "write difference")
	}
	if _, err := fmt.Fprintf(out, "(%v) + %d = (%v)\n", diff, n, sum); err != nil {
		return errors.Wrap(err, "write sum")
	}

	log.WithFields(logrus.Fields{
		"a": a.String(),
		"b": b.String(),
	}).Debug("Operands")
	log.WithFields(logrus.Fields{
		"dot":      geom2.Dot(a, b),
		"mag2_a":   geom2.Mag2(a),
		"mag_a":    geom2.Mag(a),
		"a<b":      geom2.Less(a, b),
		"cardinal": geom2.Cardinal(diff).String(),
	}).Debug("Derived values")
	if c, ok := geom2.PartialCompare(a, b); ok {
		log.WithField("cmp", c).Debug("Operands are ordered on both axes")
	} else {
		log.Debug("Operands are not ordered on both axes")
	}

	return nil
}

// Execute executes root CLI command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("vecdemo failed")
		os.Exit(1)
	}
}
