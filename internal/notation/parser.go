// Package notation parses and renders dice notation such as "3d6+2".
package notation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rolld/internal/models"
)

const (
	defaultDiceCount = 1
	defaultFaceCount = 6
)

var diceNotationRegex = regexp.MustCompile(`(?i)^(\d*)d(\d*)([+-]?)(\d*)$`)

// Parse normalizes up to three arguments into a RollSpec.
//
// A textual first argument matching dice notation wins and the other
// arguments are ignored. Otherwise the arguments are read positionally:
// two or three values are dice count, face count and modifier, a single
// value is the face count of one die, and no values is 1d6. Arguments past
// the third are ignored.
//
// Errors wrap ErrInvalidArgument or ErrInvalidRange.
func Parse(args ...Arg) (models.RollSpec, error) {
	var primary, secondary, tertiary Arg
	switch {
	case len(args) >= 3:
		primary, secondary, tertiary = args[0], args[1], args[2]
	case len(args) == 2:
		primary, secondary = args[0], args[1]
	case len(args) == 1:
		primary = args[0]
	}

	if primary.kind == argText {
		if match := diceNotationRegex.FindStringSubmatch(primary.text); match != nil {
			return parseNotation(primary.text, match)
		}
	}

	return parsePositional(primary, secondary, tertiary)
}

// MustParse is like Parse but panics on error
func MustParse(args ...Arg) models.RollSpec {
	spec, err := Parse(args...)
	if err != nil {
		panic(fmt.Sprintf("notation: %v", err))
	}
	return spec
}

func parseNotation(raw string, match []string) (models.RollSpec, error) {
	spec := models.RollSpec{
		DiceCount: defaultDiceCount,
		FaceCount: defaultFaceCount,
	}

	var err error
	if match[1] != "" {
		if spec.DiceCount, err = strconv.Atoi(match[1]); err != nil {
			return models.RollSpec{}, fmt.Errorf("%w: dice count in %q is not a number", ErrInvalidArgument, raw)
		}
	}
	if match[2] != "" {
		if spec.FaceCount, err = strconv.Atoi(match[2]); err != nil {
			return models.RollSpec{}, fmt.Errorf("%w: face count in %q is not a number", ErrInvalidArgument, raw)
		}
	}

	sign, magnitude := match[3], match[4]
	if sign != "" && magnitude == "" {
		return models.RollSpec{}, fmt.Errorf("%w: modifier sign in %q has no digits", ErrInvalidArgument, raw)
	}
	if magnitude != "" {
		if spec.Modifier, err = strconv.Atoi(sign + magnitude); err != nil {
			return models.RollSpec{}, fmt.Errorf("%w: modifier in %q is not a number", ErrInvalidArgument, raw)
		}
	}

	if err := checkRange(spec); err != nil {
		return models.RollSpec{}, err
	}

	return spec, nil
}

func parsePositional(primary, secondary, tertiary Arg) (models.RollSpec, error) {
	first, okFirst := primary.number()
	second, okSecond := secondary.number()
	third, okThird := tertiary.number()
	if !okFirst || !okSecond || !okThird {
		return models.RollSpec{}, badArgs(primary, secondary, tertiary)
	}

	switch {
	case !secondary.IsOmitted():
		spec := models.RollSpec{
			DiceCount: defaultDiceCount,
			FaceCount: second,
			Modifier:  third,
		}
		if !primary.IsOmitted() {
			spec.DiceCount = first
		}
		if err := checkRange(spec); err != nil {
			return models.RollSpec{}, err
		}
		return spec, nil

	case !primary.IsOmitted():
		spec := models.RollSpec{
			DiceCount: defaultDiceCount,
			FaceCount: first,
		}
		if err := checkRange(spec); err != nil {
			return models.RollSpec{}, err
		}
		return spec, nil

	default:
		return models.RollSpec{
			DiceCount: defaultDiceCount,
			FaceCount: defaultFaceCount,
		}, nil
	}
}

func checkRange(spec models.RollSpec) error {
	if spec.DiceCount < 1 {
		return fmt.Errorf("%w: cannot roll zero or a negative number of dice (got %d)", ErrInvalidRange, spec.DiceCount)
	}
	if spec.FaceCount < 1 {
		return fmt.Errorf("%w: dice cannot have zero or a negative number of faces (got %d)", ErrInvalidRange, spec.FaceCount)
	}

	// Max() is the largest value the spec computes, Min() and every total
	// fit once it does
	if spec.FaceCount > math.MaxInt/spec.DiceCount {
		return fmt.Errorf("%w: %d dice with %d faces overflow the total", ErrInvalidArgument, spec.DiceCount, spec.FaceCount)
	}
	if spec.Modifier > 0 && spec.DiceCount*spec.FaceCount > math.MaxInt-spec.Modifier {
		return fmt.Errorf("%w: modifier %d overflows the total", ErrInvalidArgument, spec.Modifier)
	}
	return nil
}

func badArgs(args ...Arg) error {
	supplied := make([]string, 0, len(args))
	for _, arg := range args {
		if arg.IsOmitted() {
			continue
		}
		supplied = append(supplied, arg.String())
	}
	return fmt.Errorf("%w: bad arguments: %s", ErrInvalidArgument, strings.Join(supplied, " "))
}
