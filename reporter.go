package propcheck

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

const successMessage = "Property check succeeded."

// Render renders a terminal check result into the report message a strategy
// signals with. nameOverride relabels the arguments positionally when its
// length matches the argument count and is ignored otherwise. Rendering is
// pure: the same result, prettifier and override always yield the same
// string.
func Render(res PropertyCheckResult, prettifier Prettifier, pos Position, nameOverride []string) string {
	switch res.Status {
	case CheckSuccess:
		return successMessage
	case CheckExhausted:
		return exhaustedMessage(res)
	default:
		return failureMessage(res, prettifier, pos, nameOverride)
	}
}

// exhaustedMessage builds the report of a check that ran out of its discard
// budget, with singular phrasing when exactly one evaluation succeeded.
func exhaustedMessage(res PropertyCheckResult) string {
	proved := fmt.Sprintf("%d times", res.Succeeded)
	if res.Succeeded == 1 {
		proved = "once"
	}
	return fmt.Sprintf("Property check exhausted after proving the property %s and discarding %d evaluations.",
		proved, res.Discarded)
}

// failureMessage builds the multi-line report of a failed check: the cause
// type, the call-site location, the success count before the failure, the
// cause message and the reproducing argument values, followed by any
// labels.
func failureMessage(res PropertyCheckResult, prettifier Prettifier, pos Position, nameOverride []string) string {
	if prettifier == nil {
		prettifier = DefaultPrettifier()
	}
	args := applyNameOverride(res.Args, nameOverride)

	var b strings.Builder
	if res.Cause != nil {
		fmt.Fprintf(&b, "%T was thrown during property evaluation.\n", res.Cause)
	} else {
		b.WriteString("Property check failed.\n")
	}
	if loc := pos.String(); loc != "" {
		fmt.Fprintf(&b, "  Location: %s\n", loc)
	}
	if res.Succeeded == 1 {
		b.WriteString("  Succeeded once before failure.\n")
	} else {
		fmt.Fprintf(&b, "  Succeeded %d times before failure.\n", res.Succeeded)
	}
	if res.Cause != nil {
		fmt.Fprintf(&b, "  Message: %s\n", res.Cause.Error())
	}
	b.WriteString("  Occurred when passed generated values (\n")
	rendered := make([]string, 0, len(args))
	for i, arg := range args {
		label := arg.Label
		if label == "" {
			label = fmt.Sprintf("arg%d", i)
		}
		rendered = append(rendered, fmt.Sprintf("    %s = %s", label, prettifier(arg.Value)))
	}
	b.WriteString(strings.Join(rendered, ",\n"))
	b.WriteString("\n  )")
	if len(res.Labels) > 0 {
		fmt.Fprintf(&b, "\n  Labels: %s", strings.Join(res.Labels, ", "))
	}
	return b.String()
}

// applyNameOverride relabels arguments positionally. The override only
// applies when it covers every argument exactly.
func applyNameOverride(args []PropertyArgument, names []string) []PropertyArgument {
	if len(names) != len(args) {
		return args
	}
	out := slices.Clone(args)
	for i := range out {
		out[i].Label = names[i]
	}
	return out
}
