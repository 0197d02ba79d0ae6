package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// WriteTable prints the events as an aligned table.
func WriteTable(w io.Writer, events []Event) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "AT\tEVENT\tLABEL\tDURATION\tDELAY\tCURVE\tFINISHED")

	for _, e := range events {
		switch e.Kind {
		case "start":
			fmt.Fprintf(tw, "%v\t%s\t%s\t%v\t%v\t%s\t\n",
				e.At, e.Kind, e.Label, e.Duration, e.Delay, e.Curve)
		default:
			fmt.Fprintf(tw, "%v\t%s\t%s\t\t\t\t%t\n",
				e.At, e.Kind, e.Label, e.Finished)
		}
	}

	return tw.Flush()
}

// WriteCSV emits the events with durations in seconds.
func WriteCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"at", "event", "label", "duration", "delay", "curve", "finished"}); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			strconv.FormatFloat(e.At.Seconds(), 'f', 6, 64),
			e.Kind,
			e.Label,
			strconv.FormatFloat(e.Duration.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(e.Delay.Seconds(), 'f', 6, 64),
			e.Curve,
			strconv.FormatBool(e.Finished),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON emits the events as an indented JSON array.
func WriteJSON(w io.Writer, events []Event) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(events)
}
