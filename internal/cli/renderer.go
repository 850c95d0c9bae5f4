package cli

import (
	"fmt"
	"io"

	"github.com/MrSnakeDoc/restdemo/internal/session"
)

// renderState prints the fetch state the way the ui command shows it, minus styling.
func renderState(w io.Writer, st session.State) {
	switch st.Phase() {
	case session.Initial:
		writeLine(w, "No data fetched yet.")
	case session.Loading:
		writeLine(w, "Loading...")
	case session.Success:
		rec, _ := st.Record()
		writeLine(w, fmt.Sprintf("%-13s%s", "ID", rec.ID))
		writeLine(w, fmt.Sprintf("%-13s%s", "Name", rec.Name))
		writeLine(w, fmt.Sprintf("%-13s%s", "Description", rec.Description))
	case session.Error:
		msg, _ := st.Message()
		writeLine(w, "Error: "+msg)
	default:
		panic(fmt.Sprintf("cli: unhandled phase %v", st.Phase()))
	}
}
