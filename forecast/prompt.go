package forecast

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// OutputFile is where the latest forecast text is mirrored for offline
// inspection.
const OutputFile = "ai_output.txt"

// BuildPrompt assembles the user message for the forecasting model from
// the formatted news report and, when available, current exchange rates.
func BuildPrompt(report string, rates map[string]float64) string {
	var b strings.Builder

	if len(rates) > 0 {
		b.WriteString("Current exchange rates against USD:\n")
		codes := make([]string, 0, len(rates))
		for code := range rates {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Fprintf(&b, "  %s: %.4f\n", code, rates[code])
		}
		b.WriteString("\n")
	}

	b.WriteString(report)
	b.WriteString("\n\nBased on the news above, forecast the likely direction of the major currency pairs over the coming week and explain the key drivers.")
	return b.String()
}

// SaveOutput mirrors the forecast to the output file. Failures are logged
// and swallowed; the response has already been computed.
func SaveOutput(text string) {
	if err := os.WriteFile(OutputFile, []byte(text), 0o644); err != nil {
		log.Printf("Warning: failed to save forecast output: %v", err)
	}
}
