// Package summary reports the entries a listing withheld.
package summary

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/bethropolis/acacls/internal/walker"
	"github.com/fatih/color"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplaySkippedItems prints one line per withheld entry to output,
// sorted by path, followed by a count through the logger.
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer, useColors bool) {
	sort.SliceStable(skippedItems, func(i, j int) bool {
		if skippedItems[i].Dir != skippedItems[j].Dir {
			return skippedItems[i].Dir < skippedItems[j].Dir
		}
		return skippedItems[i].Name < skippedItems[j].Name
	})

	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		reason := string(item.Reason)
		if useColors {
			reason = color.YellowString(reason)
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n",
			typeStr,
			filepath.Join(item.Dir, item.Name),
			reason,
		)
	}
	logger.Info("%d entries withheld from the listing.", len(skippedItems))
}
