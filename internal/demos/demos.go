// Package demos contains the demo windows shipped with demohost.
package demos

import "github.com/jask/demohost/internal/demo"

// All returns a fresh instance of every demo in display order.
func All() []demo.Demo {
	return []demo.Demo{
		NewDancingStrings(),
		NewFontBook(),
		NewMarkdown(),
		NewPlot(),
		NewScrolling(),
		NewSliders(),
		NewWidgetGallery(),
		NewWindowOptions(),
		// Tests:
		NewIDTest(),
		NewInputTest(),
		NewTableTest(),
	}
}
