package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TabKind enumerates the sheet families of the dashboard.
type TabKind int

const (
	TabInput TabKind = iota + 1
	TabCalc
	TabOutput
)

// Number of numbered sheets per family.
const (
	InputSheets = 6
	CalcSheets  = 4
)

// ErrUnknownTab is returned for tab names outside the navigation.
var ErrUnknownTab = errors.New("dashboard: unknown tab")

// Tab is one navigable sheet. N is 1-based for input and calc sheets and
// zero for the output view.
type Tab struct {
	Kind TabKind
	N    int
}

// DefaultTab is shown when no tab is selected.
var DefaultTab = Tab{Kind: TabInput, N: 1}

// OutputTab is the single output view.
var OutputTab = Tab{Kind: TabOutput}

// ParseTab resolves names such as "input-3", "calc-1" and "output".
func ParseTab(raw string) (Tab, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "output" {
		return OutputTab, nil
	}
	prefix, num, ok := strings.Cut(name, "-")
	if !ok {
		return Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, raw)
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, raw)
	}
	var tab Tab
	switch prefix {
	case "input":
		tab = Tab{Kind: TabInput, N: n}
	case "calc":
		tab = Tab{Kind: TabCalc, N: n}
	default:
		return Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, raw)
	}
	if !tab.Valid() {
		return Tab{}, fmt.Errorf("%w: %q", ErrUnknownTab, raw)
	}
	return tab, nil
}

// Valid reports whether the tab exists in the navigation.
func (t Tab) Valid() bool {
	switch t.Kind {
	case TabInput:
		return t.N >= 1 && t.N <= InputSheets
	case TabCalc:
		return t.N >= 1 && t.N <= CalcSheets
	case TabOutput:
		return t.N == 0
	}
	return false
}

// String returns the URL name of the tab.
func (t Tab) String() string {
	switch t.Kind {
	case TabInput:
		return "input-" + strconv.Itoa(t.N)
	case TabCalc:
		return "calc-" + strconv.Itoa(t.N)
	case TabOutput:
		return "output"
	}
	return "unknown"
}

// Label is the button caption.
func (t Tab) Label() string {
	switch t.Kind {
	case TabInput:
		return "Input " + strconv.Itoa(t.N)
	case TabCalc:
		return "Calc " + strconv.Itoa(t.N)
	case TabOutput:
		return "Output"
	}
	return ""
}

// Title is the sheet heading.
func (t Tab) Title() string {
	switch t.Kind {
	case TabInput:
		return "Input Sheet " + strconv.Itoa(t.N)
	case TabCalc:
		return "Calculation Sheet " + strconv.Itoa(t.N)
	case TabOutput:
		return "Output Sheet"
	}
	return ""
}

// Family names the CSS accent of the tab button.
func (t Tab) Family() string {
	switch t.Kind {
	case TabInput:
		return "input"
	case TabCalc:
		return "calc"
	case TabOutput:
		return "output"
	}
	return ""
}

// AllTabs lists every tab in navigation order.
func AllTabs() []Tab {
	tabs := make([]Tab, 0, InputSheets+CalcSheets+1)
	for i := 1; i <= InputSheets; i++ {
		tabs = append(tabs, Tab{Kind: TabInput, N: i})
	}
	for i := 1; i <= CalcSheets; i++ {
		tabs = append(tabs, Tab{Kind: TabCalc, N: i})
	}
	return append(tabs, OutputTab)
}
