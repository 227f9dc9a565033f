package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/tabulate"

	"github.com/fenilsonani/hyperhash/internal/hyperdrive"
	"github.com/fenilsonani/hyperhash/internal/sha1block"
)

// checkHardwareSupport displays hardware acceleration capabilities
func checkHardwareSupport(w io.Writer) {
	report := hyperdrive.Describe()

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Property").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	addRow := func(key, value string) {
		row := tab.Row()
		row.Column(key)
		row.Column(value)
	}

	addRow("Platform", report.Platform)
	addRow("CPU", report.Brand)
	addRow("Vendor", report.Vendor)
	addRow("Cores", fmt.Sprintf("%d", report.Cores))
	addRow("ARM64 SHA1", yesNo(report.Features.ARM64SHA1))
	addRow("ARM64 ASIMD", yesNo(report.Features.ARM64ASIMD))
	addRow("x86 SHA-NI", yesNo(report.Features.X86SHA))
	addRow("x86 SSSE3", yesNo(report.Features.X86SSSE3))
	addRow("x86 SSE4.1", yesNo(report.Features.X86SSE41))
	addRow("x86 AVX2", yesNo(report.Features.X86AVX2))
	if len(report.Supported) > 0 {
		addRow("Reported", strings.Join(report.Supported, " "))
	}

	var names []string
	for _, b := range sha1block.Backends() {
		names = append(names, b.Name)
	}
	addRow("Backends", strings.Join(names, ", "))

	row := tab.Row()
	row.Column("Selected").SetFormat(tabulate.FmtBold)
	row.Column(sha1block.Preferred().Name).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
