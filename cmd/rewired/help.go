package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rewired <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  workbooks  Generate the seven daily workbooks")
	fmt.Fprintln(w, "  toolkit    Generate the recovery toolkit")
	fmt.Fprintln(w, "  relief     Generate the relief toolkit from an HTML template")
	fmt.Fprintln(w, "  seed       Replace the course lessons in the database")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'rewired help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only print errors")
	fmt.Fprintln(w, "  -v, --verbose             Print debug logs")
}

func printWorkbooksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rewired workbooks [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate Day_N_<NAME>_Workbook.pdf for the seven days of the reset.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default output/workbooks)")
	fmt.Fprintln(w, "  -w, --workers <n>         Concurrent workbooks (0 = auto)")
	fmt.Fprintln(w, "      --header <s>          Header printed on every page")
	printCommonFlags(w)
}

func printToolkitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rewired toolkit [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the recovery toolkit PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default output/recovery-toolkit.pdf)")
	printCommonFlags(w)
}

func printReliefUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rewired relief [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fill the HTML template and print it to PDF with headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default output/rewired-relief-toolkit.pdf)")
	fmt.Fprintln(w, "      --template <path>     HTML template (default built-in)")
	fmt.Fprintln(w, "      --assets <dir>        Directory overriding built-in template and stylesheet")
	fmt.Fprintln(w, "      --content <path>      Content fragment, .html or .md (default built-in)")
	fmt.Fprintln(w, "      --title <s>           Page title")
	fmt.Fprintln(w, "      --subtitle <s>        Page subtitle")
	fmt.Fprintln(w, "      --renderer <s>        rod (default) or chromedp")
	fmt.Fprintln(w, "  -t, --timeout <d>         Rendering timeout (default 30s)")
	printCommonFlags(w)
}

func printSeedUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rewired seed [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Delete the product's lessons and insert the seven reset lessons in one transaction.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --database-url <url>  mysql://, postgres:// or sqlite:// URL (default $DATABASE_URL)")
	fmt.Fprintln(w, "      --product <id>        Product ID (default 7-day-reset)")
	printCommonFlags(w)
}

// printCommandUsage prints usage for name. Returns false for unknown commands.
func printCommandUsage(w io.Writer, name string) bool {
	switch name {
	case cmdWorkbooks:
		printWorkbooksUsage(w)
	case cmdToolkit:
		printToolkitUsage(w)
	case cmdRelief:
		printReliefUsage(w)
	case cmdSeed:
		printSeedUsage(w)
	case cmdVersion, cmdHelp:
		printUsage(w)
	default:
		return false
	}
	return true
}
