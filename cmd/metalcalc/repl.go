package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/metalcalc/metal"
	"github.com/metalcalc/metal/calc"
)

const help = `Use ref, rec, scrap, wep or key as metal unit.
Set the key rate with key=<ref> or key=<ref>-<ref>.
Examples:
>> (2.33ref1rec * 3 + 3scrap) / 2
= 4.16 ref
>> 2.55ref * 4
= 10.22 ref`

// exprArgs drops command line options so that negative numbers such as
// "-5ref" still count as expressions.
func exprArgs(args []string) []string {
	var exprs []string
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "--"), a == "-":
			continue
		case len(a) == 2 && a[0] == '-' && (a[1] < '0' || a[1] > '9'):
			continue
		}
		exprs = append(exprs, a)
	}
	return exprs
}

// runArgs evaluates every expression and returns the exit code.
// Metal is printed with the layout.
func runArgs(svc calc.Service, exprs []string, layout string, w io.Writer) int {
	code := 0
	for _, expr := range exprs {
		v, err := svc.Evaluate(expr)
		if err != nil {
			fmt.Fprintln(w, "Error: "+calc.Message(err))
			code = 1
			continue
		}
		if m, ok := v.(metal.Metal); ok {
			fmt.Fprintln(w, m.FormatLayout(layout))
			continue
		}
		fmt.Fprintln(w, v)
	}
	return code
}

// runPrompt reads expressions line by line until r is exhausted or the
// user quits.
func runPrompt(svc calc.Service, r io.Reader, w io.Writer) error {
	fmt.Fprintf(w, "TF2 Metal Calculator %s\nType \"quit\" to exit.\nType \"help\" to get more information.\n", version)
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, ">> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		cmd := strings.ToLower(line)
		switch {
		case line == "":
		case cmd == "q" || cmd == "quit" || cmd == "exit":
			return nil
		case cmd == "h" || cmd == "help" || cmd == "?":
			fmt.Fprintln(w, help)
		case strings.HasPrefix(cmd, "key"):
			rate, err := svc.SetExchangeRate(line)
			if err != nil {
				fmt.Fprintln(w, "Error: "+calc.Message(err))
				continue
			}
			fmt.Fprintln(w, "You set exchange rate to "+rate.String())
		default:
			answer(svc, line, w)
		}
	}
}

func answer(svc calc.Service, expr string, w io.Writer) {
	v, err := svc.Evaluate(expr)
	if err != nil {
		fmt.Fprintln(w, "Error: "+calc.Message(err))
		return
	}
	lines, err := svc.Report(v)
	if err != nil {
		fmt.Fprintln(w, "Error: "+calc.Message(err))
		return
	}
	for _, l := range lines {
		fmt.Fprintln(w, "= "+l)
	}
}
