// Command gen writes the per-port declarations of package gpio: the control
// register group markers, one identity type per pin, and the PartsX/SplitX
// pair of every port.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"log"
	"os"
	"strconv"
	"text/template"
)

var ports = []string{"A", "B", "C", "D", "E"}

type pin struct {
	Name  string
	Group string
	Index int
}

type port struct {
	Letter string
	Index  int
	Pins   []pin
}

var tmpl = template.Must(template.New("ports").Parse(`// Code generated by gdhal/gpio/internal/gen. DO NOT EDIT.

package gpio

import (
	"gdhal/pac"
	"gdhal/rcu"
)
{{range .}}{{$p := .}}
// Control register groups of port {{.Letter}}.
type (
	Group{{.Letter}}L struct{} // pins 0-7, CTL0
	Group{{.Letter}}H struct{} // pins 8-15, CTL1
)

func (Group{{.Letter}}L) ctl() uint8 { return 0 }
func (Group{{.Letter}}H) ctl() uint8 { return 1 }
{{range .Pins}}
// {{.Name}} identifies pin {{.Index}} of port {{$p.Letter}}.
type {{.Name}} struct{}

func ({{.Name}}) group({{.Group}}) {}
func ({{.Name}}) Port() uint8 { return {{$p.Index}} }
func ({{.Name}}) Index() uint8 { return {{.Index}} }
{{end}}
// Parts{{.Letter}} holds the control tokens and pins of port {{.Letter}}.
type Parts{{.Letter}} struct {
	CTL0 *Ctl[Group{{.Letter}}L]
	CTL1 *Ctl[Group{{.Letter}}H]
	LOCK *PortLock

{{range .Pins}}	{{.Name}} Pin[{{.Group}}, {{.Name}}, Input[Floating]]
{{end}}}

// Split{{.Letter}} enables port {{.Letter}}, pulses its reset and splits it into its control
// tokens and pins, all pins floating inputs.
func Split{{.Letter}}(raw *pac.GPIO{{.Letter}}, apb2 *rcu.APB[pac.APB2]) Parts{{.Letter}} {
	regs := split(raw, apb2)
	return Parts{{.Letter}}{
		CTL0: &Ctl[Group{{.Letter}}L]{regs: regs},
		CTL1: &Ctl[Group{{.Letter}}H]{regs: regs},
		LOCK: &PortLock{regs: regs, port: {{.Index}}},

{{range .Pins}}		{{.Name}}: newPin[{{.Group}}, {{.Name}}](regs),
{{end}}	}
}
{{end}}`))

func main() {
	out := flag.String("o", "ports_gen.go", "output file")
	flag.Parse()

	var data []port
	for i, letter := range ports {
		p := port{Letter: letter, Index: i}
		for n := 0; n < 16; n++ {
			half := "L"
			if n >= 8 {
				half = "H"
			}
			p.Pins = append(p.Pins, pin{
				Name:  "P" + letter + strconv.Itoa(n),
				Group: "Group" + letter + half,
				Index: n,
			})
		}
		data = append(data, p)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format output: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
