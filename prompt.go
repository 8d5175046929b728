package rewriteprobe

import (
	"bytes"
	"fmt"
	"text/template"
)

// SystemDirective is prepended to every prompt.
const SystemDirective = "You are a helpful writing assistant. Your task is to rewrite the text provided by the user. " +
	"Do not add any conversational filler. Return ONLY the rewritten text."

// BuildPrompt renders the directive, the case instruction and the case input
// into a single prompt string. Empty fields are rendered as-is.
func BuildPrompt(c Case) (string, error) {
	data := promptData{
		Directive:     SystemDirective,
		HasContext:    c.HasContext(),
		ContextBefore: c.ContextBefore,
		ContextAfter:  c.ContextAfter,
		Instruction:   c.Instruction,
		Input:         c.Input,
	}

	var b bytes.Buffer
	if err := promptTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render prompt template: %w", err)
	}

	return b.String(), nil
}

type promptData struct {
	Directive     string
	HasContext    bool
	ContextBefore string
	ContextAfter  string
	Instruction   string
	Input         string
}

var promptTmpl = template.Must(template.New("prompt").Parse(promptTemplate))

var promptTemplate = `{{ .Directive }}

{{ if .HasContext -}}
Context: {{ .ContextBefore }} [TARGET] {{ .ContextAfter }}
Task: Rewrite the [TARGET] text based on the following instructions.
{{ end -}}
Instruction: {{ .Instruction }}
Text to Rewrite: {{ .Input }}`
