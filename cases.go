package rewriteprobe

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed cases.schema.json
var casesSchema string

// Case is a single rewrite request.
type Case struct {
	Name          string `json:"name"                     yaml:"name"`
	Instruction   string `json:"instruction"              yaml:"instruction"`
	Input         string `json:"input"                    yaml:"input"`
	ContextBefore string `json:"context_before,omitempty" yaml:"context_before,omitempty"`
	ContextAfter  string `json:"context_after,omitempty"  yaml:"context_after,omitempty"`
}

// HasContext reports whether the case carries surrounding text.
func (c Case) HasContext() bool {
	return c.ContextBefore != "" || c.ContextAfter != ""
}

// CaseFile is the on-disk layout of a case file.
type CaseFile struct {
	Cases []Case `json:"cases" yaml:"cases"`
}

// Instructions used by the built-in cases.
const (
	GrammarInstruction = "Check the text for grammar, spelling, punctuation, and basic sentence structure errors. " +
		"Correct only what is necessary to make the text grammatically correct and readable. " +
		"Do not rewrite for style, tone, or clarity unless required for correctness. " +
		"Do not change wording, intent, or sentence order beyond the minimum needed. " +
		"Preserve the original tone and meaning exactly."
	WarmInstruction = "Rewrite the text in a warm, supportive, and human tone. " +
		"Sound approachable, respectful, and emotionally aware without being overly sentimental. " +
		"Keep the message clear and sincere. " +
		"Do not exaggerate emotions or add unnecessary affection. " +
		"Preserve the original meaning."
	RefineInstruction = "Rewrite the text to be clearer, more fluent, and easier to read " +
		"while preserving the original meaning, intent, and length. " +
		"Improve grammar, sentence flow, and word choice. " +
		"Do not add new ideas, remove information, or change the tone. " +
		"Keep it natural and neutral."
)

// DefaultCases returns the built-in smoke-test cases.
func DefaultCases() []Case {
	return []Case{
		{Name: "Grammar Check", Instruction: GrammarInstruction, Input: "me fail english yes"},
		{Name: "Warm Tone", Instruction: WarmInstruction, Input: "stop spamming me right now"},
		{Name: "Refine", Instruction: RefineInstruction, Input: "i want to apply for this job plz hire me"},
	}
}

// LoadCases reads a JSON or YAML case file and validates it against the case schema.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported case file extension %q", ext)
	}

	return ParseCases(data)
}

// ParseCases validates a JSON case document and decodes it.
func ParseCases(data []byte) ([]Case, error) {
	if err := validateCases(data); err != nil {
		return nil, err
	}

	var file CaseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}

	return file.Cases, nil
}

// MarshalCasesYAML encodes cases in the case file layout.
func MarshalCasesYAML(cases []Case) ([]byte, error) {
	out, err := yaml.Marshal(CaseFile{Cases: cases})
	if err != nil {
		return nil, fmt.Errorf("marshal cases: %w", err)
	}

	return out, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	return out, nil
}

func validateCases(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(casesSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate cases: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidCases, strings.Join(errs, "; "))
}
