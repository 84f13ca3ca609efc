package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"veoprompt-backend/internal/catalog"
)

var placeholderPattern = regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

// ExtractPlaceholders returns the unique placeholder names in body, in order
// of first appearance. Re-derived on every template change, never cached.
func ExtractPlaceholders(body string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(body, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// PlaceholderValue is a coerced user input: either a scalar string or an
// ordered list split from a multiline input. Exactly one variant is active.
type PlaceholderValue struct {
	Scalar string
	List   []string
}

func (v PlaceholderValue) IsList() bool {
	return v.List != nil
}

// MarshalJSON emits the active variant: a JSON string for scalars, a JSON
// array of strings for lists.
func (v PlaceholderValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Scalar)
}

// CoerceValue turns a raw input into a PlaceholderValue. Inputs containing a
// newline become a list: split on newline, trim segments, drop empties.
// Everything else passes through as a scalar, empty string included.
func CoerceValue(raw string) PlaceholderValue {
	if !strings.Contains(raw, "\n") {
		return PlaceholderValue{Scalar: raw}
	}
	items := make([]string, 0)
	for _, seg := range strings.Split(raw, "\n") {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			items = append(items, seg)
		}
	}
	return PlaceholderValue{List: items}
}

// GenerationRequest is the assembled payload for one generation attempt.
type GenerationRequest struct {
	TemplateBody   string
	Values         map[string]PlaceholderValue
	NegativePrompt string
	StyleName      string
	ReferenceImage *InlineData
}

// GenerationService runs the substitution pipeline: directive assembly,
// backend invocation, response normalization.
type GenerationService struct {
	Generator TextImageGenerator
}

func NewGenerationService(gen TextImageGenerator) *GenerationService {
	return &GenerationService{Generator: gen}
}

// BuildRequest resolves the selected template and style and coerces the raw
// input values. Unknown template ids resolve to the catalog's first entry.
func (s *GenerationService) BuildRequest(templateID string, inputValues map[string]string, negativePrompt, styleID string, ref *InlineData) GenerationRequest {
	tpl := catalog.TemplateByID(templateID)

	values := make(map[string]PlaceholderValue, len(inputValues))
	for _, name := range ExtractPlaceholders(tpl.Body) {
		values[name] = CoerceValue(inputValues[name])
	}

	styleName := ""
	if styleID != "" {
		if style, ok := catalog.StyleByID(styleID); ok {
			styleName = style.Name
		}
	}

	return GenerationRequest{
		TemplateBody:   tpl.Body,
		Values:         values,
		NegativePrompt: negativePrompt,
		StyleName:      styleName,
		ReferenceImage: ref,
	}
}

// BuildDirectives assembles the instruction text sent alongside the template
// and values. Structural fidelity and raw-JSON output are hard constraints.
func BuildDirectives(req GenerationRequest) string {
	var b strings.Builder

	b.WriteString(`You are a world-class creative director and video JSON prompt architect. Your mission is to transform a basic JSON template and user inputs into a complete, visually stunning, and cinematic video prompt.

**Creative Mandate: Strive for Excellence**
1. **Cinematic & Sensory Language:** Every description must be rich and evocative. Instead of "good lighting", write "soft golden-hour sunlight streaming through tall trees, casting long shadows". Describe textures, motion, and atmosphere.
2. **Fill in the Blanks Creatively:** When replacing placeholders, if the user input is simple (e.g., "a car"), enrich it within the context of the scene (e.g., "a gleaming obsidian-black sports car, rain cascading off its aerodynamic curves") while preserving its factual content.

**Technical & Formatting Rules (CRITICAL):**
1. **Strict Schema Adherence:** You MUST use the exact structure from the provided JSON template. DO NOT add, remove, or rename any keys. The structure is non-negotiable.
2. **Placeholder Replacement:** Replace all placeholders (e.g., {{PLACEHOLDER}}) with the corresponding user values, creatively enhancing them as instructed above. Array values must become JSON arrays of strings.
3. **RAW JSON OUTPUT ONLY:** Your entire response must be a single, raw, valid JSON object. DO NOT wrap it in markdown fences, and do not include any explanatory text, comments, or apologies before or after the JSON.
`)

	if req.NegativePrompt != "" {
		fmt.Fprintf(&b, `
**Hard Exclusion Constraint:** The following elements and styles must NOT appear in any field of the output: %q. This is a strict requirement, not a suggestion.
`, req.NegativePrompt)
	}

	if req.StyleName != "" {
		fmt.Fprintf(&b, `
**Visual Style Mandate:** The aesthetic characteristics of the "%s" style must pervade every descriptive field — lighting, environment, motion, and color. This style direction overrides the template's generic defaults.
`, req.StyleName)
	}

	if req.ReferenceImage != nil {
		b.WriteString(`
**Reference Image:** An image of the primary subject is attached. Any placeholder representing the primary subject must be described to visually match the attached image's observable attributes: shape, material, color, and distinguishing detail.
`)
	}

	valuesJSON, _ := json.Marshal(req.Values)

	fmt.Fprintf(&b, `
**JSON Template:**
%s

**User-Provided Values:**
%s

Generate the final, cinematic JSON output now.
`, req.TemplateBody, string(valuesJSON))

	return b.String()
}

// Generate runs one attempt end to end and returns the accepted artifact:
// fence-stripped, parse-validated, pretty-printed with 2-space indentation.
func (s *GenerationService) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	parts := make([]Part, 0, 2)
	if req.ReferenceImage != nil {
		parts = append(parts, Part{InlineData: req.ReferenceImage})
	}
	parts = append(parts, Part{Text: BuildDirectives(req)})

	raw, err := s.Generator.GenerateText(ctx, parts)
	if err != nil {
		return "", err
	}

	return NormalizeArtifact(raw)
}

var fencePattern = regexp.MustCompile("^```[a-zA-Z]*\\s*|```$")

// NormalizeArtifact strips markdown code fences the backend may wrap around
// its reply despite instructions, then requires the remainder to parse fully
// as JSON. The accepted artifact is re-serialized with stable 2-space
// indentation so formatting is deterministic regardless of backend whitespace.
func NormalizeArtifact(raw string) (string, error) {
	cleaned := strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(raw), ""))

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	// Trailing garbage after the document is also a malformed reply.
	if dec.More() {
		return "", ErrMalformedArtifact
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedArtifact, err)
	}
	return strings.TrimRight(out.String(), "\n"), nil
}
