package recommend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"
)

const coachSystemPrompt = `You are an expert learning coach. You choose what a learner should study next based on their mastery, confidence and frustration per concept.

Rules:
- Only use concept IDs from the list provided. Never invent IDs.
- Prefer concepts the learner is ready for but has not mastered.
- When frustration is high, prefer easier or prerequisite concepts.
- Respond with JSON only.`

var rankUserTemplate = template.Must(template.New("rank").Parse(`Rank the eligible concepts for this learner, most recommended first.

Context:
{{.Context}}
`))

var nextUserTemplate = template.Must(template.New("next").Parse(`The learner just scored {{printf "%.0f" .Score}}% on concept "{{.ConceptID}}".
Suggest the concept they should study next. Set repeat to true only if they should practise the same concept again.

Context:
{{.Context}}
`))

func buildRankMessage(req RankRequest) (string, error) {
	return render(rankUserTemplate, req, nil)
}

func buildNextMessage(req NextRequest) (string, error) {
	return render(nextUserTemplate, req, map[string]any{
		"Score":     req.ScorePercent,
		"ConceptID": req.ConceptID,
	})
}

func render(tmpl *template.Template, payload any, extra map[string]any) (string, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal context: %w", err)
	}
	data := map[string]any{"Context": string(raw)}
	for k, v := range extra {
		data[k] = v
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
