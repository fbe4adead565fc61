package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"vaccine-assistant/internal/common/logger"
	"vaccine-assistant/internal/knowledge"
	"vaccine-assistant/internal/resolver"
)

type resolution struct {
	Normalized string         `json:"normalized"`
	Vaccine    resolver.Match `json:"vaccine"`
	Age        string         `json:"age"`
	AgeKnown   bool           `json:"age_known"`
	Symptom    string         `json:"symptom,omitempty"`
	Disease    string         `json:"disease,omitempty"`
	Condition  string         `json:"condition,omitempty"`
}

func newResolveCmd() *cobra.Command {
	var documentPath string

	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Show how free text resolves to knowledge base entities",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kb := knowledge.Load(documentPath, logger.NewNoOpLogger())
			res := resolver.New(kb)
			text := strings.Join(args, " ")

			out := resolution{
				Normalized: res.Normalize(text),
				Vaccine:    res.MatchVaccine(text),
			}
			out.Age, out.AgeKnown = res.ResolveAge(text)
			if e, ok := res.LookupSymptom(text); ok {
				out.Symptom = e.Symptom
			}
			if a, ok := res.DiseaseAdvice(text); ok {
				out.Disease = a.Key
			}
			if a, ok := res.ConditionAdvice(text); ok {
				out.Condition = a.Key
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&documentPath, "document", "", "optional knowledge document (JSON)")
	return cmd
}
