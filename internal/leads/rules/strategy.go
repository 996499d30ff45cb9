package rules

import "recruit_portal_backend/internal/leads/scoring"

// Strategy adapts the rule registry to the shared scoring.Strategy interface.
type Strategy struct {
	Registry *Registry
}

func (Strategy) Name() string { return "rule_based" }

func (s Strategy) Score(in scoring.Input) (int, string) {
	reg := s.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}
	ctx := NewContext(in.Lead, in.History, in.Messages, in.Now)
	eval := reg.Evaluate(ctx, in.Lead.LeadScore)
	return eval.Total, eval.Tier
}
