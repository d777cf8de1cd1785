package validator

import (
	"freightdoc/internal/domain"
)

// Input is what a check sees: the BOL, its references and the linked load.
type Input struct {
	BOL        *domain.BillOfLading
	References []domain.BOLReference
	Load       *domain.Load
}

// Validator is a single cross-document check. Checks record their findings
// on the scorecard; the engine derives the verdict status afterwards.
type Validator interface {
	Validate(in *Input, sc *Scorecard)
	RuleKey() string
	RuleName() string
}
