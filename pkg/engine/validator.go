package engine

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/user/cablecheck/pkg/extract"
	"github.com/user/cablecheck/pkg/logging"
)

// ErrInvalidInput is returned when there is nothing to validate: empty,
// blank or non-text input. It is the only error Validate surfaces; every
// other failure mode degrades to a verdict.
var ErrInvalidInput = errors.New("input is empty or not text")

// DefaultModelTimeout bounds the single model call made per input.
const DefaultModelTimeout = 30 * time.Second

// Inferrer is the model collaborator boundary. Implementations make one
// inference call per input and may fail, hang or return nonsense; the
// validator treats all of those as "no guess".
type Inferrer interface {
	Infer(ctx context.Context, text string) (map[string]any, error)
}

// Validator runs the extract-reconcile-evaluate-score pipeline. A nil
// Model selects deterministic-only operation.
type Validator struct {
	Model   Inferrer
	Timeout time.Duration
}

// NewValidator returns a validator backed by the given model
// collaborator. model may be nil.
func NewValidator(model Inferrer) *Validator {
	return &Validator{Model: model, Timeout: DefaultModelTimeout}
}

// Validate turns raw cable design text into a ValidationResult. The
// deterministic extraction always runs; the model guess, when one can be
// obtained in time, only refines individual fields.
func (v *Validator) Validate(ctx context.Context, text string) (*ValidationResult, error) {
	if strings.TrimSpace(text) == "" || !utf8.ValidString(text) {
		return nil, ErrInvalidInput
	}

	extracted := extract.Extract(text)
	guess := v.infer(ctx, text)

	fields := Reconcile(guess, extracted)
	findings := Evaluate(fields)
	status, confidence := Score(findings)

	return &ValidationResult{
		Fields:        fields,
		Validation:    findings,
		OverallStatus: status,
		Confidence:    confidence,
	}, nil
}

func (v *Validator) infer(ctx context.Context, text string) map[string]any {
	if v.Model == nil {
		return nil
	}

	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	guess, err := v.Model.Infer(ctx, text)
	if err != nil {
		logging.Warn("model unavailable, using deterministic extraction only", "err", err)
		return nil
	}
	logging.Debug("model guess received", "fields", len(guess))
	return guess
}
