package types

// StepStatus is the outcome of a single evaluated step
type StepStatus string

// Step outcomes as reported by the execution engine
const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// Attachment is a file produced by a step during execution. Source is the
// path the execution engine wrote it to; Name is the file name it keeps
// inside the report tree.
type Attachment struct {
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source" yaml:"source"`
}

// Step is one evaluated step of a scenario
type Step struct {
	Text        string       `json:"text" yaml:"text"`
	Status      StepStatus   `json:"status" yaml:"status"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty" yaml:"attachments,omitempty"`
}

// Scenario is one evaluated scenario of a spec
type Scenario struct {
	Name  string `json:"name" yaml:"name"`
	Steps []Step `json:"steps" yaml:"steps"`
}

// EvaluatedSpec is one evaluated unit of test content. Specs are immutable
// once produced by the execution engine; the report generator only reads
// them.
type EvaluatedSpec struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Scenarios   []Scenario `json:"scenarios" yaml:"scenarios"`
}

// Attachments returns every attachment referenced by any step of any
// scenario, in document order.
func (s *EvaluatedSpec) Attachments() []Attachment {
	var out []Attachment
	for _, sc := range s.Scenarios {
		for _, st := range sc.Steps {
			out = append(out, st.Attachments...)
		}
	}
	return out
}

// Failed reports whether any step in the spec failed
func (s *EvaluatedSpec) Failed() bool {
	for _, sc := range s.Scenarios {
		for _, st := range sc.Steps {
			if st.Status == StepFailed {
				return true
			}
		}
	}
	return false
}
