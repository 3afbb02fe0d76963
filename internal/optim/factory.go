package optim

import (
	"fmt"
	"strings"

	"github.com/born-ml/descent/internal/nn"
)

// Kind names an update rule.
type Kind int

// Supported update rules.
const (
	KindSGD Kind = iota + 1
	KindSGDM
	KindRMSProp
	KindAdam
)

var kindNames = map[Kind]string{
	KindSGD:     "sgd",
	KindSGDM:    "sgdm",
	KindRMSProp: "rmsprop",
	KindAdam:    "adam",
}

// Kinds lists the supported update rules.
func Kinds() []Kind {
	return []Kind{KindSGD, KindSGDM, KindRMSProp, KindAdam}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a case-insensitive name ("sgd", "sgdm", "momentum",
// "rmsprop", "adam") to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "momentum" {
		return KindSGDM, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("optim: unknown optimizer %q: %w", s, ErrNotImplemented)
}

// Config is the union of all optimizer hyperparameters, used by New.
// Fields irrelevant to the selected Kind are ignored; zero fields take
// the Kind's defaults.
type Config struct {
	LR       float64
	Momentum float64
	Decay    float64
	Eps      float64
	Beta1    float64
	Beta2    float64
	T        int
	Counting Counting
}

// New creates the optimizer for kind bound to model.
//
// An unknown kind yields an Unimplemented optimizer whose Step fails
// with ErrNotImplemented.
func New(kind Kind, model *nn.Model, config Config) Optimizer {
	switch kind {
	case KindSGD:
		return NewSGD(model, SGDConfig{LR: config.LR})
	case KindSGDM:
		return NewSGDM(model, SGDMConfig{LR: config.LR, Momentum: config.Momentum})
	case KindRMSProp:
		return NewRMSProp(model, RMSPropConfig{LR: config.LR, Decay: config.Decay, Eps: config.Eps})
	case KindAdam:
		return NewAdam(model, AdamConfig{
			LR:       config.LR,
			Beta1:    config.Beta1,
			Beta2:    config.Beta2,
			Eps:      config.Eps,
			T:        config.T,
			Counting: config.Counting,
		})
	default:
		u := NewUnimplemented(model, config.LR)
		u.kind = kind
		return u
	}
}
