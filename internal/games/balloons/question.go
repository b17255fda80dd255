package balloons

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/balloon-math/internal/config"
)

// Operator is an arithmetic operator used in questions.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
)

// Apply computes a op b.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return a + b
	}
}

// Question is an arithmetic problem and its answer. Questions are values and
// are replaced, never modified.
type Question struct {
	Left   int
	Right  int
	Op     Operator
	Text   string
	Answer int
}

// NewQuestion draws two operands and an operator and computes the answer.
// Subtraction may produce negative answers.
func NewQuestion(rng *rand.Rand, cfg config.QuestionConfig) Question {
	a := randIntIn(rng, cfg.OperandMin, cfg.OperandMax)
	b := randIntIn(rng, cfg.OperandMin, cfg.OperandMax)

	op := OpAdd
	if len(cfg.Operators) > 0 {
		op = Operator(cfg.Operators[rng.Intn(len(cfg.Operators))])
	}

	return Question{
		Left:   a,
		Right:  b,
		Op:     op,
		Text:   fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer: op.Apply(a, b),
	}
}

// randIntIn returns a uniform integer in [lo, hi].
func randIntIn(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
