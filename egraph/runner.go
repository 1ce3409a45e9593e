package egraph

import "github.com/arithlab/arith"

// Stop reasons reported by Runner.Run.
const (
	StopSaturated = "saturated"
	StopIterLimit = "iteration limit"
	StopNodeLimit = "node limit"
)

// Default runner limits.
const (
	DefaultIterLimit = 30
	DefaultNodeLimit = 10000
)

// Runner repeatedly applies a rule set to a graph until no new
// equivalences are discovered or a resource bound is hit. Scheduling is
// the runner's concern, never the rules': every match of every rule is
// offered on every iteration.
type Runner struct {
	Graph *EGraph

	// Bounds on saturation. Zero means the default.
	IterLimit int
	NodeLimit int

	// StopReason reports why the last Run returned.
	StopReason string
}

// NewRunner returns a runner over g with default limits.
func NewRunner(g *EGraph) *Runner {
	return &Runner{Graph: g, IterLimit: DefaultIterLimit, NodeLimit: DefaultNodeLimit}
}

// Run saturates the graph under rules.
func (r *Runner) Run(rules []arith.SolverRule) {
	iterLimit, nodeLimit := r.IterLimit, r.NodeLimit
	if iterLimit <= 0 {
		iterLimit = DefaultIterLimit
	}
	if nodeLimit <= 0 {
		nodeLimit = DefaultNodeLimit
	}

	g := r.Graph
	for i := 0; i < iterLimit; i++ {
		// Collect all matches against the current graph before applying
		// any of them, so one iteration sees a consistent snapshot.
		type job struct {
			rule   arith.SolverRule
			eclass arith.EClassID
			subst  arith.Substitution
		}
		var jobs []job
		for _, rule := range rules {
			for _, result := range g.Search(rule.LHS) {
				for _, subst := range result.Substs {
					jobs = append(jobs, job{rule, result.EClass, subst})
				}
			}
		}

		nodes, unions := g.nnodes, g.unions
		for _, j := range jobs {
			j.rule.Apply(g, j.eclass, j.subst)
		}
		g.Rebuild()

		if g.nnodes == nodes && g.unions == unions {
			r.StopReason = StopSaturated
			return
		}
		if g.nnodes > nodeLimit {
			r.StopReason = StopNodeLimit
			return
		}
	}
	r.StopReason = StopIterLimit
}
